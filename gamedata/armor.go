package gamedata

import "github.com/sageforge/inidata/ini"

// Armor is one named Armor block: a table of damage coefficients. A
// coefficient of 0.25 means the bearer takes 25% of incoming damage of that
// type. The DEFAULT row seeds every type not listed explicitly.
type Armor struct {
	Name         string
	Coefficients map[DamageType]float64
}

func (a *Armor) setName(name string) { a.Name = name }

// The Armor field repeats, one line per damage type:
//
//	Armor = ARMOR_PIERCING 25%
var armorFields = ini.FieldTable[Armor]{
	"Armor": ini.Field(func(p *ini.Parser, a *Armor) error {
		dt, err := damageTypes.Parse(p)
		if err != nil {
			return err
		}
		coeff, err := p.ParsePercentage()
		if err != nil {
			return err
		}
		if a.Coefficients == nil {
			a.Coefficients = make(map[DamageType]float64)
		}
		a.Coefficients[dt] = coeff
		return nil
	}),
}

// Coefficient returns the damage coefficient for the given type, falling
// back to the DEFAULT row, then to 1.
func (a *Armor) Coefficient(dt DamageType) float64 {
	if c, ok := a.Coefficients[dt]; ok {
		return c
	}
	if c, ok := a.Coefficients[DamageDefault]; ok {
		return c
	}
	return 1
}
