package gamedata

import "github.com/sageforge/inidata/ini"

// DamageType classifies the damage a weapon deals; armor coefficients are
// keyed by it.
type DamageType int

const (
	DamageDefault DamageType = iota
	DamageExplosion
	DamageArmorPiercing
	DamageSmallArms
	DamageFlame
	DamageLaser
	DamageSniper
	DamagePoison
	DamageHealing
)

var damageTypes = ini.NewEnumMap("DamageType", map[string]DamageType{
	"DEFAULT":        DamageDefault,
	"EXPLOSION":      DamageExplosion,
	"ARMOR_PIERCING": DamageArmorPiercing,
	"SMALL_ARMS":     DamageSmallArms,
	"FLAME":          DamageFlame,
	"LASER":          DamageLaser,
	"SNIPER":         DamageSniper,
	"POISON":         DamagePoison,
	"HEALING":        DamageHealing,
})

// DeathType selects the death animation the victim plays.
type DeathType int

const (
	DeathNormal DeathType = iota
	DeathExploded
	DeathBurned
	DeathLaser
	DeathSuicided
	DeathPoisoned
)

var deathTypes = ini.NewEnumMap("DeathType", map[string]DeathType{
	"NORMAL":   DeathNormal,
	"EXPLODED": DeathExploded,
	"BURNED":   DeathBurned,
	"LASER":    DeathLaser,
	"SUICIDED": DeathSuicided,
	"POISONED": DeathPoisoned,
})

// AffectsFlags selects which object categories radius damage touches.
type AffectsFlags uint32

const (
	AffectsSelf AffectsFlags = 1 << iota
	AffectsAllies
	AffectsEnemies
	AffectsNeutrals
	AffectsProjectiles
)

var affectsFlags = ini.NewBitsetMap("RadiusDamageAffects", map[string]AffectsFlags{
	"SELF":        AffectsSelf,
	"ALLIES":      AffectsAllies,
	"ENEMIES":     AffectsEnemies,
	"NEUTRALS":    AffectsNeutrals,
	"PROJECTILES": AffectsProjectiles,
})

// Weapon is one named Weapon block.
type Weapon struct {
	Name                string
	PrimaryDamage       float64
	PrimaryDamageRadius float64
	SecondaryDamage     float64
	AttackRange         float64
	MinimumAttackRange  float64
	DamageType          DamageType
	DeathType           DeathType
	WeaponSpeed         float64
	ClipSize            int
	ClipReloadTime      int
	DelayBetweenShots   int
	AutoReloadsClip     bool
	ScatterRadius       float64
	ProjectileObject    string
	FireSound           string
	FireFX              string
	RadiusDamageAffects AffectsFlags
}

func (w *Weapon) setName(name string) { w.Name = name }

var weaponFields = ini.FieldTable[Weapon]{
	"PrimaryDamage": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := p.ParseFloat()
		w.PrimaryDamage = v
		return err
	}),
	"PrimaryDamageRadius": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := p.ParseFloat()
		w.PrimaryDamageRadius = v
		return err
	}),
	"SecondaryDamage": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := p.ParseFloat()
		w.SecondaryDamage = v
		return err
	}),
	"AttackRange": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := p.ParseFloat()
		w.AttackRange = v
		return err
	}),
	"MinimumAttackRange": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := p.ParseFloat()
		w.MinimumAttackRange = v
		return err
	}),
	"DamageType": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := damageTypes.Parse(p)
		w.DamageType = v
		return err
	}),
	"DeathType": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := deathTypes.Parse(p)
		w.DeathType = v
		return err
	}),
	"WeaponSpeed": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := p.ParseFloat()
		w.WeaponSpeed = v
		return err
	}),
	"ClipSize": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := p.ParseInt()
		w.ClipSize = v
		return err
	}),
	"ClipReloadTime": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := p.ParseInt()
		w.ClipReloadTime = v
		return err
	}),
	"DelayBetweenShots": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := p.ParseInt()
		w.DelayBetweenShots = v
		return err
	}),
	"AutoReloadsClip": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := p.ParseBoolean()
		w.AutoReloadsClip = v
		return err
	}),
	"ScatterRadius": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := p.ParseFloat()
		w.ScatterRadius = v
		return err
	}),
	"ProjectileObject": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := p.ParseAssetReference()
		w.ProjectileObject = v
		return err
	}),
	"FireSound": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := p.ParseAssetReference()
		w.FireSound = v
		return err
	}),
	"FireFX": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := p.ParseAssetReference()
		w.FireFX = v
		return err
	}),
	"RadiusDamageAffects": ini.Field(func(p *ini.Parser, w *Weapon) error {
		v, err := affectsFlags.Parse(p)
		w.RadiusDamageAffects = v
		return err
	}),
}
