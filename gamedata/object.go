package gamedata

import "github.com/sageforge/inidata/ini"

// KindFlags categorize an object for targeting, selection, and AI queries.
type KindFlags uint64

const (
	KindVehicle KindFlags = 1 << iota
	KindInfantry
	KindStructure
	KindAircraft
	KindProjectile
	KindSelectable
	KindCanAttack
	KindCrusher
	KindCrushable
	KindTransport
	KindScoreCreate
	KindScoreDestroy
)

var kindFlags = ini.NewBitsetMap("KindOf", map[string]KindFlags{
	"VEHICLE":       KindVehicle,
	"INFANTRY":      KindInfantry,
	"STRUCTURE":     KindStructure,
	"AIRCRAFT":      KindAircraft,
	"PROJECTILE":    KindProjectile,
	"SELECTABLE":    KindSelectable,
	"CAN_ATTACK":    KindCanAttack,
	"CRUSHER":       KindCrusher,
	"CRUSHABLE":     KindCrushable,
	"TRANSPORT":     KindTransport,
	"SCORE_CREATE":  KindScoreCreate,
	"SCORE_DESTROY": KindScoreDestroy,
})

// WeaponSlot orders an object's weapons by preference.
type WeaponSlot int

const (
	SlotPrimary WeaponSlot = iota
	SlotSecondary
	SlotTertiary
)

var weaponSlots = ini.NewEnumMap("WeaponSlot", map[string]WeaponSlot{
	"PRIMARY":   SlotPrimary,
	"SECONDARY": SlotSecondary,
	"TERTIARY":  SlotTertiary,
})

// SetConditions select which WeaponSet/ArmorSet is active for an object's
// current state.
type SetConditions uint32

const (
	CondVeteran SetConditions = 1 << iota
	CondElite
	CondHero
	CondPlayerUpgrade
	CondCrateUpgrade
)

var setConditions = ini.NewBitsetMap("Conditions", map[string]SetConditions{
	"VETERAN":        CondVeteran,
	"ELITE":          CondElite,
	"HERO":           CondHero,
	"PLAYER_UPGRADE": CondPlayerUpgrade,
	"CRATE_UPGRADE":  CondCrateUpgrade,
})

// WeaponSet is a nested sub-block assigning weapons to slots for one
// condition set.
type WeaponSet struct {
	Conditions SetConditions
	Weapons    map[WeaponSlot]string
}

var weaponSetFields = ini.FieldTable[WeaponSet]{
	"Conditions": ini.Field(func(p *ini.Parser, s *WeaponSet) error {
		v, err := setConditions.Parse(p)
		s.Conditions = v
		return err
	}),
	// Weapon = PRIMARY TankGun
	"Weapon": ini.Field(func(p *ini.Parser, s *WeaponSet) error {
		slot, err := weaponSlots.Parse(p)
		if err != nil {
			return err
		}
		ref, err := p.ParseAssetReference()
		if err != nil {
			return err
		}
		if s.Weapons == nil {
			s.Weapons = make(map[WeaponSlot]string)
		}
		s.Weapons[slot] = ref
		return nil
	}),
}

// ArmorSet is a nested sub-block selecting an armor template for one
// condition set.
type ArmorSet struct {
	Conditions SetConditions
	Armor      string
	DamageFX   string
}

var armorSetFields = ini.FieldTable[ArmorSet]{
	"Conditions": ini.Field(func(p *ini.Parser, s *ArmorSet) error {
		v, err := setConditions.Parse(p)
		s.Conditions = v
		return err
	}),
	"Armor": ini.Field(func(p *ini.Parser, s *ArmorSet) error {
		v, err := p.ParseAssetReference()
		s.Armor = v
		return err
	}),
	"DamageFX": ini.Field(func(p *ini.Parser, s *ArmorSet) error {
		v, err := p.ParseAssetReference()
		s.DamageFX = v
		return err
	}),
}

// Object is one named Object block: a unit, structure, or projectile
// definition.
type Object struct {
	Name         string
	DisplayName  string
	Side         string
	KindOf       KindFlags
	BuildCost    int
	BuildTime    float64
	VisionRange  float64
	Locomotor     string
	Prerequisites []string
	WeaponSets    []*WeaponSet
	ArmorSets     []*ArmorSet
	CrusherLevel  int // Zero Hour only
}

func (o *Object) setName(name string) { o.Name = name }

var objectFields = ini.FieldTable[Object]{
	"DisplayName": ini.Field(func(p *ini.Parser, o *Object) error {
		v, err := p.ParseString()
		o.DisplayName = v
		return err
	}),
	"Side": ini.Field(func(p *ini.Parser, o *Object) error {
		v, err := p.ParseIdentifier()
		o.Side = v
		return err
	}),
	"KindOf": ini.Field(func(p *ini.Parser, o *Object) error {
		v, err := kindFlags.Parse(p)
		o.KindOf = v
		return err
	}),
	"BuildCost": ini.Field(func(p *ini.Parser, o *Object) error {
		v, err := p.ParseInt()
		o.BuildCost = v
		return err
	}),
	"BuildTime": ini.Field(func(p *ini.Parser, o *Object) error {
		v, err := p.ParseFloat()
		o.BuildTime = v
		return err
	}),
	"VisionRange": ini.Field(func(p *ini.Parser, o *Object) error {
		v, err := p.ParseFloat()
		o.VisionRange = v
		return err
	}),
	"Locomotor": ini.Field(func(p *ini.Parser, o *Object) error {
		v, err := p.ParseAssetReference()
		o.Locomotor = v
		return err
	}),
	// Prerequisites = Barracks WarFactory
	"Prerequisites": ini.Field(func(p *ini.Parser, o *Object) error {
		v, err := p.ParseAssetReferenceArray()
		o.Prerequisites = v
		return err
	}),
	"WeaponSet": ini.Field(func(p *ini.Parser, o *Object) error {
		set, err := ini.ParseSubBlock(p, weaponSetFields)
		if err != nil {
			return err
		}
		o.WeaponSets = append(o.WeaponSets, set)
		return nil
	}),
	"ArmorSet": ini.Field(func(p *ini.Parser, o *Object) error {
		set, err := ini.ParseSubBlock(p, armorSetFields)
		if err != nil {
			return err
		}
		o.ArmorSets = append(o.ArmorSets, set)
		return nil
	}),
	"CrusherLevel": ini.FieldSince(VersionZeroHour, func(p *ini.Parser, o *Object) error {
		v, err := p.ParseInt()
		o.CrusherLevel = v
		return err
	}),
}
