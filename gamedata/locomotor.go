package gamedata

import "github.com/sageforge/inidata/ini"

// SurfaceFlags select the terrain surfaces a locomotor can traverse.
type SurfaceFlags uint32

const (
	SurfaceGround SurfaceFlags = 1 << iota
	SurfaceWater
	SurfaceCliff
	SurfaceAir
	SurfaceRubble
)

var surfaceFlags = ini.NewBitsetMap("Surfaces", map[string]SurfaceFlags{
	"GROUND": SurfaceGround,
	"WATER":  SurfaceWater,
	"CLIFF":  SurfaceCliff,
	"AIR":    SurfaceAir,
	"RUBBLE": SurfaceRubble,
})

// LocomotorAppearance drives movement animation and sound selection.
type LocomotorAppearance int

const (
	AppearanceTreads LocomotorAppearance = iota
	AppearanceWheels
	AppearanceLegs
	AppearanceHover
	AppearanceWings
	AppearanceThrust
)

var locomotorAppearances = ini.NewEnumMap("Appearance", map[string]LocomotorAppearance{
	"TREADS": AppearanceTreads,
	"WHEELS": AppearanceWheels,
	"LEGS":   AppearanceLegs,
	"HOVER":  AppearanceHover,
	"WINGS":  AppearanceWings,
	"THRUST": AppearanceThrust,
})

// Locomotor is one named Locomotor block: how an object moves.
type Locomotor struct {
	Name          string
	Surfaces      SurfaceFlags
	Speed         float64
	SpeedDamaged  float64
	TurnRate      float64
	Acceleration  float64
	Braking       float64
	MinTurnSpeed  float64
	Appearance    LocomotorAppearance
	StickToGround bool
}

func (l *Locomotor) setName(name string) { l.Name = name }

var locomotorFields = ini.FieldTable[Locomotor]{
	"Surfaces": ini.Field(func(p *ini.Parser, l *Locomotor) error {
		v, err := surfaceFlags.Parse(p)
		l.Surfaces = v
		return err
	}),
	"Speed": ini.Field(func(p *ini.Parser, l *Locomotor) error {
		v, err := p.ParseFloat()
		l.Speed = v
		return err
	}),
	"SpeedDamaged": ini.Field(func(p *ini.Parser, l *Locomotor) error {
		v, err := p.ParseFloat()
		l.SpeedDamaged = v
		return err
	}),
	"TurnRate": ini.Field(func(p *ini.Parser, l *Locomotor) error {
		v, err := p.ParseFloat()
		l.TurnRate = v
		return err
	}),
	"Acceleration": ini.Field(func(p *ini.Parser, l *Locomotor) error {
		v, err := p.ParseFloat()
		l.Acceleration = v
		return err
	}),
	"Braking": ini.Field(func(p *ini.Parser, l *Locomotor) error {
		v, err := p.ParseFloat()
		l.Braking = v
		return err
	}),
	"MinTurnSpeed": ini.Field(func(p *ini.Parser, l *Locomotor) error {
		v, err := p.ParseFloat()
		l.MinTurnSpeed = v
		return err
	}),
	"Appearance": ini.Field(func(p *ini.Parser, l *Locomotor) error {
		v, err := locomotorAppearances.Parse(p)
		l.Appearance = v
		return err
	}),
	"StickToGround": ini.Field(func(p *ini.Parser, l *Locomotor) error {
		v, err := p.ParseBoolean()
		l.StickToGround = v
		return err
	}),
}
