package gamedata

import "github.com/sageforge/inidata/ini"

// ParticlePriority orders systems for culling under load.
type ParticlePriority int

const (
	PriorityWeaponExplosion ParticlePriority = iota
	PriorityUnitDamageFX
	PriorityDeathExplosion
	PriorityBuildup
	PriorityCritical
	PriorityAlwaysRender
)

var particlePriorities = ini.NewEnumMap("Priority", map[string]ParticlePriority{
	"WEAPON_EXPLOSION": PriorityWeaponExplosion,
	"UNIT_DAMAGE_FX":   PriorityUnitDamageFX,
	"DEATH_EXPLOSION":  PriorityDeathExplosion,
	"BUILDUP":          PriorityBuildup,
	"CRITICAL":         PriorityCritical,
	"ALWAYS_RENDER":    PriorityAlwaysRender,
})

// ParticleShader selects the blend mode.
type ParticleShader int

const (
	ShaderAdditive ParticleShader = iota
	ShaderAlpha
	ShaderAlphaTest
	ShaderMultiply
)

var particleShaders = ini.NewEnumMap("Shader", map[string]ParticleShader{
	"ADDITIVE":   ShaderAdditive,
	"ALPHA":      ShaderAlpha,
	"ALPHA_TEST": ShaderAlphaTest,
	"MULTIPLY":   ShaderMultiply,
})

// SlaveFlags modify how a slave system tracks its bone.
type SlaveFlags int

const (
	SlaveNone SlaveFlags = iota
	SlaveInheritVelocity
	SlaveDetachOnDeath
)

var slaveFlags = ini.NewEnumMap("Flags", map[string]SlaveFlags{
	"NONE":             SlaveNone,
	"INHERIT_VELOCITY": SlaveInheritVelocity,
	"DETACH_ON_DEATH":  SlaveDetachOnDeath,
})

// SlaveBinding attaches a slave particle system to a bone. It is declared
// inline on a single Slave line with attribute-style pairs:
//
//	Slave = Bone TURRET01 Flags = INHERIT_VELOCITY Min 0.5 Max 2.0 Template PSysSmoke
//
// Attributes may appear in any order; Bone and Template are mandatory.
type SlaveBinding struct {
	Bone     string
	Flags    SlaveFlags
	Min      float64
	Max      float64
	Template string
}

// ParticleSystem is one named ParticleSystem block.
type ParticleSystem struct {
	Name         string
	Priority     ParticlePriority
	Shader       ParticleShader
	ParticleName string
	IsOneShot    bool
	SystemLife   float64
	Size         float64
	BurstCount   float64
	Slaves       []SlaveBinding
}

func (s *ParticleSystem) setName(name string) { s.Name = name }

var particleSystemFields = ini.FieldTable[ParticleSystem]{
	"Priority": ini.Field(func(p *ini.Parser, s *ParticleSystem) error {
		v, err := particlePriorities.Parse(p)
		s.Priority = v
		return err
	}),
	"Shader": ini.Field(func(p *ini.Parser, s *ParticleSystem) error {
		v, err := particleShaders.Parse(p)
		s.Shader = v
		return err
	}),
	"ParticleName": ini.Field(func(p *ini.Parser, s *ParticleSystem) error {
		v, err := p.ParseString()
		s.ParticleName = v
		return err
	}),
	"IsOneShot": ini.Field(func(p *ini.Parser, s *ParticleSystem) error {
		v, err := p.ParseBoolean()
		s.IsOneShot = v
		return err
	}),
	"SystemLife": ini.Field(func(p *ini.Parser, s *ParticleSystem) error {
		v, err := p.ParseFloat()
		s.SystemLife = v
		return err
	}),
	"Size": ini.Field(func(p *ini.Parser, s *ParticleSystem) error {
		v, err := p.ParseFloat()
		s.Size = v
		return err
	}),
	"BurstCount": ini.Field(func(p *ini.Parser, s *ParticleSystem) error {
		v, err := p.ParseFloat()
		s.BurstCount = v
		return err
	}),
	"Slave": ini.Field(parseSlave),
}

func parseSlave(p *ini.Parser, s *ParticleSystem) error {
	var b SlaveBinding
	err := p.ParseAttributes([]string{"Bone", "Template"}, ini.AttributeTable{
		"Bone": func(p *ini.Parser) error {
			v, err := p.ParseIdentifier()
			b.Bone = v
			return err
		},
		"Flags": func(p *ini.Parser) error {
			v, err := slaveFlags.Parse(p)
			b.Flags = v
			return err
		},
		"Min": func(p *ini.Parser) error {
			v, err := p.ParseFloat()
			b.Min = v
			return err
		},
		"Max": func(p *ini.Parser) error {
			v, err := p.ParseFloat()
			b.Max = v
			return err
		},
		"Template": func(p *ini.Parser) error {
			v, err := p.ParseAssetReference()
			b.Template = v
			return err
		},
	})
	if err != nil {
		return err
	}
	s.Slaves = append(s.Slaves, b)
	return nil
}
