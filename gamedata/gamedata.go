// Package gamedata defines the record schemas recognized in definition files
// and the aggregation context they are collected into.
//
// Each record type declares its own ini.FieldTable; the parsing core knows
// nothing about any of them. All tables and enum maps are package-level,
// built once, and never mutated, so they are safe to share across
// concurrently running parsers.
package gamedata

import "github.com/sageforge/inidata/ini"

// GameData is the aggregation context: every record parsed from every source
// unit of one load, keyed by record name. Records are written once during
// parsing and read-only afterward.
type GameData struct {
	Objects         map[string]*Object
	Weapons         map[string]*Weapon
	Armors          map[string]*Armor
	Locomotors      map[string]*Locomotor
	CommandButtons  map[string]*CommandButton
	ParticleSystems map[string]*ParticleSystem
	Settings        *GeneralSettings
}

// New returns an empty aggregation context.
func New() *GameData {
	return &GameData{
		Objects:         make(map[string]*Object),
		Weapons:         make(map[string]*Weapon),
		Armors:          make(map[string]*Armor),
		Locomotors:      make(map[string]*Locomotor),
		CommandButtons:  make(map[string]*CommandButton),
		ParticleSystems: make(map[string]*ParticleSystem),
	}
}

// Merge copies every record from other into g. Records with the same name
// override: definition files loaded later replace earlier definitions.
func (g *GameData) Merge(other *GameData) {
	for name, r := range other.Objects {
		g.Objects[name] = r
	}
	for name, r := range other.Weapons {
		g.Weapons[name] = r
	}
	for name, r := range other.Armors {
		g.Armors[name] = r
	}
	for name, r := range other.Locomotors {
		g.Locomotors[name] = r
	}
	for name, r := range other.CommandButtons {
		g.CommandButtons[name] = r
	}
	for name, r := range other.ParticleSystems {
		g.ParticleSystems[name] = r
	}
	if other.Settings != nil {
		g.Settings = other.Settings
	}
}

// Count returns the total number of records in the context.
func (g *GameData) Count() int {
	n := len(g.Objects) + len(g.Weapons) + len(g.Armors) +
		len(g.Locomotors) + len(g.CommandButtons) + len(g.ParticleSystems)
	if g.Settings != nil {
		n++
	}
	return n
}

// registry is the top-level block registry, built once per process.
var registry = ini.Registry[GameData]{
	"Object": func(p *ini.Parser, g *GameData) error {
		rec, err := ini.ParseTopLevelNamedBlock(p, (*Object).setName, objectFields)
		if err != nil {
			return err
		}
		g.Objects[rec.Name] = rec
		return nil
	},
	"Weapon": func(p *ini.Parser, g *GameData) error {
		rec, err := ini.ParseTopLevelNamedBlock(p, (*Weapon).setName, weaponFields)
		if err != nil {
			return err
		}
		g.Weapons[rec.Name] = rec
		return nil
	},
	"Armor": func(p *ini.Parser, g *GameData) error {
		rec, err := ini.ParseTopLevelNamedBlock(p, (*Armor).setName, armorFields)
		if err != nil {
			return err
		}
		g.Armors[rec.Name] = rec
		return nil
	},
	"Locomotor": func(p *ini.Parser, g *GameData) error {
		rec, err := ini.ParseTopLevelNamedBlock(p, (*Locomotor).setName, locomotorFields)
		if err != nil {
			return err
		}
		g.Locomotors[rec.Name] = rec
		return nil
	},
	"CommandButton": func(p *ini.Parser, g *GameData) error {
		rec, err := ini.ParseTopLevelNamedBlock(p, (*CommandButton).setName, commandButtonFields)
		if err != nil {
			return err
		}
		g.CommandButtons[rec.Name] = rec
		return nil
	},
	"ParticleSystem": func(p *ini.Parser, g *GameData) error {
		rec, err := ini.ParseTopLevelNamedBlock(p, (*ParticleSystem).setName, particleSystemFields)
		if err != nil {
			return err
		}
		g.ParticleSystems[rec.Name] = rec
		return nil
	},
	"GameData": func(p *ini.Parser, g *GameData) error {
		rec, err := ini.ParseTopLevelBlock(p, generalSettingsFields)
		if err != nil {
			return err
		}
		g.Settings = rec
		return nil
	},
}

// Registry returns the top-level block registry shared by all parsers.
func Registry() ini.Registry[GameData] {
	return registry
}
