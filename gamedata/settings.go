package gamedata

import "github.com/sageforge/inidata/ini"

// GeneralSettings is the anonymous GameData block: global tuning values.
// At most one survives a load; later definition files override it whole.
type GeneralSettings struct {
	ShellMapName        string
	MoneyDefault        int
	GravityAcceleration float64
	BuildSpeed          float64
	CameraHeight        float64
	ShowProps           bool
}

var generalSettingsFields = ini.FieldTable[GeneralSettings]{
	"ShellMapName": ini.Field(func(p *ini.Parser, s *GeneralSettings) error {
		v, err := p.ParseString()
		s.ShellMapName = v
		return err
	}),
	"MoneyDefault": ini.Field(func(p *ini.Parser, s *GeneralSettings) error {
		v, err := p.ParseInt()
		s.MoneyDefault = v
		return err
	}),
	"GravityAcceleration": ini.Field(func(p *ini.Parser, s *GeneralSettings) error {
		v, err := p.ParseFloat()
		s.GravityAcceleration = v
		return err
	}),
	"BuildSpeed": ini.Field(func(p *ini.Parser, s *GeneralSettings) error {
		v, err := p.ParseFloat()
		s.BuildSpeed = v
		return err
	}),
	"CameraHeight": ini.Field(func(p *ini.Parser, s *GeneralSettings) error {
		v, err := p.ParseFloat()
		s.CameraHeight = v
		return err
	}),
	"ShowProps": ini.Field(func(p *ini.Parser, s *GeneralSettings) error {
		v, err := p.ParseBoolean()
		s.ShowProps = v
		return err
	}),
}
