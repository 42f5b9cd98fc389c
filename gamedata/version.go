package gamedata

import "github.com/sageforge/inidata/ini"

// Data revisions. Fields introduced by an expansion are gated with
// ini.FieldSince and rejected when parsing base-game data.
const (
	VersionGenerals ini.Version = 1
	VersionZeroHour ini.Version = 2
)
