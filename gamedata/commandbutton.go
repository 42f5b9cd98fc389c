package gamedata

import "github.com/sageforge/inidata/ini"

// CommandType is the action a command button triggers.
type CommandType int

const (
	CommandUnitBuild CommandType = iota
	CommandDozerConstruct
	CommandFireWeapon
	CommandSpecialPower
	CommandSetRallyPoint
	CommandSell
	CommandStop
	CommandExitContainer
	CommandEvacuate
)

var commandTypes = ini.NewEnumMap("Command", map[string]CommandType{
	"UNIT_BUILD":      CommandUnitBuild,
	"DOZER_CONSTRUCT": CommandDozerConstruct,
	"FIRE_WEAPON":     CommandFireWeapon,
	"SPECIAL_POWER":   CommandSpecialPower,
	"SET_RALLY_POINT": CommandSetRallyPoint,
	"SELL":            CommandSell,
	"STOP":            CommandStop,
	"EXIT_CONTAINER":  CommandExitContainer,
	"EVACUATE":        CommandEvacuate,
})

// ButtonOptions modify targeting and availability of a command button.
type ButtonOptions uint32

const (
	OptionNeedTargetEnemy ButtonOptions = 1 << iota
	OptionNeedTargetNeutral
	OptionNeedTargetAlly
	OptionNeedTargetPos
	OptionOkForMultiSelect
	OptionCheckLike
)

var buttonOptions = ini.NewBitsetMap("Options", map[string]ButtonOptions{
	"NEED_TARGET_ENEMY_OBJECT":   OptionNeedTargetEnemy,
	"NEED_TARGET_NEUTRAL_OBJECT": OptionNeedTargetNeutral,
	"NEED_TARGET_ALLY_OBJECT":    OptionNeedTargetAlly,
	"NEED_TARGET_POS":            OptionNeedTargetPos,
	"OK_FOR_MULTI_SELECT":        OptionOkForMultiSelect,
	"CHECK_LIKE":                 OptionCheckLike,
})

// CommandButton is one named CommandButton block: a UI scheme entry binding
// a button to a command and its targets.
type CommandButton struct {
	Name          string
	Command       CommandType
	Object        string
	Upgrade       string
	Options       ButtonOptions
	TextLabel     string
	ButtonImage   string
	DescriptLabel string
	Science       []string
}

func (c *CommandButton) setName(name string) { c.Name = name }

var commandButtonFields = ini.FieldTable[CommandButton]{
	"Command": ini.Field(func(p *ini.Parser, c *CommandButton) error {
		v, err := commandTypes.Parse(p)
		c.Command = v
		return err
	}),
	"Object": ini.Field(func(p *ini.Parser, c *CommandButton) error {
		v, err := p.ParseAssetReference()
		c.Object = v
		return err
	}),
	"Upgrade": ini.Field(func(p *ini.Parser, c *CommandButton) error {
		v, err := p.ParseAssetReference()
		c.Upgrade = v
		return err
	}),
	"Options": ini.Field(func(p *ini.Parser, c *CommandButton) error {
		v, err := buttonOptions.Parse(p)
		c.Options = v
		return err
	}),
	"TextLabel": ini.Field(func(p *ini.Parser, c *CommandButton) error {
		v, err := p.ParseString()
		c.TextLabel = v
		return err
	}),
	"ButtonImage": ini.Field(func(p *ini.Parser, c *CommandButton) error {
		v, err := p.ParseString()
		c.ButtonImage = v
		return err
	}),
	"DescriptLabel": ini.Field(func(p *ini.Parser, c *CommandButton) error {
		v, err := p.ParseString()
		c.DescriptLabel = v
		return err
	}),
	// Science = SCIENCE_Paratroopers SCIENCE_A10Strike
	"Science": ini.Field(func(p *ini.Parser, c *CommandButton) error {
		v, err := p.ParseStringArrayRequired()
		c.Science = v
		return err
	}),
}
