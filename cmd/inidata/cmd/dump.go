package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sageforge/inidata/gamedata"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [name]",
	Short: "Dump records as JSON",
	Long: `Dump outputs records as JSON. With a name argument, only the records
with that name (across all kinds) are printed; without, the whole context.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadData()
		if err != nil {
			return err
		}

		var out any = data
		if len(args) == 1 {
			found := findByName(data, args[0])
			if len(found) == 0 {
				return fmt.Errorf("no record named %q", args[0])
			}
			out = found
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

// findByName collects same-named records across kinds; names are unique per
// kind but not globally.
func findByName(data *gamedata.GameData, name string) map[string]any {
	found := make(map[string]any)
	if r, ok := data.Objects[name]; ok {
		found["object"] = r
	}
	if r, ok := data.Weapons[name]; ok {
		found["weapon"] = r
	}
	if r, ok := data.Armors[name]; ok {
		found["armor"] = r
	}
	if r, ok := data.Locomotors[name]; ok {
		found["locomotor"] = r
	}
	if r, ok := data.CommandButtons[name]; ok {
		found["commandbutton"] = r
	}
	if r, ok := data.ParticleSystems[name]; ok {
		found["particlesystem"] = r
	}
	return found
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
