package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/sageforge/inidata/gamedata"
)

var listKind string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List record names, optionally filtered by kind",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadData()
		if err != nil {
			return err
		}

		for _, kind := range recordKinds {
			if listKind != "" && listKind != kind.name {
				continue
			}
			for _, name := range kind.names(data) {
				fmt.Printf("%s\t%s\n", kind.name, name)
			}
		}
		return nil
	},
}

type recordKind struct {
	name  string
	names func(*gamedata.GameData) []string
}

var recordKinds = []recordKind{
	{"object", func(g *gamedata.GameData) []string { return sortedKeys(g.Objects) }},
	{"weapon", func(g *gamedata.GameData) []string { return sortedKeys(g.Weapons) }},
	{"armor", func(g *gamedata.GameData) []string { return sortedKeys(g.Armors) }},
	{"locomotor", func(g *gamedata.GameData) []string { return sortedKeys(g.Locomotors) }},
	{"commandbutton", func(g *gamedata.GameData) []string { return sortedKeys(g.CommandButtons) }},
	{"particlesystem", func(g *gamedata.GameData) []string { return sortedKeys(g.ParticleSystems) }},
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func init() {
	listCmd.Flags().StringVar(&listKind, "kind", "", "only list records of this kind")
	rootCmd.AddCommand(listCmd)
}
