package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load all definition files and report record counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadData()
		if err != nil {
			return err
		}

		fmt.Printf("objects:          %d\n", len(data.Objects))
		fmt.Printf("weapons:          %d\n", len(data.Weapons))
		fmt.Printf("armors:           %d\n", len(data.Armors))
		fmt.Printf("locomotors:       %d\n", len(data.Locomotors))
		fmt.Printf("command buttons:  %d\n", len(data.CommandButtons))
		fmt.Printf("particle systems: %d\n", len(data.ParticleSystems))
		if data.Settings != nil {
			fmt.Println("game data:        1")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
