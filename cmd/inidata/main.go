// Command inidata is a CLI tool for loading, checking, and dumping SAGE-style
// INI game-definition data.
package main

import (
	"os"

	"github.com/sageforge/inidata/cmd/inidata/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
