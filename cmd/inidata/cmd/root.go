package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sageforge/inidata"
	"github.com/sageforge/inidata/gamedata"
	"github.com/sageforge/inidata/ini"
)

var (
	cfgFile    string
	paths      []string
	extensions []string
	gameTag    string
	verbose    bool
	traceLog   bool
)

var rootCmd = &cobra.Command{
	Use:   "inidata",
	Short: "SAGE-style INI definition parser and query tool",
	Long: `inidata loads line-oriented, block-structured game-definition files
(Object, Weapon, Armor, Locomotor, CommandButton, ParticleSystem, GameData
blocks) and reports precise file:line:column diagnostics on malformed input.

Search paths come from --path flags and/or a YAML config file.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (paths, extensions, version)")
	rootCmd.PersistentFlags().StringArrayVarP(&paths, "path", "p", nil, "definition search path (repeatable)")
	rootCmd.PersistentFlags().StringArrayVar(&extensions, "ext", nil, "file extension to recognize (default .ini)")
	rootCmd.PersistentFlags().StringVar(&gameTag, "game-version", "", "data revision: generals or zerohour (default zerohour)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&traceLog, "trace", false, "enable per-token trace logging (implies -v)")
}

// newLogger builds the slog logger selected by the verbosity flags, or nil
// when logging is off.
func newLogger() *slog.Logger {
	var level slog.Level
	switch {
	case traceLog:
		level = inidata.LevelTrace
	case verbose:
		level = slog.LevelDebug
	default:
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveConfig merges the config file (if any) with command-line flags.
// Flags win over the file.
func resolveConfig() (*Config, error) {
	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if len(paths) > 0 {
		cfg.Paths = paths
	}
	if len(extensions) > 0 {
		cfg.Extensions = extensions
	}
	if gameTag != "" {
		cfg.Version = gameTag
	}
	return cfg, nil
}

func (c *Config) gameVersion() (ini.Version, error) {
	switch c.Version {
	case "", "zerohour":
		return gamedata.VersionZeroHour, nil
	case "generals":
		return gamedata.VersionGenerals, nil
	default:
		return 0, fmt.Errorf("unknown game version %q (want generals or zerohour)", c.Version)
	}
}

// buildSource assembles the Source from the resolved config.
func buildSource(cfg *Config) (inidata.Source, error) {
	if len(cfg.Paths) == 0 {
		return nil, fmt.Errorf("no search paths: use --path or a config file")
	}

	var opts []inidata.SourceOption
	if len(cfg.Extensions) > 0 {
		opts = append(opts, inidata.WithExtensions(cfg.Extensions...))
	}

	sources := make([]inidata.Source, 0, len(cfg.Paths))
	for _, p := range cfg.Paths {
		src, err := inidata.DirTree(p, opts...)
		if err != nil {
			return nil, fmt.Errorf("search path %s: %w", p, err)
		}
		sources = append(sources, src)
	}
	if len(sources) == 1 {
		return sources[0], nil
	}
	return inidata.Multi(sources...), nil
}

// loadData runs the whole pipeline behind most subcommands.
func loadData() (*gamedata.GameData, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	version, err := cfg.gameVersion()
	if err != nil {
		return nil, err
	}
	source, err := buildSource(cfg)
	if err != nil {
		return nil, err
	}
	return inidata.Load(source,
		inidata.WithLogger(newLogger()),
		inidata.WithVersion(version))
}
