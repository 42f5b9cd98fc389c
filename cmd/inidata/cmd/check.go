package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sageforge/inidata"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Parse every file individually and report each failure",
	Long: `Check parses each definition file on its own so one malformed file
does not hide problems in the others. Every failure is reported with its
file:line:column position. Exits non-zero if any file failed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		version, err := cfg.gameVersion()
		if err != nil {
			return err
		}
		source, err := buildSource(cfg)
		if err != nil {
			return err
		}

		files, err := source.ListFiles()
		if err != nil {
			return err
		}

		logger := newLogger()
		failures := 0
		for _, file := range files {
			content, err := readSourceFile(source, file)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
				failures++
				continue
			}
			_, err = inidata.ParseBytes(file, content,
				inidata.WithLogger(logger),
				inidata.WithVersion(version))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				failures++
			}
		}

		if failures > 0 {
			return fmt.Errorf("%d of %d files failed", failures, len(files))
		}
		fmt.Printf("%d files ok\n", len(files))
		return nil
	},
}

func readSourceFile(source inidata.Source, path string) ([]byte, error) {
	r, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
