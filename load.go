package inidata

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"github.com/sageforge/inidata/gamedata"
	"github.com/sageforge/inidata/ini"
)

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}

func logEnabled(logger *slog.Logger, level slog.Level) bool {
	return logger != nil && logger.Enabled(context.Background(), level)
}

// loadAll parses every file from the source in parallel and merges the
// per-file contexts in sorted path order, later files overriding earlier
// records of the same name. The first failed file (in that same order)
// aborts the load.
func loadAll(source Source, cfg loadConfig) (*gamedata.GameData, error) {
	logger := cfg.logger
	ctx := context.Background()

	files, err := source.ListFiles()
	if err != nil {
		return nil, err
	}
	slices.Sort(files)

	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(ctx, slog.LevelInfo, "parallel loading",
			slog.Int("files", len(files)))
	}

	type fileResult struct {
		data *gamedata.GameData
		err  error
	}
	results := make([]fileResult, len(files))

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())

	for i, file := range files {
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			content, err := readFile(source, path)
			if err != nil {
				results[idx] = fileResult{err: fmt.Errorf("%s: %w", path, err)}
				return
			}
			data, err := parseOne(path, content, cfg)
			results[idx] = fileResult{data: data, err: err}
		}(i, file)
	}
	wg.Wait()

	merged := gamedata.New()
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		merged.Merge(r.data)
	}

	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(ctx, slog.LevelInfo, "parallel loading complete",
			slog.Int("files", len(files)),
			slog.Int("records", merged.Count()))
	}

	return merged, nil
}

// parseOne parses a single source unit into a fresh aggregation context.
func parseOne(file string, content []byte, cfg loadConfig) (*gamedata.GameData, error) {
	p, err := ini.New(file, content,
		ini.WithLogger(componentLogger(cfg.logger, "parser")),
		ini.WithVersion(cfg.version))
	if err != nil {
		return nil, err
	}

	data := gamedata.New()
	if err := ini.ParseFile(p, gamedata.Registry(), data); err != nil {
		return nil, err
	}
	return data, nil
}

func readFile(source Source, path string) ([]byte, error) {
	r, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
