package app

import (
	"context"
	"fmt"
	"os"

	"github.com/dylan-ru/sub-lator/internal/ctxlog"
	"github.com/dylan-ru/sub-lator/internal/fsutil"
)

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
	}

	var err error
	switch a.config.Command {
	case CommandTranslate:
		err = a.runTranslate(ctx)
	case CommandTranscribe:
		err = a.runTranscribe(ctx)
	case CommandSync:
		err = a.runSync(ctx)
	case CommandKeys:
		err = a.runKeys(ctx)
	case CommandRun:
		err = a.runJob(ctx)
	default:
		err = fmt.Errorf("unknown command %q", a.config.Command)
	}

	a.logger.Debug("App.Run method finished.")
	return err
}

// collectFiles expands a mix of file and directory arguments into a flat
// file list, walking directories for the given extensions.
func collectFiles(inputs []string, extensions []string) ([]string, error) {
	var files []string
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", input, err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtensions(input, extensions)
			if err != nil {
				return nil, fmt.Errorf("failed to scan %s: %w", input, err)
			}
			files = append(files, found...)
			continue
		}
		files = append(files, input)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no matching files found in %v", inputs)
	}
	return files, nil
}
