// Package cli translates command-line arguments into a validated app
// configuration.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dylan-ru/sub-lator/internal/app"
	"github.com/dylan-ru/sub-lator/internal/provider"
	"github.com/dylan-ru/sub-lator/internal/translate"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usageText = `sublator - a batch subtitle toolkit: translate, transcribe, synchronize.

Usage:
  sublator <command> [options] [ARGS]

Commands:
  translate   Translate .srt files to a target language.
  transcribe  Transcribe video/audio files into subtitles.
  sync        Align an .srt file against its media's audio track.
  keys        Manage provider API keys (add|remove|list|clear|import).
  run         Execute a declarative .hcl job file.

Run 'sublator <command> -h' for command options.
`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	if len(args) == 0 {
		fmt.Fprint(output, usageText)
		return nil, true, nil
	}

	command := args[0]
	rest := args[1:]

	var cfg *app.Config
	var err error
	switch command {
	case "translate":
		cfg, err = parseTranslate(rest, output)
	case "transcribe":
		cfg, err = parseTranscribe(rest, output)
	case "sync":
		cfg, err = parseSync(rest, output)
	case "keys":
		cfg, err = parseKeys(rest, output)
	case "run":
		cfg, err = parseRun(rest, output)
	case "-h", "--help", "help":
		fmt.Fprint(output, usageText)
		return nil, true, nil
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", command)}
	}

	if err == flag.ErrHelp {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	validated, err := app.NewConfig(*cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return validated, false, nil
}

// addGlobalFlags registers the flags shared by every command.
func addGlobalFlags(fs *flag.FlagSet, cfg *app.Config) {
	fs.StringVar(&cfg.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	fs.IntVar(&cfg.WorkerCount, "workers", 4, "Number of concurrent workers for batch execution.")
	fs.IntVar(&cfg.HealthcheckPort, "healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	fs.StringVar(&cfg.ConfigDir, "config-dir", "", "Override the key storage directory (default ~/.srt_translator).")
}

func newFlagSet(name string, output io.Writer, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, usage)
		fs.PrintDefaults()
	}
	return fs
}

func parseTranslate(args []string, output io.Writer) (*app.Config, error) {
	cfg := &app.Config{Command: app.CommandTranslate}
	fs := newFlagSet("translate", output, `
Usage: sublator translate [options] FILE_OR_DIR...

Translates .srt files through a chat-completion API. Output lands next to
each source file as {base}-{LANG}.srt unless -out is given.

Options:
`)
	fs.StringVar(&cfg.Language, "lang", "English",
		fmt.Sprintf("Target language. Options: %s.", strings.Join(translate.Languages(), ", ")))
	fs.StringVar(&cfg.Provider, "provider", provider.OpenRouter.Name, "Translation provider: openrouter or groq.")
	fs.StringVar(&cfg.Model, "model", "", "Model identifier. Empty selects the provider default.")
	fs.StringVar(&cfg.OutputDir, "out", "", "Directory for translated files. Empty writes next to sources.")
	addGlobalFlags(fs, cfg)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Inputs = fs.Args()
	return cfg, nil
}

func parseTranscribe(args []string, output io.Writer) (*app.Config, error) {
	cfg := &app.Config{Command: app.CommandTranscribe}
	fs := newFlagSet("transcribe", output, `
Usage: sublator transcribe [options] FILE_OR_DIR...

Transcribes video/audio files into subtitle documents. Directories are
walked recursively for video files.

Options:
`)
	fs.StringVar(&cfg.Provider, "provider", provider.Groq.Name, "Transcription provider: groq or assemblyai.")
	fs.StringVar(&cfg.Format, "format", "srt", "Output format: srt, vtt, or txt.")
	addGlobalFlags(fs, cfg)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Inputs = fs.Args()
	return cfg, nil
}

func parseSync(args []string, output io.Writer) (*app.Config, error) {
	cfg := &app.Config{Command: app.CommandSync}
	fs := newFlagSet("sync", output, `
Usage: sublator sync [options] SUBTITLE MEDIA

Aligns the subtitle file's timings with the speech in the media file's
audio track. Requires ffmpeg and ffprobe on PATH.

Options:
`)
	fs.StringVar(&cfg.OutputPath, "out", "", "Output path. Empty writes {base}-synced.srt next to the subtitle.")
	fs.Float64Var(&cfg.MaxOffset, "max-offset", 10, "Largest global offset to accept, in seconds.")
	fs.BoolVar(&cfg.UseDTW, "dtw", false, "Refine alignment with dynamic time warping (memory-heavy on long media).")
	addGlobalFlags(fs, cfg)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	if len(rest) > 0 {
		cfg.SubtitlePath = rest[0]
	}
	if len(rest) > 1 {
		cfg.MediaPath = rest[1]
	}
	return cfg, nil
}

func parseKeys(args []string, output io.Writer) (*app.Config, error) {
	cfg := &app.Config{Command: app.CommandKeys}
	fs := newFlagSet("keys", output, `
Usage: sublator keys [options] <add|remove|list|clear|import> [KEY|FILE]

Manages API keys stored under the configuration directory. Keys are listed
masked. Import accepts a plain text file (one key per line) or a
password-protected zip containing one.

Options:
`)
	fs.StringVar(&cfg.Provider, "provider", provider.OpenRouter.Name,
		fmt.Sprintf("Provider whose keys to manage: %s.", strings.Join(provider.Names(), ", ")))
	fs.StringVar(&cfg.ImportPassword, "password", "", "Password for zip import.")
	addGlobalFlags(fs, cfg)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	if len(rest) > 0 {
		cfg.KeysAction = rest[0]
	}
	if len(rest) > 1 {
		cfg.KeyArgument = rest[1]
	}
	return cfg, nil
}

func parseRun(args []string, output io.Writer) (*app.Config, error) {
	cfg := &app.Config{Command: app.CommandRun}
	fs := newFlagSet("run", output, `
Usage: sublator run [options] JOB_PATH

Executes a declarative job file. JOB_PATH is a single .hcl file or a
directory containing .hcl files.

Options:
`)
	addGlobalFlags(fs, cfg)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		cfg.JobPath = fs.Arg(0)
	}
	return cfg, nil
}
