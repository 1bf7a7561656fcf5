package app

import (
	"errors"
	"fmt"

	"github.com/dylan-ru/sub-lator/internal/provider"
	"github.com/dylan-ru/sub-lator/internal/transcribe"
	"github.com/dylan-ru/sub-lator/internal/translate"
)

// Command names accepted on the CLI.
const (
	CommandTranslate  = "translate"
	CommandTranscribe = "transcribe"
	CommandSync       = "sync"
	CommandKeys       = "keys"
	CommandRun        = "run"
)

// Key management actions.
const (
	KeysAdd    = "add"
	KeysRemove = "remove"
	KeysList   = "list"
	KeysClear  = "clear"
	KeysImport = "import"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command string

	// translate / transcribe
	Inputs    []string
	Language  string
	Provider  string
	Model     string
	OutputDir string
	Format    string

	// sync
	SubtitlePath string
	MediaPath    string
	OutputPath   string
	MaxOffset    float64
	UseDTW       bool

	// keys
	KeysAction     string
	KeyArgument    string
	ImportPassword string

	// run
	JobPath string

	// global
	LogFormat       string
	LogLevel        string
	WorkerCount     int
	HealthcheckPort int
	ConfigDir       string
}

// NewConfig validates a parsed configuration and applies no defaults beyond
// what the CLI layer already set.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if cfg.WorkerCount < 1 {
		return nil, errors.New("workers must be at least 1")
	}

	switch cfg.Command {
	case CommandTranslate:
		if len(cfg.Inputs) == 0 {
			return nil, errors.New("translate requires at least one file or directory")
		}
		p, err := provider.ByName(cfg.Provider)
		if err != nil {
			return nil, err
		}
		if !p.Can(provider.Translate) {
			return nil, fmt.Errorf("provider %q does not support translation", p.Name)
		}
		if _, _, err := translate.ResolveLanguage(cfg.Language); err != nil {
			return nil, err
		}

	case CommandTranscribe:
		if len(cfg.Inputs) == 0 {
			return nil, errors.New("transcribe requires at least one file or directory")
		}
		p, err := provider.ByName(cfg.Provider)
		if err != nil {
			return nil, err
		}
		if !p.Can(provider.Transcribe) {
			return nil, fmt.Errorf("provider %q does not support transcription", p.Name)
		}
		if _, err := transcribe.ParseFormat(cfg.Format); err != nil {
			return nil, err
		}

	case CommandSync:
		if cfg.SubtitlePath == "" || cfg.MediaPath == "" {
			return nil, errors.New("sync requires a SUBTITLE and a MEDIA argument")
		}
		if cfg.MaxOffset < 0 {
			return nil, errors.New("max-offset cannot be negative")
		}

	case CommandKeys:
		switch cfg.KeysAction {
		case KeysAdd, KeysRemove, KeysImport:
			if cfg.KeyArgument == "" {
				return nil, fmt.Errorf("keys %s requires an argument", cfg.KeysAction)
			}
		case KeysList, KeysClear:
		case "":
			return nil, errors.New("keys requires an action: add, remove, list, clear, or import")
		default:
			return nil, fmt.Errorf("unknown keys action %q", cfg.KeysAction)
		}
		if _, err := provider.ByName(cfg.Provider); err != nil {
			return nil, err
		}

	case CommandRun:
		if cfg.JobPath == "" {
			return nil, errors.New("run requires a job file or directory")
		}

	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	return &cfg, nil
}
