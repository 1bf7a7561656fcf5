// Package app wires the application together: logger, key managers, API
// clients, and the command dispatcher.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dylan-ru/sub-lator/internal/keystore"
	"github.com/dylan-ru/sub-lator/internal/provider"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config

	// keyManagers holds one rotation manager per provider, keyed by
	// provider name.
	keyManagers map[string]*keystore.Manager

	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and one key
// manager per provider.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg, outW)
	logger.Debug("Logger configured successfully.")

	baseDir := cfg.ConfigDir
	if baseDir == "" {
		var err error
		baseDir, err = keystore.DefaultBaseDir()
		if err != nil {
			// A missing home directory is a fatal startup error.
			panic(fmt.Errorf("failed to resolve key storage directory: %w", err))
		}
	}

	keyManagers := make(map[string]*keystore.Manager)
	for _, p := range provider.All() {
		keyManagers[p.Name] = keystore.NewManager(keystore.NewStore(baseDir, p.KeyFileName))
	}
	logger.Debug("Key managers initialized.", "providers", provider.Names(), "dir", baseDir)

	return &App{
		outW:        outW,
		logger:      logger,
		config:      cfg,
		keyManagers: keyManagers,
	}
}

// Keys returns the key manager for the named provider. The provider name
// has been validated by NewConfig, so a miss is a programmer error.
func (a *App) Keys(providerName string) *keystore.Manager {
	m, ok := a.keyManagers[providerName]
	if !ok {
		panic(fmt.Sprintf("no key manager for provider %q", providerName))
	}
	return m
}
