package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dylan-ru/sub-lator/internal/keystore"
	"github.com/dylan-ru/sub-lator/internal/provider"
)

// runKeys executes the keys command against one provider's store.
func (a *App) runKeys(ctx context.Context) error {
	p, err := provider.ByName(a.config.Provider)
	if err != nil {
		return err
	}
	store := a.Keys(p.Name).Store()

	switch a.config.KeysAction {
	case KeysAdd:
		if err := store.Add(a.config.KeyArgument); err != nil {
			return err
		}
		a.logger.Info("API key added.", "provider", p.Name, "key", keystore.Mask(a.config.KeyArgument))

	case KeysRemove:
		if err := store.Remove(a.config.KeyArgument); err != nil {
			return err
		}
		a.logger.Info("API key removed.", "provider", p.Name, "key", keystore.Mask(a.config.KeyArgument))

	case KeysClear:
		if err := store.RemoveAll(); err != nil {
			return err
		}
		a.logger.Info("All API keys removed.", "provider", p.Name)

	case KeysList:
		keys := store.Keys()
		if len(keys) == 0 {
			fmt.Fprintf(a.outW, "No API keys stored for %s.\n", p.Name)
			return nil
		}
		for _, key := range keys {
			fmt.Fprintln(a.outW, keystore.Mask(key))
		}

	case KeysImport:
		keys, err := a.importKeys(a.config.KeyArgument, a.config.ImportPassword)
		if err != nil {
			return err
		}
		for _, key := range keys {
			if err := store.Add(key); err != nil {
				return err
			}
		}
		a.logger.Info("API keys imported.", "provider", p.Name, "count", len(keys))

	default:
		return fmt.Errorf("unknown keys action %q", a.config.KeysAction)
	}

	return nil
}

// importKeys picks the import codec by extension: zip archives must be
// password protected, anything else reads as plain text.
func (a *App) importKeys(path, password string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		if password == "" {
			return nil, fmt.Errorf("zip import requires -password")
		}
		return keystore.ImportZip(path, password)
	}
	return keystore.ImportText(path)
}
