// Package keystore persists per-provider API keys as JSON files and layers
// round-robin rotation with cooldown bookkeeping on top of them.
package keystore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// DefaultDirName is the configuration directory created under the user's
// home directory.
const DefaultDirName = ".srt_translator"

// keyFile is the on-disk layout of a provider's key file.
type keyFile struct {
	Keys []string `json:"keys"`
}

// Store reads and writes one provider's key file. The zero value is not
// usable; construct with NewStore.
type Store struct {
	path string
}

// NewStore returns a Store backed by the named file inside baseDir. The
// directory is created on first write, not here, so a read-only lookup of a
// key that was never added does not touch the filesystem.
func NewStore(baseDir, fileName string) *Store {
	return &Store{path: filepath.Join(baseDir, fileName)}
}

// DefaultBaseDir resolves the per-user configuration directory.
func DefaultBaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultDirName), nil
}

// Path returns the location of the underlying key file.
func (s *Store) Path() string {
	return s.path
}

// Keys returns all stored keys. A missing or corrupt file reads as an empty
// list rather than an error, matching how a fresh install behaves.
func (s *Store) Keys() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var kf keyFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil
	}
	return kf.Keys
}

// Add persists a new key. Adding a key that is already present is a no-op.
func (s *Store) Add(key string) error {
	keys := s.Keys()
	if slices.Contains(keys, key) {
		return nil
	}
	return s.write(append(keys, key))
}

// Remove deletes a key. Removing an unknown key is a no-op.
func (s *Store) Remove(key string) error {
	keys := s.Keys()
	i := slices.Index(keys, key)
	if i < 0 {
		return nil
	}
	return s.write(slices.Delete(keys, i, i+1))
}

// RemoveAll deletes every stored key.
func (s *Store) RemoveAll() error {
	return s.write(nil)
}

func (s *Store) write(keys []string) error {
	if keys == nil {
		keys = []string{}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create key storage directory: %w", err)
	}
	data, err := json.Marshal(keyFile{Keys: keys})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}
