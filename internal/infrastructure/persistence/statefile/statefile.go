// Package statefile persists preferences in a TOML file under the XDG state directory.
package statefile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/shade/internal/application/port"
)

// Compile-time interface check.
var _ port.PreferenceBackend = (*Store)(nil)

const (
	fileDirPerm  = 0o750
	fileDataPerm = 0o600
)

// stateFile is the on-disk layout of the file backend.
type stateFile struct {
	Preferences map[string]string `toml:"preferences"`
}

// Store keeps preferences in a TOML state file. Every Set rewrites the file
// atomically while holding an advisory lock on a sibling lock file.
type Store struct {
	path string
}

// New creates a store at path. The file is created on first Set.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("state file path cannot be empty")
	}
	return &Store{path: path}, nil
}

// Path returns the state file location.
func (f *Store) Path() string {
	return f.path
}

// Get implements port.PreferenceBackend.
func (f *Store) Get(_ context.Context, key string) (string, bool, error) {
	state, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := state.Preferences[key]
	return v, ok, nil
}

// Set implements port.PreferenceBackend.
func (f *Store) Set(_ context.Context, key, value string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), fileDirPerm); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	unlock, err := lockFile(f.path + ".lock")
	if err != nil {
		return fmt.Errorf("lock state file: %w", err)
	}
	defer unlock()

	state, err := f.read()
	if err != nil {
		return err
	}
	state.Preferences[key] = value

	data, err := toml.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".state-*.toml")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Chmod(fileDataPerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

func (f *Store) read() (stateFile, error) {
	state := stateFile{Preferences: make(map[string]string)}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("read state file: %w", err)
	}

	if err := toml.Unmarshal(data, &state); err != nil {
		return state, fmt.Errorf("parse state file %s: %w", f.path, err)
	}
	if state.Preferences == nil {
		state.Preferences = make(map[string]string)
	}
	return state, nil
}
