package prefstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/expenses/internal/model"
)

// DefaultFileName is the settings file holding a single theme token.
const DefaultFileName = "settings.txt"

type Store struct {
	path string
}

func New(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// LoadFlag returns Light when the file is missing or holds anything but
// "dark".
func (s *Store) LoadFlag(_ context.Context) (model.Theme, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Light, nil
		}
		return model.Light, fmt.Errorf("read settings: %w", err)
	}
	return model.ParseTheme(string(b)), nil
}

// SaveFlag writes exactly "dark" or "light", no trailing newline.
func (s *Store) SaveFlag(_ context.Context, t model.Theme) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(t.String()), 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
