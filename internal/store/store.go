package store

import (
	"context"
	"fmt"
	"io"

	"github.com/idilsaglam/expenses/internal/config"
	"github.com/idilsaglam/expenses/internal/model"
	"github.com/idilsaglam/expenses/internal/store/prefstore"
	"github.com/idilsaglam/expenses/internal/store/sqlitestore"
	"github.com/idilsaglam/expenses/internal/store/textstore"
)

// RecordStore persists the ordered expense list. There is no "delete one"
// primitive: removal is done by overwriting the whole record.
type RecordStore interface {
	LoadAll(ctx context.Context) ([]model.Entry, error)
	Append(ctx context.Context, e model.Entry) error
	OverwriteAll(ctx context.Context, entries []model.Entry) error
}

// PreferenceStore persists the theme flag.
type PreferenceStore interface {
	LoadFlag(ctx context.Context) (model.Theme, error)
	SaveFlag(ctx context.Context, t model.Theme) error
}

var (
	_ RecordStore     = (*textstore.Store)(nil)
	_ RecordStore     = (*sqlitestore.Store)(nil)
	_ PreferenceStore = (*prefstore.Store)(nil)
)

// Stores bundles the two stores opened from a config.
type Stores struct {
	Records RecordStore
	Prefs   PreferenceStore
	closer  io.Closer
}

func (s *Stores) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Open picks the record backend named by cfg.Backend.
func Open(cfg *config.Config) (*Stores, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	out := &Stores{Prefs: prefstore.New(cfg.SettingsPath())}
	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := sqlitestore.Open(cfg.SQLitePath())
		if err != nil {
			return nil, fmt.Errorf("open records: %w", err)
		}
		out.Records, out.closer = s, s
	default:
		out.Records = textstore.New(cfg.RecordPath())
	}
	return out, nil
}
