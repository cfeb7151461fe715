// Package tracker owns the rules that keep the displayed expense list and
// the durable record equal.
//
// Adds append one line. Deletes rebuild the list in memory and overwrite the
// whole record with it; the store is never asked what the list looks like
// after a removal. A handler only commits its new State when the store
// write succeeded, so a failed write leaves memory and disk unchanged.
package tracker

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/expenses/internal/logging"
	"github.com/idilsaglam/expenses/internal/model"
	"github.com/idilsaglam/expenses/internal/store"
)

type Tracker struct {
	records store.RecordStore
	prefs   store.PreferenceStore
	log     zerolog.Logger
}

func New(records store.RecordStore, prefs store.PreferenceStore, log zerolog.Logger) *Tracker {
	return &Tracker{
		records: records,
		prefs:   prefs,
		log:     logging.Component(log, "tracker"),
	}
}

// Start loads the record and the theme.
func (t *Tracker) Start(ctx context.Context) (State, error) {
	entries, err := t.records.LoadAll(ctx)
	if err != nil {
		t.log.Error().Err(err).Msg("load records")
		return State{}, storageErr("load records", err)
	}
	theme, err := t.prefs.LoadFlag(ctx)
	if err != nil {
		t.log.Error().Err(err).Msg("load theme")
		return State{}, storageErr("load theme", err)
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	t.log.Info().Int("entries", len(entries)).Str("theme", theme.String()).Msg("started")
	return State{Entries: entries, Theme: theme}, nil
}

// SubmitText appends text as a new last entry. Blank or multi-line input
// is an InputError.
func (t *Tracker) SubmitText(ctx context.Context, st State, text string) (State, error) {
	e := model.NewEntry(text)
	if e.Text == "" {
		t.log.Warn().Msg("empty submission")
		return st, ErrEmptyEntry
	}
	if !e.Valid() {
		t.log.Warn().Msg("multi-line submission")
		return st, ErrMultiline
	}
	if err := t.records.Append(ctx, e); err != nil {
		t.log.Error().Err(err).Msg("append entry")
		return st, storageErr("save expense", err)
	}
	next := st.clone()
	next.Entries = append(next.Entries, e)
	t.log.Debug().Int("entries", len(next.Entries)).Msg("entry added")
	return next, nil
}

// RequestDelete removes the selected position and overwrites the record
// with what remains. An absent or out-of-range selection is an InputError.
func (t *Tracker) RequestDelete(ctx context.Context, st State, sel Selection) (State, error) {
	i, ok := sel.Index()
	if !ok || i < 0 || i >= len(st.Entries) {
		t.log.Warn().Int("index", i).Bool("selected", ok).Msg("delete without selection")
		return st, ErrNoSelection
	}
	next := st.clone()
	next.Entries = slices.Delete(next.Entries, i, i+1)
	if err := t.records.OverwriteAll(ctx, next.Entries); err != nil {
		t.log.Error().Err(err).Int("index", i).Msg("overwrite records")
		return st, storageErr("save expenses", err)
	}
	t.log.Debug().Int("index", i).Int("entries", len(next.Entries)).Msg("entry deleted")
	return next, nil
}

// ToggleTheme flips the theme and persists it.
func (t *Tracker) ToggleTheme(ctx context.Context, st State) (State, error) {
	return t.SetTheme(ctx, st, st.Theme.Toggle())
}

// SetTheme persists theme and makes it active.
func (t *Tracker) SetTheme(ctx context.Context, st State, theme model.Theme) (State, error) {
	if err := t.prefs.SaveFlag(ctx, theme); err != nil {
		t.log.Error().Err(err).Str("theme", theme.String()).Msg("save theme")
		return st, storageErr("save theme", err)
	}
	next := st.clone()
	next.Theme = theme
	t.log.Debug().Str("theme", theme.String()).Msg("theme changed")
	return next, nil
}
