package tracker

import (
	"slices"

	"github.com/idilsaglam/expenses/internal/model"
)

// State is everything the display needs: the list as shown and the active
// theme. Handlers return a new State and never alias the caller's slice.
type State struct {
	Entries []model.Entry
	Theme   model.Theme
}

func (s State) clone() State {
	return State{Entries: slices.Clone(s.Entries), Theme: s.Theme}
}

func (s State) Len() int { return len(s.Entries) }

// Selection is an optional list position.
type Selection struct {
	index int
	ok    bool
}

// NoSelection means nothing is highlighted.
var NoSelection = Selection{}

func Select(i int) Selection { return Selection{index: i, ok: true} }

func (s Selection) Index() (int, bool) { return s.index, s.ok }
