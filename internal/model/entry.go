package model

import (
	"errors"
	"strings"
)

// Entry is one line of the expense list. It has no identity beyond its
// text and its position; duplicates are allowed.
type Entry struct {
	Text string `json:"text"`
}

// NewEntry trims surrounding whitespace. The result may be empty; callers
// decide whether that is acceptable.
func NewEntry(text string) Entry {
	return Entry{Text: strings.TrimSpace(text)}
}

// Valid reports whether the entry can be stored as a single line.
func (e Entry) Valid() bool {
	t := strings.TrimSpace(e.Text)
	return t != "" && !strings.ContainsAny(t, "\r\n")
}

func (e Entry) String() string { return e.Text }

// Texts flattens entries to their text, in order.
func Texts(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Text)
	}
	return out
}

// ErrInvalidEntry is returned when an entry is empty after trimming or
// would span more than one line on disk.
var ErrInvalidEntry = errors.New("invalid entry")

// CheckEntries validates every entry before anything touches disk.
func CheckEntries(entries ...Entry) error {
	for _, e := range entries {
		if !e.Valid() {
			return ErrInvalidEntry
		}
	}
	return nil
}
