package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/expenses/internal/model"
	"github.com/idilsaglam/expenses/internal/ui"
)

// listItem adapts an Entry to bubbles/list.Item.
type listItem struct {
	entry model.Entry
}

func (i listItem) FilterValue() string { return i.entry.Text }

func toItems(entries []model.Entry) []list.Item {
	out := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		out = append(out, listItem{entry: e})
	}
	return out
}

// itemDelegate renders one entry per line in the active theme. The cursor
// is only drawn while the list has focus, since that is when a selection
// exists.
type itemDelegate struct {
	styles  ui.Styles
	focused bool
	width   int
}

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	text := it.entry.Text
	if r := []rune(text); d.width > 12 && len(r) > d.width-8 {
		text = string(r[:d.width-11]) + "..."
	}
	line := fmt.Sprintf("%2d. %s", index+1, text)
	if d.focused && index == m.Index() {
		fmt.Fprint(w, d.styles.Selected.Render("> "+line))
		return
	}
	fmt.Fprint(w, d.styles.Item.Render("  "+line))
}
