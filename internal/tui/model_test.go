package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/expenses/internal/model"
	"github.com/idilsaglam/expenses/internal/store/prefstore"
	"github.com/idilsaglam/expenses/internal/store/textstore"
	"github.com/idilsaglam/expenses/internal/tracker"
)

type harness struct {
	m          Model
	recordPath string
	prefsPath  string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	h := &harness{
		recordPath: filepath.Join(dir, "expenses.txt"),
		prefsPath:  filepath.Join(dir, "settings.txt"),
	}
	tr := tracker.New(textstore.New(h.recordPath), prefstore.New(h.prefsPath), zerolog.Nop())
	st, err := tr.Start(context.Background())
	require.NoError(t, err)
	h.m = NewModel(context.Background(), tr, st)
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	updated, cmd := h.m.Update(msg)
	h.m = updated.(Model)
	return cmd
}

func (h *harness) typeText(text string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func (h *harness) press(k tea.KeyType) tea.Cmd {
	return h.send(tea.KeyMsg{Type: k})
}

func (h *harness) record(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(h.recordPath)
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(b)
}

func TestNewModelDefaults(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, focusInput, h.m.focus)
	assert.True(t, h.m.input.Focused())
	assert.Equal(t, model.Light, h.m.State().Theme)
	assert.Contains(t, h.m.View(), "Expense Tracker")
	assert.Contains(t, h.m.View(), "Enter Expense:")
	assert.Contains(t, h.m.View(), "Dark Mode")
}

func TestSubmitAddsAndPersists(t *testing.T) {
	h := newHarness(t)
	h.typeText("Coffee 4.50")
	h.press(tea.KeyEnter)
	h.typeText("Bus 2.00")
	h.press(tea.KeyEnter)

	assert.Equal(t, []string{"Coffee 4.50", "Bus 2.00"}, model.Texts(h.m.State().Entries))
	assert.Len(t, h.m.list.Items(), 2)
	assert.Equal(t, "", h.m.input.Value(), "input cleared after add")
	assert.Equal(t, "Coffee 4.50\nBus 2.00\n", h.record(t))
	assert.Contains(t, h.m.View(), "Bus 2.00")
}

func TestSubmitLongEntryKeepsEveryCharacter(t *testing.T) {
	h := newHarness(t)
	long := strings.Repeat("a", 250)
	h.typeText(long)
	h.press(tea.KeyEnter)

	require.Nil(t, h.m.warning)
	require.Len(t, h.m.State().Entries, 1)
	assert.Equal(t, long, h.m.State().Entries[0].Text)
	assert.Equal(t, long+"\n", h.record(t))
}

func TestSubmitEmptyShowsWarning(t *testing.T) {
	h := newHarness(t)
	h.typeText("   ")
	h.press(tea.KeyEnter)

	require.NotNil(t, h.m.warning)
	assert.Equal(t, "Input Error", h.m.warning.Title)
	assert.Contains(t, h.m.View(), "Please enter an expense.")
	assert.Empty(t, h.m.State().Entries)
	_, err := os.Stat(h.recordPath)
	assert.True(t, os.IsNotExist(err), "record file must not be created")

	// Any key dismisses the warning without acting on it.
	h.typeText("x")
	assert.Nil(t, h.m.warning)
	assert.Equal(t, "   ", h.m.input.Value())
}

func TestDeleteWithoutSelectionShowsWarning(t *testing.T) {
	h := newHarness(t)
	h.typeText("Lunch 9.00")
	h.press(tea.KeyEnter)

	// Input has focus, so nothing is selected.
	h.press(tea.KeyCtrlD)
	require.NotNil(t, h.m.warning)
	assert.Equal(t, "Selection Error", h.m.warning.Title)
	assert.Len(t, h.m.State().Entries, 1)
	assert.Equal(t, "Lunch 9.00\n", h.record(t))
}

func TestDeleteSelectedScenario(t *testing.T) {
	h := newHarness(t)
	h.typeText("Coffee 4.50")
	h.press(tea.KeyEnter)
	h.typeText("Bus 2.00")
	h.press(tea.KeyEnter)

	h.press(tea.KeyTab)
	require.Equal(t, focusList, h.m.focus)
	h.m.list.Select(0)
	h.typeText("d")

	assert.Nil(t, h.m.warning)
	assert.Equal(t, []string{"Bus 2.00"}, model.Texts(h.m.State().Entries))
	assert.Equal(t, "Bus 2.00\n", h.record(t))
	assert.Equal(t, 0, h.m.list.Index())

	h.press(tea.KeyCtrlD)
	assert.Empty(t, h.m.State().Entries)
	assert.Equal(t, "", h.record(t))
	assert.Equal(t, focusInput, h.m.focus, "focus returns to input when the list empties")
}

func TestBackspaceInListDoesNotDelete(t *testing.T) {
	h := newHarness(t)
	h.typeText("Tea 1.20")
	h.press(tea.KeyEnter)
	h.press(tea.KeyTab)
	require.Equal(t, focusList, h.m.focus)

	h.press(tea.KeyBackspace)
	h.typeText("x")
	assert.Len(t, h.m.State().Entries, 1)
	assert.Equal(t, "Tea 1.20\n", h.record(t))
}

func TestToggleThemePersistsAndRerenders(t *testing.T) {
	h := newHarness(t)
	h.press(tea.KeyCtrlT)

	assert.Equal(t, model.Dark, h.m.State().Theme)
	assert.Equal(t, model.Dark, h.m.styles.Theme)
	assert.Contains(t, h.m.View(), "Light Mode")
	b, err := os.ReadFile(h.prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "dark", string(b))

	h.press(tea.KeyCtrlT)
	assert.Equal(t, model.Light, h.m.State().Theme)
	b, err = os.ReadFile(h.prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "light", string(b))
}

func TestStorageErrorShownInStatus(t *testing.T) {
	h := newHarness(t)
	// Replace the record file's directory entry with a directory so writes fail.
	require.NoError(t, os.Mkdir(h.recordPath, 0o755))
	h.typeText("Rent 800")
	h.press(tea.KeyEnter)

	assert.Nil(t, h.m.warning)
	assert.True(t, h.m.errored)
	assert.Contains(t, h.m.status, "save expense")
	assert.Empty(t, h.m.State().Entries)
	assert.Equal(t, "Rent 800", h.m.input.Value(), "input kept so the user can retry")
}

func TestHelpOverlay(t *testing.T) {
	h := newHarness(t)
	h.press(tea.KeyF1)
	require.True(t, h.m.showHelp)
	assert.Contains(t, h.m.View(), "ctrl+t")

	h.press(tea.KeyEsc)
	assert.False(t, h.m.showHelp)
}

func TestQuit(t *testing.T) {
	h := newHarness(t)
	cmd := h.press(tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.True(t, h.m.quitting)
	assert.Equal(t, "", h.m.View())
}

func TestWindowResize(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, h.m.width)
	assert.Equal(t, 92, h.m.contentWidth())
	assert.Equal(t, 24, h.m.list.Height())
}

func TestStartsWithPersistedEntries(t *testing.T) {
	dir := t.TempDir()
	recordPath := filepath.Join(dir, "expenses.txt")
	prefsPath := filepath.Join(dir, "settings.txt")
	require.NoError(t, os.WriteFile(recordPath, []byte("a\nb\n"), 0o644))
	require.NoError(t, os.WriteFile(prefsPath, []byte("dark"), 0o644))

	tr := tracker.New(textstore.New(recordPath), prefstore.New(prefsPath), zerolog.Nop())
	st, err := tr.Start(context.Background())
	require.NoError(t, err)
	m := NewModel(context.Background(), tr, st)

	assert.Len(t, m.list.Items(), 2)
	assert.Equal(t, model.Dark, m.styles.Theme)
	assert.Contains(t, m.View(), "Light Mode")
}
