package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/expenses/internal/tracker"
	"github.com/idilsaglam/expenses/internal/ui"
)

const (
	appTitle   = "Expense Tracker"
	inputLabel = "Enter Expense:"

	defaultWidth  = 64
	defaultHeight = 24
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the Bubble Tea display surface. It holds no persistence logic:
// every intent goes through the tracker and the returned State is what gets
// drawn.
type Model struct {
	ctx     context.Context
	tracker *tracker.Tracker
	state   tracker.State

	input  textinput.Model
	list   list.Model
	help   help.Model
	keys   keyMap
	styles ui.Styles
	focus  focus

	warning  *tracker.InputError // modal warning, dismissed by any key
	status   string
	errored  bool
	showHelp bool
	helpText string

	width, height int
	quitting      bool
}

func NewModel(ctx context.Context, tr *tracker.Tracker, st tracker.State) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "e.g. Coffee 4.50"
	ti.Focus()

	styles := ui.StylesFor(st.Theme)
	l := list.New(toItems(st.Entries), itemDelegate{styles: styles}, defaultWidth-8, listHeight(defaultHeight))
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = styles.Muted

	m := Model{
		ctx:     ctx,
		tracker: tr,
		state:   st,
		input:   ti,
		list:    l,
		help:    help.New(),
		keys:    defaultKeys(),
		focus:   focusInput,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.applyTheme()
	return m
}

// State returns the state last committed by the tracker.
func (m Model) State() tracker.State { return m.state }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.warning != nil {
			m.warning = nil
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			if m.showHelp && msg.String() == "esc" {
				m.showHelp = false
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		}
		if m.showHelp {
			if key.Matches(msg, m.keys.Help) {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Theme):
			return m.toggleTheme(), nil
		case key.Matches(msg, m.keys.Delete):
			return m.deleteSelected(), nil
		case key.Matches(msg, m.keys.Focus):
			return m.switchFocus(), nil
		}
		if m.focus == focusInput {
			if key.Matches(msg, m.keys.Submit) {
				return m.submit(), nil
			}
			if msg.String() == "f1" {
				m.showHelp = true
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.ListDelete):
			return m.deleteSelected(), nil
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m.switchFocus(), nil
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// selection is present only while the list has focus and is non-empty.
func (m Model) selection() tracker.Selection {
	if m.focus != focusList || len(m.list.Items()) == 0 {
		return tracker.NoSelection
	}
	return tracker.Select(m.list.Index())
}

func (m Model) submit() Model {
	next, err := m.tracker.SubmitText(m.ctx, m.state, m.input.Value())
	if m.handleErr(err) {
		return m
	}
	m.state = next
	m.list.SetItems(toItems(m.state.Entries))
	m.list.Select(len(m.state.Entries) - 1)
	m.input.SetValue("")
	m.setStatus("added", false)
	return m
}

func (m Model) deleteSelected() Model {
	sel := m.selection()
	next, err := m.tracker.RequestDelete(m.ctx, m.state, sel)
	if m.handleErr(err) {
		return m
	}
	idx, _ := sel.Index()
	m.state = next
	m.list.SetItems(toItems(m.state.Entries))
	if idx >= len(m.state.Entries) {
		idx = len(m.state.Entries) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	if len(m.state.Entries) == 0 {
		m = m.focusOn(focusInput)
	}
	m.setStatus("deleted", false)
	return m
}

func (m Model) toggleTheme() Model {
	next, err := m.tracker.ToggleTheme(m.ctx, m.state)
	if m.handleErr(err) {
		return m
	}
	m.state = next
	m.applyTheme()
	m.setStatus(m.state.Theme.String()+" mode", false)
	return m
}

func (m Model) switchFocus() Model {
	if m.focus == focusInput {
		return m.focusOn(focusList)
	}
	return m.focusOn(focusInput)
}

func (m Model) focusOn(f focus) Model {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.refreshDelegate()
	return m
}

// handleErr records err for display and reports whether there was one.
func (m *Model) handleErr(err error) bool {
	if err == nil {
		return false
	}
	var ie *tracker.InputError
	if errors.As(err, &ie) {
		m.warning = ie
		return true
	}
	m.setStatus("error: "+err.Error(), true)
	return true
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status, m.errored = s, isErr
}

func (m *Model) applyTheme() {
	m.styles = ui.StylesFor(m.state.Theme)
	m.input.PromptStyle = m.styles.Label
	m.input.TextStyle = m.styles.Label
	m.input.PlaceholderStyle = m.styles.Muted
	m.list.Styles.NoItems = m.styles.Muted
	m.helpText = ui.RenderMarkdown(HelpMarkdown, m.state.Theme, m.contentWidth())
	m.refreshDelegate()
}

func (m *Model) refreshDelegate() {
	m.list.SetDelegate(itemDelegate{styles: m.styles, focused: m.focus == focusList, width: m.contentWidth()})
}

func (m *Model) resize() {
	m.input.Width = m.contentWidth() - 6
	m.list.SetSize(m.contentWidth(), listHeight(m.height))
	m.helpText = ui.RenderMarkdown(HelpMarkdown, m.state.Theme, m.contentWidth())
	m.refreshDelegate()
}

func (m Model) contentWidth() int {
	w := m.width - 8
	if w < 20 {
		w = 20
	}
	return w
}

func listHeight(total int) int {
	h := total - 16
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.styles
	if m.showHelp {
		return s.Window.Width(m.width).Render(m.helpText)
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(appTitle))
	b.WriteString("\n\n")
	b.WriteString(s.Label.Render(inputLabel))
	b.WriteString("\n")
	b.WriteString(s.Input.Width(m.contentWidth()).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(s.AddButton.Render("Add Expense"))
	b.WriteString("\n")
	b.WriteString(s.List.Width(m.contentWidth()).Render(m.list.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		s.DeleteButton.Render("Delete Expense"),
		"  ",
		s.ThemeButton.Render(s.ThemeCaption),
	))
	b.WriteString("\n")

	switch {
	case m.warning != nil:
		b.WriteString(s.Warning.Render("⚠ " + m.warning.Title + ": " + m.warning.Message))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("press any key"))
	case m.status != "" && m.errored:
		b.WriteString(s.Error.Render("✖ " + m.status))
	case m.status != "":
		b.WriteString(s.Muted.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return s.Window.Width(m.width).Render(b.String())
}

// Run starts the program on the alt screen and returns the final state.
func Run(ctx context.Context, tr *tracker.Tracker, st tracker.State) (tracker.State, error) {
	p := tea.NewProgram(NewModel(ctx, tr, st), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return st, err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return st, nil
}
