package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/expenses/internal/model"
)

// Styles are the lipgloss styles for one theme, built from Render.
type Styles struct {
	Theme model.Theme

	Window       lipgloss.Style
	Title        lipgloss.Style
	Label        lipgloss.Style
	Input        lipgloss.Style
	List         lipgloss.Style
	Item         lipgloss.Style
	Selected     lipgloss.Style
	AddButton    lipgloss.Style
	DeleteButton lipgloss.Style
	ThemeButton  lipgloss.Style
	Muted        lipgloss.Style
	Warning      lipgloss.Style
	Error        lipgloss.Style

	ThemeCaption string
}

func style(d Directive) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(d.Background)).
		Foreground(lipgloss.Color(d.Foreground))
}

func StylesFor(t model.Theme) Styles {
	ds := Render(t)
	win := style(Lookup(ds, Window))
	button := func(el Element) lipgloss.Style {
		return style(Lookup(ds, el)).Bold(true).Padding(0, 2)
	}
	list := style(Lookup(ds, List))
	return Styles{
		Theme:  t,
		Window: win.Padding(1, 2),
		Title:  style(Lookup(ds, Label)).Bold(true),
		Label:  style(Lookup(ds, Label)),
		Input: style(Lookup(ds, Input)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Lookup(ds, Label).Foreground)).
			BorderBackground(lipgloss.Color(Lookup(ds, Frame).Background)).
			Padding(0, 1),
		List: list.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Lookup(ds, Label).Foreground)).
			BorderBackground(lipgloss.Color(Lookup(ds, Frame).Background)).
			Padding(0, 1),
		Item:         list,
		Selected:     list.Bold(true).Reverse(true),
		AddButton:    button(AddButton),
		DeleteButton: button(DeleteButton),
		ThemeButton:  style(Lookup(ds, ThemeButton)).Bold(true).Padding(0, 2).Border(lipgloss.NormalBorder()),
		Muted:        win.Faint(true),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		ThemeCaption: Lookup(ds, ThemeButton).Text,
	}
}

// ------- CLI output helpers -------

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render("✔ "+msg))
}

func Warn(w io.Writer, title, msg string) {
	fmt.Fprintln(w, warnStyle.Render("! "+title+": "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render("✖ "+msg))
}

func Muted(s string) string { return mutedStyle.Render(s) }

// Panel frames lines in a rounded border.
func Panel(lines []string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}
