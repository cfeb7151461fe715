package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit     key.Binding
	Delete     key.Binding
	ListDelete key.Binding
	Theme      key.Binding
	Focus      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add expense")),
		Delete:     key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete selected")),
		ListDelete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete selected")),
		Theme:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle theme")),
		Focus:      key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "input/list")),
		Help:       key.NewBinding(key.WithKeys("f1", "?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp and FullHelp satisfy help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus, k.Delete, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Focus},
		{k.Delete, k.ListDelete},
		{k.Theme, k.Help, k.Quit},
	}
}

// HelpMarkdown is the long help shown by the overlay and by the CLI.
const HelpMarkdown = `# Expense Tracker

Type an expense and press **enter** to add it. Press **tab** to move
between the input and the list.

| Key | Action |
| --- | --- |
| ` + "`enter`" + ` | add the typed expense |
| ` + "`tab`" + ` | switch focus between input and list |
| ` + "`up` / `down`" + ` | move the selection (list focus) |
| ` + "`d`, `delete`" + ` | delete the selected expense (list focus) |
| ` + "`ctrl+d`" + ` | delete the selected expense |
| ` + "`ctrl+t`" + ` | toggle dark / light mode |
| ` + "`?`, `f1`" + ` | show or hide this help |
| ` + "`esc`, `ctrl+c`" + ` | quit |

Every change is saved immediately.
`
