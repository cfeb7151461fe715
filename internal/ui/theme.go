package ui

import "github.com/idilsaglam/expenses/internal/model"

// Element names one piece of the tracker window.
type Element string

const (
	Window       Element = "window"
	Frame        Element = "frame"
	Label        Element = "label"
	Input        Element = "entry"
	List         Element = "list"
	AddButton    Element = "add_button"
	DeleteButton Element = "delete_button"
	ThemeButton  Element = "theme_button"
)

// Elements is the fixed render order.
var Elements = []Element{Window, Frame, Label, Input, List, AddButton, DeleteButton, ThemeButton}

// Directive says how one element looks under a theme. Text is only set on
// elements whose caption depends on the theme.
type Directive struct {
	Element    Element
	Background string
	Foreground string
	Text       string
}

// Palette bundles the colors of one theme.
type Palette struct {
	Background    string
	InputBG       string
	Text          string
	AddBG         string
	DeleteBG      string
	ButtonText    string
	ToggleCaption string
}

var (
	lightPalette = Palette{
		Background:    "#f0f0f0",
		InputBG:       "#ffffff",
		Text:          "#000000",
		AddBG:         "#4CAF50",
		DeleteBG:      "#f44336",
		ButtonText:    "#ffffff",
		ToggleCaption: "Dark Mode",
	}
	darkPalette = Palette{
		Background:    "#2E2E2E",
		InputBG:       "#555555",
		Text:          "#ffffff",
		AddBG:         "#4CAF50",
		DeleteBG:      "#f44336",
		ButtonText:    "#ffffff",
		ToggleCaption: "Light Mode",
	}
)

func PaletteFor(t model.Theme) Palette {
	if t.IsDark() {
		return darkPalette
	}
	return lightPalette
}

// Render maps a theme to one directive per element, in Elements order.
// It has no side effects; the display applies the result.
func Render(t model.Theme) []Directive {
	p := PaletteFor(t)
	out := make([]Directive, 0, len(Elements))
	for _, el := range Elements {
		d := Directive{Element: el, Background: p.Background, Foreground: p.Text}
		switch el {
		case Input, List:
			d.Background = p.InputBG
		case AddButton:
			d.Background, d.Foreground = p.AddBG, p.ButtonText
		case DeleteButton:
			d.Background, d.Foreground = p.DeleteBG, p.ButtonText
		case ThemeButton:
			d.Text = p.ToggleCaption
		}
		out = append(out, d)
	}
	return out
}

// Lookup returns the directive for el, or a zero Directive.
func Lookup(ds []Directive, el Element) Directive {
	for _, d := range ds {
		if d.Element == el {
			return d
		}
	}
	return Directive{}
}
