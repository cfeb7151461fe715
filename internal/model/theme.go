package model

import "strings"

// Theme is the persisted display mode. The zero value is Light.
type Theme int

const (
	Light Theme = iota
	Dark
)

// ParseTheme maps the stored token to a Theme. Anything that is not
// "dark" reads as Light.
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), "dark") {
		return Dark
	}
	return Light
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) IsDark() bool { return t == Dark }

// String returns the exact token written to the settings file.
func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}
