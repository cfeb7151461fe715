package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/idilsaglam/expenses/internal/model"
)

// RenderMarkdown renders md for the terminal using the glamour style that
// matches the theme. On failure the raw markdown is returned.
func RenderMarkdown(md string, t model.Theme, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	styleName := "light"
	if t.IsDark() {
		styleName = "dark"
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(styleName)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
