// Package renderer turns derived views into markdown, and markdown into
// styled terminal output.
package renderer

import (
	"github.com/charmbracelet/glamour"
)

// Terminal renders markdown for the terminal, picking a style that matches
// the terminal background. On rendering failure it returns the raw markdown.
func Terminal(markdown string) string {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		return markdown
	}
	return out
}
