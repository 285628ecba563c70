package markdown

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// TerminalOptions controls terminal rendering.
type TerminalOptions struct {
	// Style is a glamour standard style name ("dark", "light", "notty", ...).
	// Empty selects a style from the terminal background.
	Style    string
	WordWrap int
}

// RenderTerminal renders src for display in a terminal.
func RenderTerminal(src []byte, opts TerminalOptions) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" {
		styleOpt = glamour.WithStandardStyle(opts.Style)
	}
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = 80
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
	if err != nil {
		return "", fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	out, err := r.Render(string(src))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
