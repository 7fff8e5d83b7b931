package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// plainStyle is the glamour style used when output is not a terminal.
const plainStyle = "notty"

// defaultWidth is the wrap width when w is not a terminal.
const defaultWidth = 80

// RenderMarkdown renders markdown for w. Terminals get the auto-detected
// style wrapped at the terminal width; anything else gets the plain
// style wrapped at 80 columns.
func RenderMarkdown(content string, w io.Writer) (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(TerminalWidth(w, defaultWidth)),
	}
	if IsTerminal(w) {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(plainStyle))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
