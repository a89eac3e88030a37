package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// renderer is satisfied by the theme's lipgloss styles.
type renderer interface {
	Render(strs ...string) string
}

// styler applies theme styles only when writing to a terminal.
type styler struct {
	enabled bool
}

func newStyler(w io.Writer) styler {
	f, ok := w.(*os.File)
	if !ok {
		return styler{}
	}
	return styler{enabled: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
}

func (s styler) render(style renderer, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// column pads cells to a fixed visible width. Widths ignore escape
// sequences, so styled cells still line up.
func column(cells ...string) lipgloss.Style {
	width := 0
	for _, c := range cells {
		if w := lipgloss.Width(c); w > width {
			width = w
		}
	}
	return lipgloss.NewStyle().Width(width + 2)
}
