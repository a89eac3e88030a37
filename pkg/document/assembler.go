// Package document assembles and writes the generated .ideavimrc.
package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/nvim2idea/pkg/ideavim"
)

// TimestampLayout is the format of the generation time in the header.
const TimestampLayout = "2006-01-02 15:04:05"

// Input carries the results of the extraction passes.
type Input struct {
	Generated time.Time
	Settings  []string
	Mappings  []string
	Warnings  []ideavim.Warning
}

// Header returns the fixed header block for a generation time.
func Header(generated time.Time) []string {
	return []string{
		`" .ideavimrc - IdeaVim configuration`,
		`" Generated from Neovim config on ` + generated.Format(TimestampLayout),
		`" Note: This is a best-effort conversion. Some features may not work exactly the same.`,
		``,
		`" Basic settings`,
	}
}

// Assemble builds the full ordered line sequence of the output document.
func Assemble(in Input) []string {
	lines := Header(in.Generated)

	lines = append(lines, in.Settings...)
	lines = append(lines, "")

	lines = append(lines, `" IdeaVim plugins`)
	lines = append(lines, ideavim.PluginBlock()...)
	lines = append(lines, "")

	lines = append(lines, `" Key mappings`)
	lines = append(lines, in.Mappings...)
	lines = append(lines, "")

	if ideavim.HasKind(in.Warnings, ideavim.WarnEscapeClearSearch) {
		lines = append(lines, ideavim.EscapeFallbackBlock()...)
	}

	lines = append(lines, ideavim.SupplementaryBlock()...)

	if len(in.Warnings) > 0 {
		lines = append(lines, "", `" Warnings during conversion:`)
		for _, w := range in.Warnings {
			lines = append(lines, `" - `+w.Message)
		}
	}

	return lines
}

// Render joins lines into the file contents.
func Render(lines []string) []byte {
	return []byte(strings.Join(lines, "\n") + "\n")
}

// Writer performs the single whole-file write of the document.
type Writer struct {
	DryRun bool
	Out    io.Writer
	Logger *logrus.Logger
}

// Write stores data at path. In dry-run mode the document goes to Out and
// no file is touched.
func (w *Writer) Write(path string, data []byte) error {
	if w.DryRun {
		if w.Logger != nil {
			w.Logger.Infof("[dry-run] Would write %s", path)
		}
		out := w.Out
		if out == nil {
			out = os.Stdout
		}
		if _, err := out.Write(data); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if w.Logger != nil {
		w.Logger.WithField("bytes", len(data)).Debugf("Wrote %s", path)
	}
	return nil
}
