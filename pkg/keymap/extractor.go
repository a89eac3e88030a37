package keymap

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/nvim2idea/pkg/ideavim"
	applog "github.com/grovetools/nvim2idea/pkg/logger"
)

// declarationPatterns are tried in order; the first match wins.
var declarationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`keymap\s*\(\s*"([^"]+)"\s*,\s*"([^"]+)"\s*,\s*"([^"]+)"`),
	regexp.MustCompile(`keymap\s*\(\s*"([^"]+)"\s*,\s*"([^"]+)"\s*,\s*'([^']+)'`),
	regexp.MustCompile(`keymap\s*\(\s*"([^"]+)"\s*,\s*"([^"]+)"\s*,\s*([^,{]+)`),
}

var leaderPattern = regexp.MustCompile(`=\s*"([^"]+)"`)

// Extractor converts keymap declarations line by line.
type Extractor struct {
	logger *logrus.Logger
	rules  []Rule
}

// NewExtractor creates an extractor using the default rule pipeline.
// A nil logger discards debug output.
func NewExtractor(logger *logrus.Logger) *Extractor {
	if logger == nil {
		logger = applog.Discard()
	}
	return &Extractor{logger: logger, rules: Rules}
}

// Extract converts all lines using a default extractor.
func Extract(lines []string) Result {
	return NewExtractor(nil).Extract(lines)
}

// Extract converts lines from a keymaps file. Lines that match no pattern
// are dropped silently.
func (e *Extractor) Extract(lines []string) Result {
	var res Result
	for i, raw := range lines {
		line := strings.TrimRight(raw, "\r\n")

		if leader, ok := ParseLeader(line); ok {
			res.Lines = append(res.Lines, fmt.Sprintf(`let mapleader = "%s"`, leader))
		}

		b, matched, w := e.Convert(line)
		if w != nil {
			e.logger.WithFields(logrus.Fields{
				"line": i + 1,
				"kind": w.Kind,
			}).Debug(w.Message)
			res.Warnings = append(res.Warnings, *w)
		}
		if !matched {
			continue
		}
		res.Bindings = append(res.Bindings, b)
		res.Lines = append(res.Lines, b.Line())
	}
	return res
}

// ParseLeader recognizes a vim.g.mapleader assignment.
func ParseLeader(line string) (string, bool) {
	if !strings.Contains(line, "vim.g.mapleader") {
		return "", false
	}
	m := leaderPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Match finds a keymap declaration in the line and returns its parts.
func Match(line string) (mode Mode, lhs, rhs string, ok bool) {
	for _, p := range declarationPatterns {
		if m := p.FindStringSubmatch(line); m != nil {
			return Mode(m[1]), m[2], strings.TrimSpace(m[3]), true
		}
	}
	return "", "", "", false
}

// Convert runs one line through the rule pipeline. It reports whether a
// binding was produced; a dropped declaration may carry a warning.
func (e *Extractor) Convert(line string) (Binding, bool, *ideavim.Warning) {
	mode, lhs, rhs, ok := Match(line)
	if !ok {
		return Binding{}, false, nil
	}

	c := &candidate{line: line, mode: mode, lhs: lhs, rhs: rhs}
	for _, r := range e.rules {
		v := r.apply(c)
		if v.drop {
			e.logger.WithFields(logrus.Fields{"rule": r.Name, "lhs": lhs}).Debug("Dropped mapping")
			return Binding{}, false, v.warning
		}
	}

	return Binding{Keyword: c.keyword, Mode: c.mode, LHS: c.lhs, RHS: c.rhs}, true, nil
}
