// Package settings converts Neovim option assignments (vim.opt.x = value)
// into IdeaVim set directives.
package settings

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/grovetools/nvim2idea/pkg/ideavim"
)

// ValueKind is the coerced type of an option value.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindInt
	KindString
)

// Value is a coerced option value. Raw keeps the literal token (unquoted for
// strings).
type Value struct {
	Kind ValueKind
	Raw  string
	Bool bool
}

// Text is the value as substituted into a directive. Integers are
// normalized, so 0300 renders as 300.
func (v Value) Text() string {
	if v.Kind == KindInt {
		if n, err := strconv.Atoi(v.Raw); err == nil {
			return strconv.Itoa(n)
		}
	}
	return v.Raw
}

// Setting is one recognized option assignment.
type Setting struct {
	Name  string
	Value Value
}

var assignmentPattern = regexp.MustCompile(`opt\.(\w+)\s*=\s*(.+?)(?:\s*--.*)?$`)

// Parse extracts an option assignment from a single line.
func Parse(line string) (Setting, bool) {
	m := assignmentPattern.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if m == nil {
		return Setting{}, false
	}
	v, ok := coerce(strings.TrimSpace(m[2]))
	if !ok {
		return Setting{}, false
	}
	return Setting{Name: m[1], Value: v}, true
}

func coerce(raw string) (Value, bool) {
	switch {
	case raw == "true":
		return Value{Kind: KindBool, Raw: raw, Bool: true}, true
	case raw == "false":
		return Value{Kind: KindBool, Raw: raw}, true
	case isDigits(raw):
		return Value{Kind: KindInt, Raw: raw}, true
	case len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`):
		return Value{Kind: KindString, Raw: raw[1 : len(raw)-1]}, true
	}
	return Value{}, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Render produces the IdeaVim directive for a setting, if any.
func Render(s Setting) (string, bool) {
	tmpl, ok := ideavim.LookupOption(s.Name)
	if !ok {
		return "", false
	}

	if strings.Contains(tmpl, ideavim.Placeholder) {
		return strings.Replace(tmpl, ideavim.Placeholder, s.Value.Text(), 1), true
	}

	if s.Value.Kind == KindBool {
		if s.Value.Bool && !strings.HasPrefix(tmpl, "set no") {
			return tmpl, true
		}
		if !s.Value.Bool && s.Name == ideavim.InvertedOption {
			return tmpl, true
		}
		return "", false
	}

	return tmpl, true
}

// Extract converts lines from a settings file into directives, in file order.
// Duplicate assignments each produce a directive.
func Extract(lines []string) []string {
	var directives []string
	for _, line := range lines {
		s, ok := Parse(line)
		if !ok {
			continue
		}
		if d, ok := Render(s); ok {
			directives = append(directives, d)
		}
	}
	return directives
}
