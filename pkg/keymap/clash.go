package keymap

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Conflict is a key bound to different targets in the same mode. The last
// binding is the one IdeaVim keeps.
type Conflict struct {
	Mode     Mode      `json:"mode" yaml:"mode"`
	Key      string    `json:"key" yaml:"key"`
	Bindings []Binding `json:"bindings" yaml:"bindings"`
}

var mapCommandPattern = regexp.MustCompile(`^([nvxsoict]?)(?:nore)?map$`)

// modesOf expands a map command into the modes it applies to. A bare
// map/noremap covers normal, visual and operator-pending mode.
func modesOf(keyword string) ([]Mode, bool) {
	m := mapCommandPattern.FindStringSubmatch(keyword)
	if m == nil {
		return nil, false
	}
	if m[1] == "" {
		return []Mode{ModeNormal, ModeVisual, "o"}, true
	}
	return []Mode{Mode(m[1])}, true
}

// ParseLine reads an .ideavimrc mapping line back into a Binding.
func ParseLine(line, source string) (Binding, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Binding{}, false
	}
	modes, ok := modesOf(fields[0])
	if !ok {
		return Binding{}, false
	}

	// Keep the target verbatim, including inner spacing.
	rest := strings.TrimSpace(line)
	rest = strings.TrimSpace(strings.TrimPrefix(rest, fields[0]))
	rest = strings.TrimSpace(strings.TrimPrefix(rest, fields[1]))

	mode := modes[0]
	if len(modes) > 1 {
		mode = ""
	}
	return Binding{Keyword: fields[0], Mode: mode, LHS: fields[1], RHS: rest, Source: source}, true
}

// DetectConflicts finds keys mapped to more than one distinct target within
// a mode. Lines that are not map commands are ignored; Source is set to the
// 1-based line number.
func DetectConflicts(lines []string) []Conflict {
	type slot struct {
		mode Mode
		key  string
	}
	usage := make(map[slot][]Binding)

	for i, line := range lines {
		b, ok := ParseLine(line, fmt.Sprintf("line %d", i+1))
		if !ok {
			continue
		}
		modes, _ := modesOf(b.Keyword)
		for _, m := range modes {
			s := slot{m, b.LHS}
			usage[s] = append(usage[s], b)
		}
	}

	var conflicts []Conflict
	for s, bindings := range usage {
		seen := make(map[string]bool)
		var unique []Binding
		for _, b := range bindings {
			if !seen[b.RHS] {
				seen[b.RHS] = true
				unique = append(unique, b)
			}
		}
		if len(unique) > 1 {
			conflicts = append(conflicts, Conflict{Mode: s.mode, Key: s.key, Bindings: unique})
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].Mode != conflicts[j].Mode {
			return conflicts[i].Mode < conflicts[j].Mode
		}
		return conflicts[i].Key < conflicts[j].Key
	})

	return conflicts
}
