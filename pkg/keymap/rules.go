package keymap

import (
	"strings"

	"github.com/grovetools/nvim2idea/pkg/ideavim"
)

const (
	exPrefix = ":"
	crSuffix = "<CR>"
)

// candidate is a matched declaration moving through the rule pipeline.
type candidate struct {
	line    string
	mode    Mode
	lhs     string
	rhs     string
	keyword string
}

func (c *candidate) isExCommand() bool {
	return strings.HasPrefix(c.rhs, exPrefix) && strings.HasSuffix(c.rhs, crSuffix) && len(c.rhs) >= len(exPrefix)+len(crSuffix)
}

// bareCommand strips the leading ':' and trailing <CR>.
func (c *candidate) bareCommand() string {
	return c.rhs[len(exPrefix) : len(c.rhs)-len(crSuffix)]
}

// verdict is the outcome of a single rule.
type verdict struct {
	drop    bool
	warning *ideavim.Warning
}

var keep = verdict{}

func dropWith(w ideavim.Warning) verdict {
	return verdict{drop: true, warning: &w}
}

// Rule is one named step of the rewrite pipeline.
type Rule struct {
	Name  string
	apply func(c *candidate) verdict
}

// reservedActionCommands keep their <CR> so action substitution owns them.
var reservedActionCommands = map[string]bool{
	"w":   true,
	"wa":  true,
	"q":   true,
	"qa!": true,
}

// Rules is the ordered rewrite pipeline. The first rule that drops a
// candidate ends processing of that line.
var Rules = []Rule{
	{"substitute-command", substituteCommand},
	{"reject-complex-expression", rejectComplexExpression},
	{"reject-escape-clear-search", rejectEscapeClearSearch},
	{"trim-ex-suffix", trimExSuffix},
	{"translate-mode", translateMode},
	{"insert-mode-save", insertModeSave},
	{"visual-line-move", visualLineMove},
	{"promote-action-keyword", promoteActionKeyword},
	{"trim-action-suffix", trimActionSuffix},
	{"repair-force-suffix", repairForceSuffix},
	{"reject-external-function", rejectExternalFunction},
	{"unwrap-register-quotes", unwrapRegisterQuotes},
}

func substituteCommand(c *candidate) verdict {
	if c.isExCommand() {
		if action, ok := ideavim.LookupAction(c.rhs); ok {
			c.rhs = action
		} else if action, ok := ideavim.LookupAction(strings.TrimSuffix(c.rhs, crSuffix)); ok {
			c.rhs = action
		}
		return keep
	}
	c.rhs = ideavim.ReplaceActions(c.rhs)
	return keep
}

func rejectComplexExpression(c *candidate) verdict {
	if strings.Contains(c.line, "expr = true") || strings.Contains(c.rhs, "v:count") {
		return dropWith(ideavim.ComplexExpression(c.lhs))
	}
	return keep
}

func rejectEscapeClearSearch(c *candidate) verdict {
	if c.isExCommand() && c.lhs == "<Esc>" && strings.Contains(c.bareCommand(), "nohlsearch") {
		return dropWith(ideavim.EscapeClearSearch())
	}
	return keep
}

// trimExSuffix drops the <CR> from Ex commands; IdeaVim runs them without it.
func trimExSuffix(c *candidate) verdict {
	if c.isExCommand() {
		cmd := c.bareCommand()
		if !reservedActionCommands[cmd] {
			c.rhs = exPrefix + cmd
		}
	}
	return keep
}

func translateMode(c *candidate) verdict {
	c.keyword = c.mode.Keyword()
	return keep
}

func insertModeSave(c *candidate) verdict {
	if c.mode == ModeInsert && strings.Contains(c.lhs, "<C-s>") && strings.Contains(c.line, ":w<CR>a") {
		c.rhs = "<Esc><Action>(SaveDocument)<Esc>a"
	}
	return keep
}

// visualLineMove restores move commands the permissive pattern may have cut short.
func visualLineMove(c *candidate) verdict {
	if c.mode != ModeVisual || !strings.Contains(c.rhs, ":m ") {
		return keep
	}
	switch c.lhs {
	case "J":
		c.rhs = ":move '>+1<CR>gv=gv"
	case "K":
		c.rhs = ":move '<-2<CR>gv=gv"
	}
	return keep
}

// promoteActionKeyword switches to the recursive form; <Action> mappings
// do not work with noremap.
func promoteActionKeyword(c *candidate) verdict {
	if strings.Contains(c.rhs, ideavim.ActionMarker) {
		c.keyword = strings.ReplaceAll(c.keyword, "noremap", "map")
	}
	return keep
}

func trimActionSuffix(c *candidate) verdict {
	if strings.Contains(c.rhs, ideavim.ActionMarker) {
		c.rhs = strings.TrimSuffix(c.rhs, crSuffix)
	}
	return keep
}

func repairForceSuffix(c *candidate) verdict {
	if c.rhs != "<Action>(CloseContent)!" && strings.HasSuffix(c.rhs, "a!") {
		c.rhs = strings.TrimSuffix(c.rhs, "a!") + "!"
	}
	return keep
}

func rejectExternalFunction(c *candidate) verdict {
	if strings.Contains(c.rhs, "buffer_nav.") || strings.Contains(c.rhs, "require(") {
		return dropWith(ideavim.ExternalFunction(c.lhs))
	}
	return keep
}

func unwrapRegisterQuotes(c *candidate) verdict {
	r := c.rhs
	if len(r) >= 2 && strings.HasPrefix(r, "'") && strings.HasSuffix(r, "'") && strings.Contains(r, `"`) {
		c.rhs = r[1 : len(r)-1]
	}
	return keep
}
