// Package keymap converts Neovim keymap declarations (vim.keymap.set calls)
// into IdeaVim mapping lines.
package keymap

import (
	"fmt"

	"github.com/grovetools/nvim2idea/pkg/ideavim"
)

// Mode is a Neovim mapping mode tag.
type Mode string

const (
	ModeNormal   Mode = "n"
	ModeVisual   Mode = "v"
	ModeSelect   Mode = "x"
	ModeInsert   Mode = "i"
	ModeTerminal Mode = "t"
)

// modeKeywords maps mode tags to their non-recursive IdeaVim map command.
var modeKeywords = map[Mode]string{
	ModeNormal:   "nnoremap",
	ModeVisual:   "vnoremap",
	ModeSelect:   "xnoremap",
	ModeInsert:   "inoremap",
	ModeTerminal: "tnoremap",
}

// Keyword returns the non-recursive map command for the mode.
func (m Mode) Keyword() string {
	if kw, ok := modeKeywords[m]; ok {
		return kw
	}
	return string(m) + "noremap"
}

// Binding is a single converted mapping.
type Binding struct {
	Keyword string `json:"keyword" yaml:"keyword"`
	Mode    Mode   `json:"mode" yaml:"mode"`
	LHS     string `json:"lhs" yaml:"lhs"`
	RHS     string `json:"rhs" yaml:"rhs"`
	Source  string `json:"source,omitempty" yaml:"source,omitempty"`
}

// Line renders the binding as an .ideavimrc line.
func (b Binding) Line() string {
	return fmt.Sprintf("%s %s %s", b.Keyword, b.LHS, b.RHS)
}

// Result is the output of a keymap pass. Lines holds every emitted mapping
// line in input order, including leader assignments.
type Result struct {
	Lines    []string          `json:"lines" yaml:"lines"`
	Bindings []Binding         `json:"bindings" yaml:"bindings"`
	Warnings []ideavim.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}
