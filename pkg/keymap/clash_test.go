package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	b, ok := ParseLine("nnoremap <C-l> :nohl<CR>", "line 3")
	require.True(t, ok)
	assert.Equal(t, Binding{Keyword: "nnoremap", Mode: ModeNormal, LHS: "<C-l>", RHS: ":nohl<CR>", Source: "line 3"}, b)

	b, ok = ParseLine("vnoremap J :move '>+1<CR>gv=gv", "")
	require.True(t, ok)
	assert.Equal(t, ":move '>+1<CR>gv=gv", b.RHS)

	b, ok = ParseLine("map gd <Action>(GotoDeclaration)", "")
	require.True(t, ok)
	assert.Equal(t, Mode(""), b.Mode)

	for _, line := range []string{`let mapleader = " "`, "set number", `" map a comment`, "Plug 'tpope/vim-surround'", "nmap x"} {
		_, ok := ParseLine(line, "")
		assert.False(t, ok, line)
	}
}

func TestDetectConflicts(t *testing.T) {
	t.Run("DifferentTargets", func(t *testing.T) {
		conflicts := DetectConflicts([]string{
			"nnoremap <C-l> :nohl<CR>",
			"set number",
			"nnoremap <C-l> <C-w>l",
		})

		require.Len(t, conflicts, 1)
		c := conflicts[0]
		assert.Equal(t, ModeNormal, c.Mode)
		assert.Equal(t, "<C-l>", c.Key)
		require.Len(t, c.Bindings, 2)
		assert.Equal(t, "line 1", c.Bindings[0].Source)
		assert.Equal(t, "line 3", c.Bindings[1].Source)
	})

	t.Run("RepeatedTargetListedOnce", func(t *testing.T) {
		conflicts := DetectConflicts([]string{
			"nnoremap <C-l> <C-w>l",
			"nnoremap <C-l> :nohl<CR>",
			"nnoremap <C-l> <C-w>l",
		})

		require.Len(t, conflicts, 1)
		bindings := conflicts[0].Bindings
		require.Len(t, bindings, 2)
		assert.Equal(t, "<C-w>l", bindings[0].RHS)
		assert.Equal(t, "line 1", bindings[0].Source)
		assert.Equal(t, ":nohl<CR>", bindings[1].RHS)
	})

	t.Run("SameTargetIsNotAConflict", func(t *testing.T) {
		conflicts := DetectConflicts([]string{
			"nmap <leader>ff <Action>(GotoFile)",
			"map <leader>ff <Action>(GotoFile)",
		})
		assert.Empty(t, conflicts)
	})

	t.Run("BareMapOverlapsModes", func(t *testing.T) {
		conflicts := DetectConflicts([]string{
			"vnoremap gd y",
			"map gd <Action>(GotoDeclaration)",
		})
		require.Len(t, conflicts, 1)
		assert.Equal(t, ModeVisual, conflicts[0].Mode)
	})

	t.Run("ModesAreSeparate", func(t *testing.T) {
		conflicts := DetectConflicts([]string{
			"inoremap <C-s> <Esc>",
			"nnoremap <C-s> :w",
		})
		assert.Empty(t, conflicts)
	})
}
