package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/nvim2idea/pkg/ideavim"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		line string
		mode Mode
		lhs  string
		rhs  string
		ok   bool
	}{
		{"double quoted", `vim.keymap.set("n", "<leader>ff", ":Telescope find_files<CR>", { desc = "Find" })`, ModeNormal, "<leader>ff", ":Telescope find_files<CR>", true},
		{"single quoted", `keymap("n", "<leader>y", '"+y')`, ModeNormal, "<leader>y", `"+y`, true},
		{"unquoted expression", `keymap("n", "<leader>e", vim.diagnostic.open_float, opts)`, ModeNormal, "<leader>e", "vim.diagnostic.open_float", true},
		{"unquoted before options", `keymap("n", "<leader>x", fn {})`, ModeNormal, "<leader>x", "fn", true},
		{"spaces around parens", `keymap ( "v" , "<" , "<gv" )`, ModeVisual, "<", "<gv", true},
		{"table mode", `vim.keymap.set({ "n", "v" }, "<leader>d", '"_d')`, "", "", "", false},
		{"not a keymap", `vim.opt.number = true`, "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, lhs, rhs, ok := Match(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.mode, mode)
			assert.Equal(t, tt.lhs, lhs)
			assert.Equal(t, tt.rhs, rhs)
		})
	}
}

func TestParseLeader(t *testing.T) {
	leader, ok := ParseLeader(`vim.g.mapleader = " "`)
	require.True(t, ok)
	assert.Equal(t, " ", leader)

	_, ok = ParseLeader(`vim.g.maplocalleader = ","`)
	assert.False(t, ok)

	_, ok = ParseLeader(`vim.g.mapleader = ' '`)
	assert.False(t, ok)
}

func TestConvert(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		name string
		line string
		want string
	}{
		{"telescope action", `vim.keymap.set("n", "<leader>ff", ":Telescope find_files<CR>")`, "nmap <leader>ff <Action>(GotoFile)"},
		{"save action", `keymap("n", "<C-s>", ":w<CR>", opts)`, "nmap <C-s> <Action>(SaveDocument)"},
		{"plain ex command", `keymap("n", "<leader>h", ":split<CR>")`, "nmap <leader>h <Action>(SplitHorizontally)"},
		{"unknown ex command keeps no CR", `keymap("n", "<leader>m", ":make<CR>")`, "nnoremap <leader>m :make"},
		{"cmd mapping gets substring replacement", `keymap("n", "<leader>bn", "<cmd>:bnext<CR>")`, "nmap <leader>bn <cmd><Action>(NextTab)"},
		{"plain keys", `keymap("n", "<C-d>", "<C-d>zz")`, "nnoremap <C-d> <C-d>zz"},
		{"visual indent", `keymap("v", "<", "<gv")`, "vnoremap < <gv"},
		{"select mode", `keymap("x", "p", '"_dP')`, `xnoremap p "_dP`},
		{"terminal escape", `keymap("t", "<Esc>", "<C-\\><C-n>")`, `tnoremap <Esc> <C-\\><C-n>`},
		{"unknown mode", `keymap("o", "ie", ":normal! ggVG<CR>")`, "onoremap ie :normal! ggVG"},
		{"insert save", `keymap("i", "<C-s>", "<Esc>:w<CR>a")`, "imap <C-s> <Esc><Action>(SaveDocument)<Esc>a"},
		{"visual move down", `keymap("v", "J", ":m '>+1<CR>gv=gv")`, "vnoremap J :move '>+1<CR>gv=gv"},
		{"visual move up", `keymap("v", "K", ":m '<-2<CR>gv=gv")`, "vnoremap K :move '<-2<CR>gv=gv"},
		{"force quit repair", `keymap("n", "<leader>Q", "<cmd>:qa!")`, "nmap <leader>Q <cmd><Action>(CloseContent)!"},
		{"escape without nohlsearch", `keymap("n", "<Esc>", ":echo<CR>")`, "nnoremap <Esc> :echo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok, w := e.Convert(tt.line)
			require.True(t, ok)
			assert.Nil(t, w)
			assert.Equal(t, tt.want, b.Line())
		})
	}
}

func TestConvertDropped(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		name string
		line string
		kind ideavim.WarningKind
	}{
		{"expr mapping", `keymap("n", "j", "v:count == 0 ? 'gj' : 'j'", { expr = true })`, ideavim.WarnComplexExpression},
		{"v:count in rhs", `keymap("n", "<leader>j", "v:count . 'j'")`, ideavim.WarnComplexExpression},
		{"escape clears search", `vim.keymap.set("n", "<Esc>", ":nohlsearch<CR>")`, ideavim.WarnEscapeClearSearch},
		{"require call", `keymap("n", "<leader>t", require("telescope.builtin").find_files)`, ideavim.WarnExternalFunction},
		{"helper module", `keymap("n", "<S-l>", buffer_nav.next)`, ideavim.WarnExternalFunction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, w := e.Convert(tt.line)
			assert.False(t, ok)
			require.NotNil(t, w)
			assert.Equal(t, tt.kind, w.Kind)
		})
	}

	t.Run("ExpressionRejectedBeforeEscape", func(t *testing.T) {
		_, ok, w := e.Convert(`keymap("n", "<Esc>", ":nohlsearch<CR>", { expr = true })`)
		assert.False(t, ok)
		require.NotNil(t, w)
		assert.Equal(t, ideavim.WarnComplexExpression, w.Kind)
		assert.Equal(t, "Skipped complex expression mapping: <Esc>", w.Message)
	})

	t.Run("ExternalCallDroppedAfterSubstitution", func(t *testing.T) {
		_, ok, w := e.Convert(`keymap("n", "<leader>bn", 'require("bufs").run(":bnext")')`)
		assert.False(t, ok)
		require.NotNil(t, w)
		assert.Equal(t, ideavim.WarnExternalFunction, w.Kind)
		assert.Equal(t, "Skipped Lua function mapping: <leader>bn", w.Message)
	})

	t.Run("UnmatchedHasNoWarning", func(t *testing.T) {
		_, ok, w := e.Convert(`local opts = { noremap = true, silent = true }`)
		assert.False(t, ok)
		assert.Nil(t, w)
	})
}

func TestRulesInIsolation(t *testing.T) {
	t.Run("UnwrapRegisterQuotes", func(t *testing.T) {
		c := &candidate{rhs: `'"+y'`}
		unwrapRegisterQuotes(c)
		assert.Equal(t, `"+y`, c.rhs)

		c = &candidate{rhs: `'abc'`}
		unwrapRegisterQuotes(c)
		assert.Equal(t, `'abc'`, c.rhs)
	})

	t.Run("RepairForceSuffix", func(t *testing.T) {
		c := &candidate{rhs: "<Action>(CloseContent)a!"}
		repairForceSuffix(c)
		assert.Equal(t, "<Action>(CloseContent)!", c.rhs)

		c = &candidate{rhs: "<Action>(CloseContent)!"}
		repairForceSuffix(c)
		assert.Equal(t, "<Action>(CloseContent)!", c.rhs)
	})

	t.Run("TrimExSuffixKeepsReserved", func(t *testing.T) {
		c := &candidate{rhs: ":wa<CR>"}
		trimExSuffix(c)
		assert.Equal(t, ":wa<CR>", c.rhs)

		c = &candidate{rhs: ":Lazy<CR>"}
		trimExSuffix(c)
		assert.Equal(t, ":Lazy", c.rhs)
	})

	t.Run("PromoteActionKeyword", func(t *testing.T) {
		c := &candidate{keyword: "vnoremap", rhs: "<Action>(ReformatCode)"}
		promoteActionKeyword(c)
		assert.Equal(t, "vmap", c.keyword)

		c = &candidate{keyword: "vnoremap", rhs: "<gv"}
		promoteActionKeyword(c)
		assert.Equal(t, "vnoremap", c.keyword)

		// Unknown mode tags are rewritten everywhere they say noremap.
		c = &candidate{keyword: "noremapnoremap", rhs: "<Action>(GotoFile)"}
		promoteActionKeyword(c)
		assert.Equal(t, "mapmap", c.keyword)
	})

	t.Run("SubstituteCommandPrefersExactMatch", func(t *testing.T) {
		c := &candidate{rhs: ":wa<CR>"}
		substituteCommand(c)
		assert.Equal(t, "<Action>(SaveAll)", c.rhs)
	})

	t.Run("OrderIsStable", func(t *testing.T) {
		names := make([]string, len(Rules))
		for i, r := range Rules {
			names[i] = r.Name
		}
		assert.Equal(t, "substitute-command", names[0])
		assert.Equal(t, "unwrap-register-quotes", names[len(names)-1])
	})
}

func TestExtract(t *testing.T) {
	lines := []string{
		`vim.g.mapleader = " "`,
		`local keymap = vim.keymap.set`,
		`keymap("n", "<leader>ff", ":Telescope find_files<CR>", { desc = "Find files" })`,
		`keymap("n", "<Esc>", ":nohlsearch<CR>")`,
		`keymap("n", "<leader>e", require("oil").open)`,
		`keymap("v", "J", ":m '>+1<CR>gv=gv")`,
		`-- keymap comment without call`,
	}

	res := Extract(lines)

	assert.Equal(t, []string{
		`let mapleader = " "`,
		"nmap <leader>ff <Action>(GotoFile)",
		"vnoremap J :move '>+1<CR>gv=gv",
	}, res.Lines)
	assert.Len(t, res.Bindings, 2)
	require.Len(t, res.Warnings, 2)
	assert.Equal(t, ideavim.WarnEscapeClearSearch, res.Warnings[0].Kind)
	assert.Equal(t, "Skipped Lua function mapping: <leader>e", res.Warnings[1].Message)

	again := Extract(lines)
	assert.Equal(t, res, again)
}
