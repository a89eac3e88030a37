package ideavim

import "strings"

// Entry is one row of an ordered translation table.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// optionTable maps Neovim option names to IdeaVim directive templates.
var optionTable = []Entry{
	// Basic settings
	{"number", "set number"},
	{"relativenumber", "set relativenumber"},
	{"ignorecase", "set ignorecase"},
	{"smartcase", "set smartcase"},
	{"hlsearch", "set hlsearch"},
	{"incsearch", "set incsearch"},
	{"wrap", "set nowrap"},
	{"scrolloff", "set scrolloff={}"},
	{"sidescrolloff", "set sidescrolloff={}"},
	{"clipboard", "set clipboard+=unnamed,unnamedplus"},
	{"timeoutlen", "set timeoutlen={}"},

	// Indentation
	{"expandtab", "set expandtab"},
	{"shiftwidth", "set shiftwidth={}"},
	{"tabstop", "set tabstop={}"},
	{"smartindent", "set smartindent"},
}

// actionTable maps Ex commands to IntelliJ actions. Order matters: substring
// replacement walks the table top to bottom.
var actionTable = []Entry{
	{":Telescope find_files", "<Action>(GotoFile)"},
	{":Telescope live_grep", "<Action>(FindInPath)"},
	{":Telescope buffers", "<Action>(Switcher)"},
	{":NvimTreeToggle", "<Action>(ActivateProjectToolWindow)"},
	{":bnext", "<Action>(NextTab)"},
	{":bprevious", "<Action>(PreviousTab)"},
	{":bdelete", "<Action>(CloseContent)"},
	{":tabnext", "<Action>(NextTab)"},
	{":tabprevious", "<Action>(PreviousTab)"},
	{":tabnew", "<Action>(NewTab)"},
	{":tabclose", "<Action>(CloseContent)"},
	{":vsplit", "<Action>(SplitVertically)"},
	{":split", "<Action>(SplitHorizontally)"},
	{":close", "<Action>(Unsplit)"},
	{":w", "<Action>(SaveDocument)"},
	{":wa", "<Action>(SaveAll)"},
	{":q", "<Action>(CloseContent)"},
	{":qa!", "<Action>(Exit)"},
	{":terminal", "<Action>(ActivateTerminalToolWindow)"},
	{":copen", "<Action>(ShowErrorsInProject)"},
	{":cclose", "<Action>(HideActiveWindow)"},
	{":cnext", "<Action>(GotoNextError)"},
	{":cprev", "<Action>(GotoPreviousError)"},
	{":W", "<Action>(SaveAll)"},
}

var pluginBlock = []string{
	"Plug 'tpope/vim-surround'",
	"Plug 'tpope/vim-commentary'",
	"Plug 'vim-scripts/argtextobj.vim'",
	"Plug 'terryma/vim-multiple-cursors'",
	"Plug 'machakann/vim-highlightedyank'",
	"Plug 'preservim/nerdtree'",
	"Plug 'tommcdo/vim-exchange'",
	// IdeaVim options rather than plugins; notimeout is recommended for which-key
	"set ideajoin",
	"set which-key",
	"set notimeout",
}

var escapeFallbackBlock = []string{
	`" Note: Esc → nohlsearch mapping was skipped as it causes issues in IdeaVim`,
	`" Alternative: Use <C-l> or another key to clear search highlights`,
	`nnoremap <C-l> :nohl<CR>`,
	``,
}

// BindingGroup is a titled run of supplementary mappings.
type BindingGroup struct {
	Title    string   `json:"title" yaml:"title"`
	Bindings []string `json:"bindings" yaml:"bindings"`
}

var supplementaryGroups = []BindingGroup{
	{"File navigation", []string{
		"map <leader>ff <Action>(GotoFile)",
		"map <leader>fg <Action>(FindInPath)",
		"map <leader>fr <Action>(RecentFiles)",
		"map <leader>fc <Action>(GotoClass)",
		"map <leader>fs <Action>(GotoSymbol)",
		"map <leader>fa <Action>(GotoAction)",
	}},
	{"Code navigation", []string{
		"map gd <Action>(GotoDeclaration)",
		"map gi <Action>(GotoImplementation)",
		"map gr <Action>(ShowUsages)",
		"map gy <Action>(GotoTypeDeclaration)",
	}},
	{"Code actions", []string{
		"map <leader>ca <Action>(ShowIntentionActions)",
		"map <leader>cr <Action>(RenameElement)",
		"map <leader>cf <Action>(ReformatCode)",
		"map <leader>co <Action>(OptimizeImports)",
	}},
	{"Debugging", []string{
		"map <leader>db <Action>(ToggleLineBreakpoint)",
		"map <leader>dr <Action>(Run)",
		"map <leader>dd <Action>(Debug)",
	}},
	{"Git actions", []string{
		"map <leader>gb <Action>(Annotate)",
		"map <leader>gh <Action>(Vcs.ShowTabbedFileHistory)",
	}},
	{"Window management - using standard Vim commands", []string{
		"nnoremap <C-h> <C-w>h",
		"nnoremap <C-l> <C-w>l",
		"nnoremap <C-j> <C-w>j",
		"nnoremap <C-k> <C-w>k",
	}},
	{"Tab navigation alternatives", []string{
		"map <leader>1 <Action>(GoToTab1)",
		"map <leader>2 <Action>(GoToTab2)",
		"map <leader>3 <Action>(GoToTab3)",
		"map <leader>4 <Action>(GoToTab4)",
		"map <leader>5 <Action>(GoToTab5)",
	}},
}

// OptionTable returns a copy of the option-name to directive table in declaration order.
func OptionTable() []Entry {
	return append([]Entry(nil), optionTable...)
}

// ActionTable returns a copy of the Ex command to action table in declaration order.
func ActionTable() []Entry {
	return append([]Entry(nil), actionTable...)
}

// LookupOption returns the directive template for a Neovim option name.
func LookupOption(name string) (string, bool) {
	return lookup(optionTable, name)
}

// LookupAction returns the action invocation for an exact Ex command.
func LookupAction(cmd string) (string, bool) {
	return lookup(actionTable, cmd)
}

func lookup(table []Entry, key string) (string, bool) {
	for _, e := range table {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// ReplaceActions substitutes every action table key found in s, in table order.
func ReplaceActions(s string) string {
	for _, e := range actionTable {
		if strings.Contains(s, e.Key) {
			s = strings.ReplaceAll(s, e.Key, e.Value)
		}
	}
	return s
}

// PluginBlock returns the fixed plugin and IdeaVim option lines.
func PluginBlock() []string {
	return append([]string(nil), pluginBlock...)
}

// EscapeFallbackBlock returns the lines emitted when the <Esc> mapping was skipped.
func EscapeFallbackBlock() []string {
	return append([]string(nil), escapeFallbackBlock...)
}

// SupplementaryGroups returns the default IntelliJ bindings grouped by category.
func SupplementaryGroups() []BindingGroup {
	groups := make([]BindingGroup, len(supplementaryGroups))
	for i, g := range supplementaryGroups {
		groups[i] = BindingGroup{Title: g.Title, Bindings: append([]string(nil), g.Bindings...)}
	}
	return groups
}

// SupplementaryBlock renders the supplementary groups as .ideavimrc lines.
func SupplementaryBlock() []string {
	lines := []string{
		`" Additional IntelliJ-specific mappings`,
		`" Note: <Action> mappings must use map, not noremap`,
	}
	for _, g := range supplementaryGroups {
		lines = append(lines, "", `" `+g.Title)
		lines = append(lines, g.Bindings...)
	}
	return lines
}
