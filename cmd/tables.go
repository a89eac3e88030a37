package cmd

import (
	"fmt"
	"io"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/core/tui/theme"
	"github.com/spf13/cobra"

	"github.com/grovetools/nvim2idea/pkg/ideavim"
)

// tablesDump is the serialized form of the static translation tables.
type tablesDump struct {
	Options       []ideavim.Entry        `json:"options,omitempty" yaml:"options,omitempty"`
	Actions       []ideavim.Entry        `json:"actions,omitempty" yaml:"actions,omitempty"`
	Plugins       []string               `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	Supplementary []ideavim.BindingGroup `json:"supplementary,omitempty" yaml:"supplementary,omitempty"`
}

var tableNames = []string{"options", "actions", "plugins", "supplementary"}

func newTablesCmd(opts *rootOptions) *cobra.Command {
	cmd := cli.NewStandardCommand("tables [options|actions|plugins|supplementary]", "Show the built-in translation tables")

	cmd.Long = `Show the built-in translation tables used by the converter.

Without an argument all tables are printed. Tables are listed in the order
they are applied; action substitution walks the actions table top to bottom.`
	cmd.Args = cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs)
	cmd.ValidArgs = tableNames
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		dump := buildTablesDump(args)

		w := cmd.OutOrStdout()
		printed, err := opts.resultFormat(cmd).encode(w, dump)
		if err != nil || printed {
			return err
		}
		printTables(w, dump)
		return nil
	}

	return cmd
}

func buildTablesDump(args []string) tablesDump {
	want := func(name string) bool {
		return len(args) == 0 || args[0] == name
	}

	var dump tablesDump
	if want("options") {
		dump.Options = ideavim.OptionTable()
	}
	if want("actions") {
		dump.Actions = ideavim.ActionTable()
	}
	if want("plugins") {
		dump.Plugins = ideavim.PluginBlock()
	}
	if want("supplementary") {
		dump.Supplementary = ideavim.SupplementaryGroups()
	}
	return dump
}

func printTables(w io.Writer, dump tablesDump) {
	t := theme.DefaultTheme
	s := newStyler(w)

	printEntries := func(title, left, right string, entries []ideavim.Entry) {
		if len(entries) == 0 {
			return
		}
		keys := []string{left}
		for _, e := range entries {
			keys = append(keys, e.Key)
		}
		cell := column(keys...)

		fmt.Fprintln(w, s.render(t.Header, title))
		fmt.Fprintln(w, cell.Render(s.render(t.Muted, left))+s.render(t.Muted, right))
		for _, e := range entries {
			fmt.Fprintln(w, cell.Render(s.render(t.Highlight, e.Key))+e.Value)
		}
		fmt.Fprintln(w)
	}

	printEntries("Options", "NEOVIM", "IDEAVIM", dump.Options)
	printEntries("Actions", "COMMAND", "ACTION", dump.Actions)

	if len(dump.Plugins) > 0 {
		fmt.Fprintln(w, s.render(t.Header, "Plugins"))
		for _, p := range dump.Plugins {
			fmt.Fprintf(w, "  %s\n", p)
		}
		fmt.Fprintln(w)
	}

	for _, g := range dump.Supplementary {
		fmt.Fprintln(w, s.render(t.Header, g.Title))
		for _, b := range g.Bindings {
			fmt.Fprintf(w, "  %s\n", s.render(t.Highlight, b))
		}
		fmt.Fprintln(w)
	}
}
