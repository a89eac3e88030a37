package cmd

import (
	"fmt"
	"io"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/core/tui/theme"
	"github.com/spf13/cobra"

	"github.com/grovetools/nvim2idea/pkg/config"
	"github.com/grovetools/nvim2idea/pkg/converter"
)

func newConvertCmd(opts *rootOptions) *cobra.Command {
	cmd := cli.NewStandardCommand("convert", "Generate the .ideavimrc (default command)")

	cmd.Long = `Generate the .ideavimrc from the Neovim configuration.

Examples:
  nvim2idea convert
  nvim2idea convert --nvim-dir ~/dotfiles/nvim -o ./ideavimrc
  nvim2idea convert --dry-run | less`
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, opts)
	}

	return cmd
}

func runConvert(cmd *cobra.Command, opts *rootOptions) error {
	cfg, log, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	runOpts := converter.OptionsFromConfig(cfg)
	runOpts.DryRun = opts.dryRun
	runOpts.Stdout = cmd.OutOrStdout()
	runOpts.Logger = log

	res, err := converter.Run(cmd.Context(), runOpts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	// In dry-run mode stdout carries the document itself.
	w := cmd.OutOrStdout()
	if opts.dryRun {
		w = cmd.ErrOrStderr()
	}

	printed, err := opts.resultFormat(cmd).encode(w, res)
	if err != nil || printed {
		return err
	}
	printReport(w, res)
	return nil
}

func printReport(w io.Writer, res *converter.Result) {
	t := theme.DefaultTheme
	s := newStyler(w)

	if res.DryRun {
		fmt.Fprintf(w, "%s Generated (dry run, nothing written)\n", s.render(t.Success, theme.IconSuccess))
	} else {
		fmt.Fprintf(w, "%s Generated %s\n", s.render(t.Success, theme.IconSuccess), s.render(t.Bold, config.AbbreviatePath(res.OutputPath)))
	}
	fmt.Fprintln(w, s.render(t.Muted, fmt.Sprintf("  %d settings, %d mappings", len(res.Settings), len(res.Mappings))))

	if len(res.Warnings) > 0 {
		fmt.Fprintf(w, "\n%s\n", s.render(t.Warning, theme.IconWarning+" Warnings:"))
		for _, warning := range res.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning.Message)
		}
	}

	if len(res.Conflicts) > 0 {
		fmt.Fprintf(w, "\n%s\n", s.render(t.Error, theme.IconError+" Conflicting mappings (the last one wins):"))
		for _, c := range res.Conflicts {
			fmt.Fprintf(w, "  %s (%s)\n", s.render(t.Highlight, c.Key), c.Mode)
			for _, b := range c.Bindings {
				fmt.Fprintf(w, "    %s: %s\n", s.render(t.Muted, b.Source), b.RHS)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Note: This is a best-effort conversion. Some features may need manual adjustment.")
	fmt.Fprintln(w, "You may want to review and customize the generated .ideavimrc file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To use: Copy the generated file to your home directory or symlink it.")
}
