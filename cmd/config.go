package cmd

import (
	"fmt"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/core/tui/theme"
	"github.com/spf13/cobra"

	"github.com/grovetools/nvim2idea/pkg/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := cli.NewStandardCommand("config", "Manage the nvim2idea config file")

	cmd.Long = `Manage the optional nvim2idea config file.

The config file only relocates the Neovim config directory, the two input
files, and the output file. Command line flags take precedence over it.`

	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigShowCmd(opts))
	cmd.AddCommand(newConfigSchemaCmd())

	return cmd
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := cli.NewStandardCommand("init", "Write a config file with the default values")
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		path := configPath(cmd)
		if path == "" {
			return fmt.Errorf("could not determine config path; pass --config")
		}

		cfg := config.Defaults()
		if opts.dryRun {
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		if err := cfg.Save(path, force); err != nil {
			return err
		}

		t := theme.DefaultTheme
		s := newStyler(cmd.OutOrStdout())
		fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", s.render(t.Success, theme.IconSuccess), config.AbbreviatePath(config.ExpandPath(path)))
		return nil
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	cmd := cli.NewStandardCommand("show", "Show the effective configuration")
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd, opts)
		if err != nil {
			return err
		}

		printed, err := opts.resultFormat(cmd).encode(cmd.OutOrStdout(), cfg)
		if err != nil || printed {
			return err
		}

		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	return cmd
}

func newConfigSchemaCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("schema", "Print the JSON schema of the config file")
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	return cmd
}
