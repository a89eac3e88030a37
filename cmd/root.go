package cmd

import (
	"context"

	"github.com/grovetools/core/cli"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/nvim2idea/pkg/config"
	"github.com/grovetools/nvim2idea/pkg/logger"
)

// rootOptions holds the flags shared by all commands. --config, --verbose
// and --json come from cli.NewStandardCommand.
type rootOptions struct {
	nvimDir string
	output  string
	dryRun  bool
	format  outputFormat
}

// NewRootCmd builds the nvim2idea command tree. Running the root command
// without a subcommand performs the conversion.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{format: formatText}

	cmd := cli.NewStandardCommand("nvim2idea", "Convert a Neovim Lua config into an .ideavimrc")
	cmd.Long = `Convert a Neovim Lua configuration into a best-effort .ideavimrc.

Reads lua/config/settings.lua and lua/config/keymaps.lua from the Neovim
config directory, translates recognized options and key mappings, and writes
an IdeaVim configuration with a set of IntelliJ action mappings appended.

Mappings that cannot be expressed in IdeaVim (expression mappings, Lua
function calls, <Esc> clearing search) are skipped and reported as warnings.`
	cmd.Args = cobra.NoArgs
	cmd.SilenceUsage = true
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, opts)
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.nvimDir, "nvim-dir", "", "Neovim config directory (default ~/.config/nvim)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file (default ~/.ideavimrc)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Print the generated file instead of writing it")
	flags.Var(&opts.format, "format", "Output format: text, json, yaml")

	cmd.AddCommand(newConvertCmd(opts))
	cmd.AddCommand(newTablesCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// resultFormat resolves --format, with the standard --json flag as a
// shorthand for --format json.
func (o *rootOptions) resultFormat(cmd *cobra.Command) outputFormat {
	if cli.GetOptions(cmd).JSONOutput {
		return formatJSON
	}
	return o.format
}

// configPath is the config file named by --config, or the default location.
func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultPath()
}

// loadConfig resolves the effective config: flags override the config file,
// which overrides the defaults.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, *logrus.Logger, error) {
	path := configPath(cmd)

	cfg, unknown, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if opts.nvimDir != "" {
		cfg.NvimDir = opts.nvimDir
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Verbose = true
	}

	log := logger.New(cfg.Verbose, cmd.ErrOrStderr())
	for _, key := range unknown {
		log.WithFields(logrus.Fields{"file": path, "key": key}).Warn("Ignoring unknown config key")
	}
	log.WithFields(logrus.Fields{
		"nvim_dir": cfg.NvimDir,
		"output":   cfg.Output,
	}).Debug("Resolved configuration")

	return cfg, log, nil
}
