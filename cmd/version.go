package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=v1.2.3".
var Version = ""

func newVersionCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("version", "Print the nvim2idea version")
	cmd.Args = cobra.NoArgs
	cmd.Run = func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nvim2idea %s\n", resolveVersion())
	}
	return cmd
}

func resolveVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}
