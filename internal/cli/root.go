// Package cli provides the command-line interface for xn-mc.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hunterjsb/xn-mc/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xn-mc",
		Short: "Minecraft server log analysis and wiki tooling",
		Long: `xn-mc digs through a Minecraft server's logs and world data to
report what happened on the server.

It extracts:
  - Player deaths (with locations stripped)
  - Join/leave play sessions
  - Advancements
  - Chat, full-day or windowed around an event

Server directory and wiki credentials come from a YAML config file or
XNMC_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewBriefingCommand())
	rootCmd.AddCommand(commands.NewDeathsCommand())
	rootCmd.AddCommand(commands.NewChatCommand())
	rootCmd.AddCommand(commands.NewPlayerCommand())
	rootCmd.AddCommand(commands.NewPublishCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
