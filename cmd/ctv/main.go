package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"ctv/internal/cli"
	"ctv/internal/cli/commands"
	"ctv/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "ctv",
		Short: "Circuit trace verifier",
		Long: `Runs each declared circuit through the simulator and compares the trace it
prints, line by line, with a recorded reference trace. Mismatches are shown as
a decoded table keyed by circuit type.`,
		Version:      version,
		SilenceUsage: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Interrupt cancels the run and kills the running simulator
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	// Execute root command
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
