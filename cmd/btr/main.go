package main

import (
	"fmt"
	"os"

	"btr/internal/cli"
	"btr/internal/cli/commands"
	"btr/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "btr",
		Short:   "Batched test suite runner",
		Long:    `A batched test-execution harness. Discovers test case files in suite group directories, runs the subject-under-test binary once per case with a bounded number of concurrent processes, and reports an aggregate pass/fail summary. The harness exit code reflects harness errors only, never subject test failures.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
