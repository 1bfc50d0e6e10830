package commands

import (
	"btr/internal/cli"
	"btr/internal/config"
	"btr/internal/discovery"
	"btr/internal/execution"
	"btr/internal/storage"
	"btr/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Report  *ReportCommand
	History *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner()
	filter := discovery.NewFilter()
	runner := execution.NewSubjectRunner(cfg)
	executor := execution.NewBatchRunner(cfg, runner)
	jsonStorage := storage.NewJSONStorage(cfg)
	history := storage.NewHistoryStore(cfg)
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewFailureViewer(cfg)

	return &Commands{
		Run:     NewRunCommand(cfg, scanner, filter, executor, jsonStorage, history, formatter, viewer),
		List:    NewListCommand(cfg, scanner, filter, formatter),
		Report:  NewReportCommand(cfg, jsonStorage, formatter, viewer),
		History: NewHistoryCommand(cfg, history, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Apply(flags.ToConfigFlags())
		return nil
	}

	// Bare invocation runs the full suite with the configured defaults
	rootCmd.RunE = c.Run.Execute
	rootCmd.PreRunE = applyFlags

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the test suite",
		Long:    "Discover test cases in the configured suite groups and execute the subject binary for each, in batches of concurrent workers",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringVarP(&flags.SuiteDir, "suite", "s", "", "Test suite root directory")
	runCmd.Flags().StringArrayVarP(&flags.Groups, "group", "g", nil, "Suite group to scan (repeatable, in order)")
	runCmd.Flags().StringVarP(&flags.Subject, "subject", "b", "", "Path to the subject-under-test binary")
	runCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "Number of concurrent subject processes")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by file name pattern (supports wildcards, e.g. 'arith_*' or '*loop*')")
	runCmd.Flags().BoolVar(&flags.Report, "report", false, "Open the failure viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered test cases",
		Long:    "Scan the configured suite groups and list all test cases without executing them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.SuiteDir, "suite", "s", "", "Test suite root directory")
	listCmd.Flags().StringArrayVarP(&flags.Groups, "group", "g", nil, "Suite group to scan (repeatable, in order)")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by file name pattern (supports wildcards, e.g. 'arith_*' or '*loop*')")
	rootCmd.AddCommand(listCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:     "report",
		Short:   "Show the last run's results",
		Long:    "Display statistics from the last suite run and browse failures interactively",
		RunE:    c.Report.Execute,
		PreRunE: applyFlags,
	}
	reportCmd.Flags().StringVarP(&flags.SuiteDir, "suite", "s", "", "Test suite root directory")
	rootCmd.AddCommand(reportCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "List recent suite runs",
		Long:    "Display summaries of recent suite runs from the history database (requires BTR_HISTORY_DSN)",
		RunE:    c.History.Execute,
		PreRunE: applyFlags,
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", 20, "Maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}
