package commands

import (
	"fmt"
	"time"

	"btr/internal/config"
	"btr/internal/discovery"
	"btr/internal/execution"
	"btr/internal/storage"
	"btr/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	executor  *execution.BatchRunner
	storage   storage.Storage
	history   *storage.HistoryStore
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	executor *execution.BatchRunner,
	st storage.Storage,
	history *storage.HistoryStore,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		executor:  executor,
		storage:   st,
		history:   history,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// A bad configuration must fail before any subject process launches
	if err := rc.config.Validate(); err != nil {
		return err
	}

	// Discover tests
	tests, err := rc.scanner.Discover(rc.config.SuiteDir, rc.config.Groups)
	if err != nil {
		return err
	}

	// Filter tests
	tests = rc.filter.FilterByName(tests, rc.config.Flags.NameFilter)

	if len(tests) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	// Per-test lines plus a progress bar on stderr
	reporter := ui.NewRunReporter(rc.formatter, ui.NewProgressBar(len(tests)))
	rc.executor.SetReporter(reporter)

	// Execute tests
	start := time.Now()
	results, report, err := rc.executor.Run(tests)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	reporter.Finish()

	// Save results
	if err := rc.storage.Save(results, duration, rc.config.Workers); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	// Record history if a database is configured; a broken history store
	// never fails a completed run
	if rc.history.Enabled() {
		if err := rc.history.Record(report, duration, rc.config.Workers); err != nil {
			color.Yellow("Warning: could not record run history: %v", err)
		}
	}

	rc.formatter.PrintSummary(report)

	if rc.config.Flags.Report && report.Failed > 0 {
		output, err := rc.storage.Load()
		if err != nil {
			return err
		}
		return rc.viewer.View(output)
	}

	return nil
}
