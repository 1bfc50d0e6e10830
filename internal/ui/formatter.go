package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"btr/internal/config"
	"btr/internal/domain"
	"btr/internal/storage"
)

const timeDisplayUnit = time.Millisecond

// Formatter formats and displays harness output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg, out: os.Stdout}
}

// PrintResult prints one per-test result line.
func (f *Formatter) PrintResult(result domain.TestResult) {
	status := color.New(color.FgGreen, color.Bold).Sprint("PASS")
	if !result.Passed {
		status = color.New(color.FgRed, color.Bold).Sprint("FAIL")
	}
	fmt.Fprintf(f.out, "Test %s:  %s\n",
		color.New(color.FgYellow, color.Bold).Sprint(result.TestPath),
		status,
	)
}

// PrintSummary prints the final suite report.
func (f *Formatter) PrintSummary(report domain.Report) {
	label := color.New(color.FgBlue, color.Bold)
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, "TEST REPORT:")
	fmt.Fprintf(f.out, "%s %d/%d\n", label.Sprint("PASSED:"), report.Passed, report.Total)
	fmt.Fprintf(f.out, "%s %d/%d\n", label.Sprint("FAILED:"), report.Failed, report.Total)

	if report.Total > 0 && report.Failed == 0 {
		color.Green("\n✓ All tests passed!")
	}
}

// PrintTestList prints the discovered test set without executing it.
func (f *Formatter) PrintTestList(tests []string) {
	color.Cyan("Discovered %d test case(s):\n", len(tests))
	for i, test := range tests {
		fmt.Fprintf(f.out, "  %s %s\n",
			color.YellowString("%d.", i+1),
			test,
		)
	}
}

// PrintMetaStats displays the stored statistics of the last run.
func (f *Formatter) PrintMetaStats(output *domain.RunOutput) {
	meta := output.Meta

	fmt.Fprintln(f.out)
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Last Suite Run                            ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	fmt.Fprintf(f.out, "  %-16s ", "Total tests")
	color.White("%d", meta.TotalTests)
	fmt.Fprintf(f.out, "  %-16s ", "Passed")
	color.Green("%d", meta.PassedTests)
	fmt.Fprintf(f.out, "  %-16s ", "Failed")
	color.Red("%d", meta.FailedTests)
	fmt.Fprintf(f.out, "  %-16s ", "Duration")
	color.White("%.2fs", meta.DurationSeconds)
	fmt.Fprintf(f.out, "  %-16s ", "Workers")
	color.White("%d", meta.Workers)
	fmt.Fprintf(f.out, "  %-16s ", "Timestamp")
	color.White("%s", meta.Timestamp)
	fmt.Fprintln(f.out)

	if meta.FailedTests == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d test(s) failed", meta.FailedTests)
	}
}

// PrintHistory prints recent run summaries from the history store.
func (f *Formatter) PrintHistory(entries []storage.HistoryEntry) {
	if len(entries) == 0 {
		color.Yellow("No recorded runs")
		return
	}

	color.Cyan("%-6s %-20s %8s %8s %8s %10s %8s", "ID", "STARTED", "PASSED", "FAILED", "TOTAL", "DURATION", "WORKERS")
	for _, e := range entries {
		line := fmt.Sprintf("%-6d %-20s %8d %8d %8d %10s %8d",
			e.ID,
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.Passed,
			e.Failed,
			e.Total,
			e.Duration.Round(timeDisplayUnit),
			e.Workers,
		)
		if e.Failed == 0 {
			color.Green("%s", line)
		} else {
			color.Red("%s", line)
		}
	}
}
