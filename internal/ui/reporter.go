package ui

import "btr/internal/domain"

// RunReporter prints per-test result lines and keeps the progress bar in
// sync during a run. Results arrive sequentially from the batch runner,
// so no locking is needed.
type RunReporter struct {
	formatter *Formatter
	progress  *ProgressBar
	passed    int
	failed    int
}

// NewRunReporter creates a RunReporter over a formatter and an optional
// progress bar.
func NewRunReporter(formatter *Formatter, progress *ProgressBar) *RunReporter {
	return &RunReporter{formatter: formatter, progress: progress}
}

// Report handles one completed test result.
func (r *RunReporter) Report(result domain.TestResult) {
	if result.Passed {
		r.passed++
	} else {
		r.failed++
	}
	r.formatter.PrintResult(result)
	if r.progress != nil {
		r.progress.Update(r.passed, r.failed)
	}
}

// Finish completes the progress bar, if any.
func (r *RunReporter) Finish() {
	if r.progress != nil {
		r.progress.Finish()
	}
}
