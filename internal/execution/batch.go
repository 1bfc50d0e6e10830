package execution

import (
	"fmt"

	"btr/internal/config"
	"btr/internal/domain"
)

// BatchRunner executes test cases in strictly sequential batches of up to
// Workers concurrent subject processes. Every process in a batch is
// launched before any is waited on, and waits happen in launch order, so
// per-test reporting is deterministic by input order even when processes
// finish out of order. Batch k+1 never starts before every process in
// batch k has terminated; this is the harness's only concurrency control.
//
// There is no per-test timeout: a subject process that never terminates
// stalls the whole run. Killing the harness is the only way to abort an
// in-progress run; in-flight subject processes then terminate or are
// orphaned per host OS semantics.
type BatchRunner struct {
	config   *config.Config
	launcher Launcher
	reporter Reporter
}

var _ Executor = (*BatchRunner)(nil)

// NewBatchRunner creates a new BatchRunner
func NewBatchRunner(cfg *config.Config, launcher Launcher) *BatchRunner {
	return &BatchRunner{config: cfg, launcher: launcher}
}

// SetReporter sets the receiver of per-test results for the run.
func (b *BatchRunner) SetReporter(reporter Reporter) {
	b.reporter = reporter
}

// pending associates one test path with its launched process, or with the
// launch error if the subject never started.
type pending struct {
	path     string
	handle   Handle
	startErr error
}

// Run executes all test cases and returns their results in input order
// along with the aggregate report.
func (b *BatchRunner) Run(tests []string) ([]domain.TestResult, domain.Report, error) {
	workers := b.config.Workers
	if workers < 1 {
		return nil, domain.Report{}, &config.InvalidConfigError{
			Reason: fmt.Sprintf("worker count must be positive, got %d", workers),
		}
	}

	total := len(tests)
	passed := 0
	results := make([]domain.TestResult, 0, total)

	remaining := tests
	for len(remaining) > 0 {
		size := workers
		if len(remaining) < size {
			size = len(remaining)
		}
		batch := remaining[:size]
		remaining = remaining[size:]

		// Launch the whole batch before waiting on any process. A launch
		// failure counts as a failed test, not a harness error.
		launched := make([]pending, 0, size)
		for _, path := range batch {
			handle, err := b.launcher.Start(path)
			launched = append(launched, pending{path: path, handle: handle, startErr: err})
		}

		for _, p := range launched {
			result := b.collect(p)
			if result.Passed {
				passed++
			}
			results = append(results, result)
			if b.reporter != nil {
				b.reporter.Report(result)
			}
		}
	}

	report := domain.Report{Passed: passed, Failed: total - passed, Total: total}
	return results, report, nil
}

// collect waits on one pending process and folds its outcome into a result.
func (b *BatchRunner) collect(p pending) domain.TestResult {
	if p.startErr != nil {
		return domain.TestResult{
			TestPath: p.path,
			Passed:   false,
			ExitCode: -1,
			Error:    p.startErr,
		}
	}

	code, err := p.handle.Wait()
	return domain.TestResult{
		TestPath: p.path,
		Passed:   err == nil && code == 0,
		ExitCode: code,
		Output:   p.handle.Output(),
		Error:    err,
		Duration: p.handle.Duration(),
	}
}
