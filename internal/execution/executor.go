package execution

import "btr/internal/domain"

// Executor runs a set of test cases and returns per-test results plus
// the aggregate report.
type Executor interface {
	Run(tests []string) ([]domain.TestResult, domain.Report, error)
}

// Reporter receives per-test results as a run progresses.
type Reporter interface {
	Report(result domain.TestResult)
}
