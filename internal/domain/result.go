package domain

import "time"

// TestResult represents the outcome of executing one test case
type TestResult struct {
	TestPath string        // Path to the test case that was executed
	Passed   bool          // Whether the subject exited with code 0
	ExitCode int           // Exit code reported by the subject process
	Output   string        // Combined stdout/stderr captured from the subject
	Error    error         // Launch or wait error, if any
	Duration time.Duration // Time from launch to termination
}

// Report is the aggregate outcome of a full suite run.
// Passed + Failed == Total always holds.
type Report struct {
	Passed int
	Failed int
	Total  int
}

// RunMeta contains metadata about one suite run
type RunMeta struct {
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure for a suite run
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []TestFailure `json:"details"`
}
