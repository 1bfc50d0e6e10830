package domain

// TestFailure represents a failed test case as stored in the results file
type TestFailure struct {
	TestPath string `json:"test_path"`
	ExitCode int    `json:"exit_code"`
	Output   string `json:"output,omitempty"`  // Subject output, carried opaquely for humans
	Message  string `json:"message,omitempty"` // Launch error text when the subject never started
}
