package config

const (
	// DefaultSuiteDir is the default test suite root directory
	DefaultSuiteDir = "./test_suite"
	// DefaultSubjectPath is the default subject-under-test binary
	DefaultSubjectPath = "./build/subject"
	// DefaultOutputJSONFile is the default results file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default results directory
	DefaultOutputJSONDir = "storage"
	// DefaultWorkers is the default number of concurrent subject processes
	DefaultWorkers = 2
)

// DefaultGroups are the suite subdirectories scanned when none are configured
var DefaultGroups = []string{"basic"}
