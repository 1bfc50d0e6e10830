package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the harness. It is built once at
// startup and treated as immutable afterwards.
type Config struct {
	// Suite settings
	SuiteDir    string
	Groups      []string
	SubjectPath string

	// Execution settings
	Workers int

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Run-history database (optional, empty disables history)
	HistoryDSN string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	SuiteDir   string
	Groups     []string
	Subject    string
	Workers    int
	NameFilter string
	Report     bool
	Limit      int
}

// InvalidConfigError reports a configuration that must stop the harness
// before any subject process is launched.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// New creates a new Config with defaults, applying any .env file and
// environment overrides.
func New() *Config {
	// .env is optional; plain environment variables still apply
	_ = godotenv.Load()

	cfg := &Config{
		SuiteDir:       DefaultSuiteDir,
		SubjectPath:    DefaultSubjectPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Workers:        DefaultWorkers,
	}
	cfg.Groups = make([]string, len(DefaultGroups))
	copy(cfg.Groups, DefaultGroups)
	cfg.applyEnv()
	return cfg
}

// Load creates a config and applies flag overrides on top of defaults
// and environment values.
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Apply(flags)
	return cfg
}

// Apply records parsed flags and applies their overrides. Called after
// flag parsing, before the config is handed to discovery and execution.
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.SuiteDir != "" {
		c.SuiteDir = flags.SuiteDir
	}
	if len(flags.Groups) > 0 {
		c.Groups = flags.Groups
	}
	if flags.Subject != "" {
		c.SubjectPath = flags.Subject
	}
	if flags.Workers != 0 {
		c.Workers = flags.Workers
	}
}

// applyEnv overrides defaults from environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("BTR_SUITE_DIR"); v != "" {
		c.SuiteDir = v
	}
	if v := os.Getenv("BTR_GROUPS"); v != "" {
		groups := strings.Split(v, ",")
		c.Groups = c.Groups[:0]
		for _, g := range groups {
			if g = strings.TrimSpace(g); g != "" {
				c.Groups = append(c.Groups, g)
			}
		}
	}
	if v := os.Getenv("BTR_SUBJECT"); v != "" {
		c.SubjectPath = v
	}
	if v := os.Getenv("BTR_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
	c.HistoryDSN = os.Getenv("BTR_HISTORY_DSN")
}

// Validate reports a fatal configuration error, if any. It runs before
// discovery so that a bad setup never launches a subject process.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return &InvalidConfigError{Reason: fmt.Sprintf("worker count must be positive, got %d", c.Workers)}
	}
	if c.SubjectPath == "" {
		return &InvalidConfigError{Reason: "subject path is empty"}
	}
	if len(c.Groups) == 0 {
		return &InvalidConfigError{Reason: "no suite groups configured"}
	}
	return nil
}

// GetOutputPath returns the full path to the results JSON file (under the
// suite dir so run and report always read/write the same file).
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.SuiteDir, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
