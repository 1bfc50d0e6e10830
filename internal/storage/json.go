package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"btr/internal/domain"
)

// Save writes run results to the configured JSON output file. Failure
// details carry the subject's captured output so the report viewer can
// show it later.
func (s *JSONStorage) Save(results []domain.TestResult, duration time.Duration, workers int) error {
	passed := 0
	var failures []domain.TestFailure
	for _, r := range results {
		if r.Passed {
			passed++
			continue
		}
		failure := domain.TestFailure{
			TestPath: r.TestPath,
			ExitCode: r.ExitCode,
			Output:   r.Output,
		}
		if r.Error != nil {
			failure.Message = r.Error.Error()
		}
		failures = append(failures, failure)
	}

	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TotalTests:      len(results),
			PassedTests:     passed,
			FailedTests:     len(results) - passed,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Workers:         workers,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: failures,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last run results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}
