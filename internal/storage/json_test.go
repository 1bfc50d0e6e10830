package storage

import (
	"errors"
	"testing"
	"time"

	"btr/internal/config"
	"btr/internal/domain"
)

func newTestStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.New()
	cfg.SuiteDir = t.TempDir()
	return NewJSONStorage(cfg)
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	st := newTestStorage(t)

	results := []domain.TestResult{
		{TestPath: "suite/basic/a.js", Passed: true, ExitCode: 0},
		{TestPath: "suite/basic/b.js", Passed: false, ExitCode: 2, Output: "assertion failed"},
		{TestPath: "suite/basic/c.js", Passed: false, ExitCode: -1, Error: errors.New("executable not found")},
	}

	if err := st.Save(results, 1500*time.Millisecond, 2); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	meta := output.Meta
	if meta.TotalTests != 3 || meta.PassedTests != 1 || meta.FailedTests != 2 {
		t.Errorf("expected meta 3/1/2, got %+v", meta)
	}
	if meta.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", meta.Workers)
	}
	if meta.DurationSeconds != 1.5 {
		t.Errorf("expected 1.5s duration, got %f", meta.DurationSeconds)
	}

	if len(output.Details) != 2 {
		t.Fatalf("expected 2 failure details, got %d", len(output.Details))
	}
	if output.Details[0].TestPath != "suite/basic/b.js" || output.Details[0].Output != "assertion failed" {
		t.Errorf("unexpected first failure: %+v", output.Details[0])
	}
	if output.Details[1].Message != "executable not found" {
		t.Errorf("expected launch error message, got %+v", output.Details[1])
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	st := newTestStorage(t)
	if _, err := st.Load(); err == nil {
		t.Fatal("expected error when no results file exists")
	}
}
