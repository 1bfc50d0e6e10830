package execution

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"btr/internal/config"
)

// writeSubject creates a fake subject script in dir and returns its path.
func writeSubject(t *testing.T, dir, script string) string {
	t.Helper()
	path := filepath.Join(dir, "subject.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755); err != nil {
		t.Fatalf("failed to write subject script: %v", err)
	}
	return path
}

func newRunnerFor(subject string) *SubjectRunner {
	cfg := config.New()
	cfg.SubjectPath = subject
	return NewSubjectRunner(cfg)
}

func TestSubjectRunner_ExitCodes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script subjects need a POSIX shell")
	}
	dir := t.TempDir()

	t.Run("zero exit is reported", func(t *testing.T) {
		runner := newRunnerFor(writeSubject(t, dir, "exit 0"))
		handle, err := runner.Start("test_suite/basic/ok.js")
		if err != nil {
			t.Fatalf("unexpected launch error: %v", err)
		}
		code, err := handle.Wait()
		if err != nil {
			t.Fatalf("unexpected wait error: %v", err)
		}
		if code != 0 {
			t.Errorf("expected exit code 0, got %d", code)
		}
	})

	t.Run("non-zero exit is reported", func(t *testing.T) {
		runner := newRunnerFor(writeSubject(t, dir, "exit 3"))
		handle, err := runner.Start("test_suite/basic/bad.js")
		if err != nil {
			t.Fatalf("unexpected launch error: %v", err)
		}
		code, err := handle.Wait()
		if err != nil {
			t.Fatalf("non-zero exit must not surface as an error: %v", err)
		}
		if code != 3 {
			t.Errorf("expected exit code 3, got %d", code)
		}
	})

	t.Run("subject receives -r and the test path", func(t *testing.T) {
		runner := newRunnerFor(writeSubject(t, dir, `echo "$1 $2"; exit 0`))
		handle, err := runner.Start("test_suite/basic/args.js")
		if err != nil {
			t.Fatalf("unexpected launch error: %v", err)
		}
		if _, err := handle.Wait(); err != nil {
			t.Fatalf("unexpected wait error: %v", err)
		}
		if got := handle.Output(); got != "-r test_suite/basic/args.js\n" {
			t.Errorf("unexpected subject argv: %q", got)
		}
	})

	t.Run("output is captured", func(t *testing.T) {
		runner := newRunnerFor(writeSubject(t, dir, `echo out; echo err 1>&2; exit 1`))
		handle, err := runner.Start("test_suite/basic/noisy.js")
		if err != nil {
			t.Fatalf("unexpected launch error: %v", err)
		}
		if _, err := handle.Wait(); err != nil {
			t.Fatalf("unexpected wait error: %v", err)
		}
		if got := handle.Output(); got != "out\nerr\n" {
			t.Errorf("expected combined output, got %q", got)
		}
	})
}

func TestSubjectRunner_LaunchFailure(t *testing.T) {
	runner := newRunnerFor(filepath.Join(t.TempDir(), "does-not-exist"))
	if _, err := runner.Start("test_suite/basic/any.js"); err == nil {
		t.Fatal("expected launch error for missing subject binary")
	}
}
