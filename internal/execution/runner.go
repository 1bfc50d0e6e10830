package execution

import (
	"bytes"
	"errors"
	"os/exec"
	"time"

	"btr/internal/config"
)

// Handle represents one in-flight subject process.
type Handle interface {
	// Wait blocks until the process terminates and returns its exit code.
	// The error is non-nil only for wait-level failures, not for ordinary
	// non-zero exits.
	Wait() (int, error)
	// Output returns the subject's combined stdout/stderr. Valid after Wait.
	Output() string
	// Duration returns the time from launch to termination. Valid after Wait.
	Duration() time.Duration
}

// Launcher starts a subject process for one test case without waiting on it.
type Launcher interface {
	Start(testPath string) (Handle, error)
}

// SubjectRunner launches the subject-under-test binary for single test
// cases. The subject is invoked as an argument list, never through a
// shell, and is judged solely by its exit code.
type SubjectRunner struct {
	config *config.Config
}

// NewSubjectRunner creates a new SubjectRunner
func NewSubjectRunner(cfg *config.Config) *SubjectRunner {
	return &SubjectRunner{config: cfg}
}

// Start launches the subject for one test case and returns a handle to
// await its termination on.
func (r *SubjectRunner) Start(testPath string) (Handle, error) {
	var buf bytes.Buffer
	cmd := exec.Command(r.config.SubjectPath, "-r", testPath)
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	started := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &processHandle{cmd: cmd, buf: &buf, started: started}, nil
}

type processHandle struct {
	cmd      *exec.Cmd
	buf      *bytes.Buffer
	started  time.Time
	duration time.Duration
}

func (h *processHandle) Wait() (int, error) {
	err := h.cmd.Wait()
	h.duration = time.Since(h.started)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Non-zero exit, including death by signal (ExitCode -1).
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return h.cmd.ProcessState.ExitCode(), nil
}

func (h *processHandle) Output() string {
	return h.buf.String()
}

func (h *processHandle) Duration() time.Duration {
	return h.duration
}
