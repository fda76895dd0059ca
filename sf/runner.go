package sf

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/open-cli-collective/prospector/log"
)

// DefaultTimeout bounds a single sfdx invocation.
const DefaultTimeout = 30 * time.Second

// Runner abstracts external command execution so tests can substitute a
// fake instead of spawning processes.
type Runner interface {
	// Run executes name with args, returning trimmed stdout on success.
	// Failures are *CommandError classified as ErrTimeout or ErrNonZeroExit.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands as child processes with a per-invocation
// timeout. Every failure is logged before the error is returned; there
// are no retries.
type ExecRunner struct {
	timeout time.Duration
	logger  *log.Logger
}

// NewExecRunner creates a runner with the given timeout.
// A zero timeout falls back to DefaultTimeout.
func NewExecRunner(timeout time.Duration, logger *log.Logger) *ExecRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ExecRunner{timeout: timeout, logger: logger}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	commandLine := name + " " + strings.Join(args, " ")

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return strings.TrimSpace(stdout.String()), nil
	}

	// Timeout takes precedence: a killed process also reports a non-zero
	// exit, but the cause is the deadline.
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		r.logger.Error("command timed out", map[string]any{
			"command": commandLine,
			"timeout": r.timeout.String(),
		})
		return "", &CommandError{
			Kind:        ErrTimeout,
			CommandLine: commandLine,
			Err:         err,
		}
	}

	stderrText := strings.TrimSpace(stderr.String())
	r.logger.Error("command failed", map[string]any{
		"command": commandLine,
		"stderr":  stderrText,
	})
	return "", &CommandError{
		Kind:        ErrNonZeroExit,
		CommandLine: commandLine,
		Stderr:      stderrText,
		Err:         err,
	}
}
