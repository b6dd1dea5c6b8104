// Package executil runs external desktop tools (xdotool, xprop, gdbus) with
// hard timeouts and bounded output capture. Every invocation is expected to
// finish quickly; a probe that hangs must never stall the caller.
package executil

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// Result represents the outcome of a command execution.
type Result struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
}

// OSCommandRunner executes real system commands via os/exec.
type OSCommandRunner struct {
	maxOutput   int
	gracePeriod time.Duration
}

// NewOSCommandRunner creates a runner capping captured output at maxOutput
// bytes. gracePeriod is how long a timed-out process gets between Interrupt
// and Kill.
func NewOSCommandRunner(maxOutput int64, gracePeriod time.Duration) *OSCommandRunner {
	if maxOutput < 1 {
		panic("maxOutput must be >= 1")
	}
	return &OSCommandRunner{
		maxOutput:   int(maxOutput),
		gracePeriod: gracePeriod,
	}
}

// Run executes a command with a timeout and graceful shutdown.
func (r *OSCommandRunner) Run(ctx context.Context, argv []string, timeout time.Duration) (*Result, error) {
	if len(argv) == 0 {
		return nil, os.ErrInvalid
	}

	// We don't use CommandContext's timeout here because we want Interrupt
	// before Kill, giving the tool a chance to flush its output.
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = nil

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &CommandError{Cmd: argv[0], Cause: err, Stage: "start"}
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, &CommandError{Cmd: argv[0], Cause: err, Stage: "start"}
	}

	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: argv[0], Cause: err, Stage: "start"}
	}

	// Collect output concurrently so it doesn't block the timeout select
	var stdoutStr, stderrStr string
	var truncated bool
	collectDone := make(chan struct{})
	go func() {
		stdoutStr, stderrStr, truncated = r.collectOutput(stdoutPipe, stderrPipe)
		close(collectDone)
	}()

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	var execErr error
	select {
	case err := <-done:
		execErr = err
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		execErr = ctx.Err()
	case <-time.After(timeout):
		_ = cmd.Process.Signal(os.Interrupt)
		select {
		case <-done:
		case <-time.After(r.gracePeriod):
			_ = cmd.Process.Kill()
			<-done
		}
		execErr = ErrTimeout
	}

	<-collectDone

	exitCode := 0
	if execErr != nil {
		exitCode = exitCodeOf(execErr)
	}

	return &Result{
		Stdout:    stdoutStr,
		Stderr:    stderrStr,
		ExitCode:  exitCode,
		Truncated: truncated,
	}, execErr
}

// Output runs argv and returns trimmed stdout. A nonzero exit is reported as
// a CommandError so probe callers can treat it uniformly with start failures.
func (r *OSCommandRunner) Output(ctx context.Context, argv []string, timeout time.Duration) (string, error) {
	result, err := r.Run(ctx, argv, timeout)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && result != nil {
			return "", &CommandError{Cmd: argv[0], Cause: errors.New(strings.TrimSpace(result.Stderr)), Stage: "execution"}
		}
		return "", err
	}
	return strings.TrimSpace(result.Stdout), nil
}

func (r *OSCommandRunner) collectOutput(stdout, stderr io.Reader) (string, string, bool) {
	stdoutCollector := newCollector(r.maxOutput)
	stderrCollector := newCollector(r.maxOutput)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, _ = io.Copy(stdoutCollector, stdout)
	}()

	go func() {
		defer wg.Done()
		_, _ = io.Copy(stderrCollector, stderr)
	}()

	wg.Wait()

	truncated := stdoutCollector.Truncated() || stderrCollector.Truncated()
	return stdoutCollector.String(), stderrCollector.String(), truncated
}

func exitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, ErrTimeout) {
		return -1
	}
	type exitCoder interface {
		ExitCode() int
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return -1
}
