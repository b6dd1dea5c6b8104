package executil

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CapturesStdout(t *testing.T) {
	runner := NewOSCommandRunner(1024*1024, 100*time.Millisecond)

	result, err := runner.Run(context.Background(), []string{"echo", "hello"}, 5*time.Second)

	require.NoError(t, err)
	assert.Equal(t, "hello\n", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
	assert.False(t, result.Truncated)
}

func TestRun_NonzeroExit(t *testing.T) {
	runner := NewOSCommandRunner(1024*1024, 100*time.Millisecond)

	result, err := runner.Run(context.Background(), []string{"false"}, 5*time.Second)

	require.Error(t, err)
	assert.Equal(t, 1, result.ExitCode)
}

func TestRun_Timeout(t *testing.T) {
	runner := NewOSCommandRunner(1024*1024, 50*time.Millisecond)

	start := time.Now()
	_, err := runner.Run(context.Background(), []string{"sleep", "10"}, 100*time.Millisecond)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.Less(t, time.Since(start), 2*time.Second, "timed-out command must not block")
}

func TestRun_ContextCancellation(t *testing.T) {
	runner := NewOSCommandRunner(1024*1024, 50*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := runner.Run(ctx, []string{"sleep", "10"}, time.Minute)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRun_EmptyCommand(t *testing.T) {
	runner := NewOSCommandRunner(1024, 100*time.Millisecond)

	_, err := runner.Run(context.Background(), nil, time.Second)

	assert.Error(t, err)
}

func TestRun_MissingBinary_ReturnsCommandError(t *testing.T) {
	runner := NewOSCommandRunner(1024, 100*time.Millisecond)

	_, err := runner.Run(context.Background(), []string{"definitely-not-a-real-tool-xyz"}, time.Second)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "start", cmdErr.Stage)
}

func TestRun_OutputTruncatedAtLimit(t *testing.T) {
	runner := NewOSCommandRunner(16, 100*time.Millisecond)

	result, err := runner.Run(context.Background(), []string{"echo", strings.Repeat("x", 100)}, 5*time.Second)

	require.NoError(t, err)
	assert.True(t, result.Truncated)
	assert.Len(t, result.Stdout, 16)
}

func TestOutput_TrimsWhitespace(t *testing.T) {
	runner := NewOSCommandRunner(1024, 100*time.Millisecond)

	out, err := runner.Output(context.Background(), []string{"echo", "  spaced  "}, 5*time.Second)

	require.NoError(t, err)
	assert.Equal(t, "spaced", out)
}

func TestOutput_NonzeroExit_ReturnsError(t *testing.T) {
	runner := NewOSCommandRunner(1024, 100*time.Millisecond)

	_, err := runner.Output(context.Background(), []string{"false"}, 5*time.Second)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "execution", cmdErr.Stage)
}

func TestCollector_StopsAtLimit(t *testing.T) {
	c := newCollector(8)

	n, err := c.Write([]byte("0123456789"))

	require.NoError(t, err)
	assert.Equal(t, 10, n, "Write must report full consumption")
	assert.Equal(t, "01234567", c.String())
	assert.True(t, c.Truncated())
}
