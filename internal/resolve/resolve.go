// Package resolve implements the directory-detection fallback chain: an
// ordered list of strategies that each try to discover the folder shown in
// the focused file-manager window. The first strategy to produce an existing,
// readable directory wins; everything else is recorded and skipped.
package resolve

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/konstantinWDK/nautilus-vscode-widget/internal/config"
)

// Attempt is one strategy's outcome. Attempts are ephemeral: produced and
// discarded per resolution call, surfaced only for diagnostics.
type Attempt struct {
	Strategy string
	Path     string
	OK       bool
	Err      error
}

// Resolved is the final output of a resolution call.
type Resolved struct {
	Path     string
	Strategy string
}

// Outcome bundles a full resolution result for asynchronous delivery.
type Outcome struct {
	Resolved Resolved
	Attempts []Attempt
	Err      error
}

// Strategy is one self-contained detection method in the fallback chain.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, probe *ProbeCache) Attempt
}

// CommandRunner executes an external tool with a timeout.
// executil.OSCommandRunner satisfies this.
type CommandRunner interface {
	Output(ctx context.Context, argv []string, timeout time.Duration) (string, error)
}

// FileSystem abstracts the filesystem probes strategies need.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
	UserHomeDir() (string, error)
	Getwd() (string, error)
}

// OSFileSystem implements FileSystem using the real OS.
type OSFileSystem struct{}

func (OSFileSystem) Stat(path string) (os.FileInfo, error)      { return os.Stat(path) }
func (OSFileSystem) ReadDir(path string) ([]os.DirEntry, error) { return os.ReadDir(path) }
func (OSFileSystem) UserHomeDir() (string, error)               { return os.UserHomeDir() }
func (OSFileSystem) Getwd() (string, error)                     { return os.Getwd() }

// Resolver runs the detection chain. It is stateless across calls: every
// Resolve builds its own probe cache, so concurrent calls are independent.
type Resolver struct {
	strategies []Strategy
	runner     CommandRunner
	fs         FileSystem
	logger     *zap.Logger

	probeTimeout time.Duration
	budget       time.Duration
	cacheTTL     time.Duration
	cacheMax     int
}

// New creates a Resolver with the canonical strategy chain, ordered from the
// most trustworthy signal (file-manager IPC) to the last-resort fallback
// (working directory / home).
func New(cfg *config.Config, runner CommandRunner, fs FileSystem, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}

	searchTimeout := time.Duration(cfg.Detect.SearchTimeoutMs) * time.Millisecond
	strategies := []Strategy{
		&busStrategy{fs: fs},
		&windowStrategy{fs: fs},
		&titleStrategy{fs: fs},
		&searchStrategy{fs: fs, maxDepth: cfg.Detect.SearchMaxDepth, timeout: searchTimeout},
		&cwdStrategy{fs: fs},
	}

	return NewWithStrategies(cfg, runner, fs, logger, strategies)
}

// NewWithStrategies creates a Resolver with an explicit chain (for testing).
func NewWithStrategies(cfg *config.Config, runner CommandRunner, fs FileSystem, logger *zap.Logger, strategies []Strategy) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		strategies:   strategies,
		runner:       runner,
		fs:           fs,
		logger:       logger,
		probeTimeout: time.Duration(cfg.Detect.ProbeTimeoutMs) * time.Millisecond,
		budget:       time.Duration(cfg.Detect.TotalBudgetMs) * time.Millisecond,
		cacheTTL:     time.Duration(cfg.Detect.CacheTTLMs) * time.Millisecond,
		cacheMax:     cfg.Detect.CacheMaxEntries,
	}
}

// Resolve runs the chain and returns the first validated directory.
// Returns ErrNoDirectoryFound when every strategy is exhausted.
func (r *Resolver) Resolve(ctx context.Context) (Resolved, error) {
	resolved, _, err := r.ResolveWithAttempts(ctx)
	return resolved, err
}

// ResolveWithAttempts is Resolve plus the per-strategy record, for
// diagnostics output.
func (r *Resolver) ResolveWithAttempts(ctx context.Context) (Resolved, []Attempt, error) {
	ctx, cancel := context.WithTimeout(ctx, r.budget)
	defer cancel()

	probe := NewProbeCache(r.runner, r.probeTimeout, r.cacheTTL, r.cacheMax)

	attempts := make([]Attempt, 0, len(r.strategies))
	for _, s := range r.strategies {
		attempt := s.Attempt(ctx, probe)
		attempt.Strategy = s.Name()

		// A strategy may hand back a path that stopped existing between its
		// own check and now; never return it, fall through instead.
		if attempt.OK && !isDir(r.fs, attempt.Path) {
			attempt.OK = false
			attempt.Err = ErrInvalidPath
		}
		attempts = append(attempts, attempt)

		if attempt.OK {
			r.logger.Info("directory detected",
				zap.String("strategy", s.Name()),
				zap.String("path", attempt.Path))
			return Resolved{Path: attempt.Path, Strategy: s.Name()}, attempts, nil
		}

		r.logger.Debug("strategy failed",
			zap.String("strategy", s.Name()),
			zap.Error(attempt.Err))

		if ctx.Err() != nil {
			// Budget exhausted: remaining strategies are skipped, but the
			// caller still degrades to its default directory.
			break
		}
	}

	r.logger.Warn("no strategy produced a directory")
	return Resolved{}, attempts, ErrNoDirectoryFound
}

// Go runs Resolve off the caller's goroutine and delivers the outcome on the
// returned channel, so a UI event loop is never blocked by subprocess
// latency. The channel is buffered; the result can be received late or not
// at all.
func (r *Resolver) Go(ctx context.Context) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		resolved, attempts, err := r.ResolveWithAttempts(ctx)
		ch <- Outcome{Resolved: resolved, Attempts: attempts, Err: err}
	}()
	return ch
}

// isDir reports whether path is an existing, readable directory.
func isDir(fs FileSystem, path string) bool {
	if path == "" {
		return false
	}
	info, err := fs.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	// Readability check: listing must not be denied.
	if _, err := fs.ReadDir(path); err != nil {
		return false
	}
	return true
}
