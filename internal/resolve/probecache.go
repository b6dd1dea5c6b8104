package resolve

import (
	"context"
	"strings"
	"sync"
	"time"
)

type probeResult struct {
	out string
	err error
	at  time.Time
}

// ProbeCache memoizes subprocess results for the duration of one resolution
// call. Several strategies ask the same questions (focused window id, window
// title); caching keeps the chain from re-running identical probes. The
// cache is created per call and discarded with it - there is deliberately no
// cross-call state.
type ProbeCache struct {
	runner  CommandRunner
	timeout time.Duration
	ttl     time.Duration
	max     int

	mu      sync.Mutex
	entries map[string]probeResult
	order   []string
}

// NewProbeCache creates a cache over runner. Entries expire after ttl and
// the oldest entry is evicted once max is reached.
func NewProbeCache(runner CommandRunner, timeout, ttl time.Duration, max int) *ProbeCache {
	return &ProbeCache{
		runner:  runner,
		timeout: timeout,
		ttl:     ttl,
		max:     max,
		entries: make(map[string]probeResult),
	}
}

// Output runs argv through the underlying runner, returning a cached result
// when the same argv was run within the TTL. Errors are cached too: a tool
// that just failed will fail again within the same call.
func (c *ProbeCache) Output(ctx context.Context, argv []string) (string, error) {
	key := strings.Join(argv, "\x00")

	c.mu.Lock()
	if cached, ok := c.entries[key]; ok && time.Since(cached.at) < c.ttl {
		c.mu.Unlock()
		return cached.out, cached.err
	}
	c.mu.Unlock()

	out, err := c.runner.Output(ctx, argv, c.timeout)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists {
		if len(c.order) >= c.max {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = probeResult{out: out, err: err, at: time.Now()}

	return out, err
}

// Len reports the number of live cache entries.
func (c *ProbeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
