package config

import (
	"fmt"
	"regexp"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.EditorCommand == "" {
		errs = append(errs, "editor_command must not be empty")
	}
	if c.ButtonColor != "" && !hexColorRe.MatchString(c.ButtonColor) {
		errs = append(errs, fmt.Sprintf("button_color %q is not a hex color", c.ButtonColor))
	}
	for folder, color := range c.FavoriteColors {
		if !hexColorRe.MatchString(color) {
			errs = append(errs, fmt.Sprintf("favorite_colors[%q] %q is not a hex color", folder, color))
		}
	}

	// Detect validation
	if c.Detect.ProbeTimeoutMs < 1 {
		errs = append(errs, "detect.probe_timeout_ms must be >= 1")
	}
	if c.Detect.TotalBudgetMs < 1 {
		errs = append(errs, "detect.total_budget_ms must be >= 1")
	}
	if c.Detect.SearchTimeoutMs < 1 {
		errs = append(errs, "detect.search_timeout_ms must be >= 1")
	}
	if c.Detect.SearchMaxDepth < 1 {
		errs = append(errs, "detect.search_max_depth must be >= 1")
	}
	if c.Detect.MaxCommandOutputSize < 1 {
		errs = append(errs, "detect.max_command_output_size must be >= 1")
	}
	if c.Detect.CacheMaxEntries < 1 {
		errs = append(errs, "detect.cache_max_entries must be >= 1")
	}
	if c.Detect.CacheTTLMs < 1 {
		errs = append(errs, "detect.cache_ttl_ms must be >= 1")
	}

	// Semantic validation: a single probe must fit inside the chain budget
	if c.Detect.ProbeTimeoutMs > c.Detect.TotalBudgetMs {
		errs = append(errs, "detect.probe_timeout_ms must be <= detect.total_budget_ms")
	}
	if c.Detect.SearchTimeoutMs > c.Detect.TotalBudgetMs {
		errs = append(errs, "detect.search_timeout_ms must be <= detect.total_budget_ms")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
