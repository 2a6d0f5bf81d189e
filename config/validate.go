package config

import (
	"strings"

	"github.com/teranos/javagen/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Indent: empty is allowed (flat output), anything but spaces and tabs is not
	if strings.Trim(c.Writer.Indent, " \t") != "" {
		return errors.WithHint(
			errors.Newf("writer.indent must contain only spaces and tabs, got %q", c.Writer.Indent),
			"use \"  \" for two spaces or \"\\t\" for a tab",
		)
	}

	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	// Debounce: 0 = re-render on every event, negative = invalid
	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	return nil
}
