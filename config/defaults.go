package config

import (
	"github.com/spf13/viper"

	"github.com/teranos/javagen/javawriter"
)

// DefaultDebounceMS is the default delay before re-rendering after a unit file changes
const DefaultDebounceMS = 300

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Writer defaults
	v.SetDefault("writer.indent", javawriter.DefaultIndent)
	v.SetDefault("writer.compress_types", true)

	// Output defaults
	v.SetDefault("output.dir", "")
	v.SetDefault("output.check_ignore_header", false)

	// Logging defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)

	// Watch defaults
	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)
}
