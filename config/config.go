// Package config loads javagen settings from defaults, TOML files and
// JAVAGEN_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/teranos/javagen/javawriter"
)

// Config represents the javagen configuration
type Config struct {
	Writer WriterConfig `mapstructure:"writer" toml:"writer" json:"writer" yaml:"writer"`
	Output OutputConfig `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Log    LogConfig    `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
	Watch  WatchConfig  `mapstructure:"watch" toml:"watch" json:"watch" yaml:"watch"`
}

// WriterConfig configures the Java source emitter
type WriterConfig struct {
	Indent        string `mapstructure:"indent" toml:"indent" json:"indent" yaml:"indent"`                                 // one nesting level; spaces or tabs
	CompressTypes bool   `mapstructure:"compress_types" toml:"compress_types" json:"compress_types" yaml:"compress_types"` // shorten qualified names
}

// OutputConfig configures where rendered files go
type OutputConfig struct {
	Dir               string `mapstructure:"dir" toml:"dir" json:"dir" yaml:"dir"`                                                                 // "" = stdout
	CheckIgnoreHeader bool   `mapstructure:"check_ignore_header" toml:"check_ignore_header" json:"check_ignore_header" yaml:"check_ignore_header"` // skip leading // lines in check
}

// LogConfig configures logging
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" json:"verbosity" yaml:"verbosity"` // 0 = warnings, 1 = info, 2 = debug
}

// WatchConfig configures render --watch
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" yaml:"debounce_ms"`
}

// WriterOptions returns the emitter options this configuration selects
func (c *Config) WriterOptions() []javawriter.Option {
	return []javawriter.Option{
		javawriter.WithIndent(c.Writer.Indent),
		javawriter.WithCompression(c.Writer.CompressTypes),
	}
}

// DebounceDuration returns the watch debounce period
func (c *Config) DebounceDuration() time.Duration {
	return time.Duration(c.Watch.DebounceMS) * time.Millisecond
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Writer: {Indent: %q, CompressTypes: %t}, Output: {Dir: %s}}",
		c.Writer.Indent, c.Writer.CompressTypes, c.Output.Dir)
}
