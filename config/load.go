package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/javagen/errors"
)

// FileName is the project configuration file searched for from the working directory upward
const FileName = "javagen.toml"

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the javagen configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v, err := initViper()
	if err != nil {
		return nil, err
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() (*viper.Viper, error) {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set defaults but don't bind environment variables for this specific load
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configPath)
	}
	return config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults.
// The instance is cached only when every config file could be read.
func initViper() (*viper.Viper, error) {
	if viperInstance != nil {
		return viperInstance, nil
	}

	v := viper.New()

	// JAVAGEN_WRITER_INDENT overrides writer.indent, and so on
	v.SetEnvPrefix("JAVAGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := mergeConfigFiles(v); err != nil {
		return nil, err
	}

	viperInstance = v
	return v, nil
}

// SearchPaths returns the config files consulted, lowest precedence first.
// The project file is included only when one was found.
func SearchPaths() []string {
	paths := []string{"/etc/javagen/" + FileName}
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".javagen", FileName))
	}
	if project := findProjectConfig(); project != "" {
		paths = append(paths, project)
	}
	return paths
}

// findProjectConfig searches for javagen.toml by walking up the directory tree
// Returns the path to the first config file found, or empty string if none found
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges configuration files in precedence order.
// Precedence (lowest to highest): system < user < project < env vars.
// A file that exists but cannot be read or parsed is an error.
func mergeConfigFiles(v *viper.Viper) error {
	for _, configPath := range SearchPaths() {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(configPath)
		tempViper.SetConfigType("toml")

		if err := tempViper.ReadInConfig(); err != nil {
			return errors.WithHint(
				errors.Wrapf(err, "config file %s", configPath),
				"fix the TOML syntax or remove the file",
			)
		}
		// Merged as config values so environment variables still win
		if err := v.MergeConfigMap(tempViper.AllSettings()); err != nil {
			return errors.Wrapf(err, "config file %s", configPath)
		}
	}
	return nil
}

// Get returns a configuration value using dot notation
func Get(key string) (interface{}, error) {
	v, err := initViper()
	if err != nil {
		return nil, err
	}
	return v.Get(key), nil
}

// GetString returns a configuration value as string using dot notation
func GetString(key string) (string, error) {
	v, err := initViper()
	if err != nil {
		return "", err
	}
	return v.GetString(key), nil
}

// GetBool returns a configuration value as bool using dot notation
func GetBool(key string) (bool, error) {
	v, err := initViper()
	if err != nil {
		return false, err
	}
	return v.GetBool(key), nil
}

// GetInt returns a configuration value as int using dot notation
func GetInt(key string) (int, error) {
	v, err := initViper()
	if err != nil {
		return 0, err
	}
	return v.GetInt(key), nil
}
