package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/javagen/config"
	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/logger"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and validate javagen configuration",
	Long: `Display and validate javagen configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (JAVAGEN_* prefix, e.g. JAVAGEN_WRITER_INDENT)
3. Project config (javagen.toml in the working directory or a parent)
4. User config (~/.javagen/javagen.toml)
5. System config (/etc/javagen/javagen.toml)
6. Default values

Examples:
  javagen config show                 # Show effective configuration
  javagen config show --format json   # Same, as JSON
  javagen config get writer.indent    # Get one value
  javagen config validate             # Validate configuration
  javagen config where                # List configuration files`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., writer.indent, output.dir)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runConfigValidate,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE:  runConfigWhere,
}

func init() {
	configShowCmd.Flags().String("format", "toml", "Output format: toml, json, yaml")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configWhereCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	format, _ := cmd.Flags().GetString("format")
	logger.Debugw("Showing configuration", logger.FieldFormat, format)
	data, err := config.Marshal(cfg, format)
	if err != nil {
		return err
	}
	if format == "toml" || format == "yaml" {
		fmt.Fprintln(cmd.OutOrStdout(), "# javagen configuration")
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v, err := config.GetViper()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if !v.IsSet(key) {
		return errors.Newf("unknown configuration key %q", key)
	}

	value, err := configValue(key)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// configValue formats key through the typed getter matching its stored value,
// so "75" from the environment and 75 from a file print the same.
func configValue(key string) (string, error) {
	raw, err := config.Get(key)
	if err != nil {
		return "", err
	}
	switch raw.(type) {
	case bool:
		b, err := config.GetBool(key)
		return strconv.FormatBool(b), err
	case int, int64:
		n, err := config.GetInt(key)
		return strconv.Itoa(n), err
	case map[string]interface{}:
		return fmt.Sprint(raw), nil
	default:
		return config.GetString(key)
	}
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s configuration is valid\n", pterm.LightGreen("✓"))
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration files (lowest precedence first):")
	for _, path := range config.SearchPaths() {
		status := pterm.Gray("missing")
		if _, err := os.Stat(path); err == nil {
			status = pterm.LightGreen("found")
			if _, err := config.LoadFromFile(path); err != nil {
				status = pterm.Red("invalid")
			}
		}
		fmt.Fprintf(out, "  %s %s\n", path, status)
	}
	fmt.Fprintln(out, "Environment variables: JAVAGEN_<SECTION>_<KEY>")
	return nil
}
