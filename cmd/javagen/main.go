package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/javagen/cmd/javagen/commands"
	"github.com/teranos/javagen/config"
	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "javagen",
	Short: "javagen - Java source files from declarative units",
	Long: `javagen - Render Java source files from declarative unit descriptions.

A unit file (YAML, TOML or JSON) describes one .java file: its package,
imports and type declarations down to method bodies. javagen renders it
with consistent indentation, canonical modifier order and imported type
names shortened.

Available commands:
  render  - Render unit files to stdout or a source tree
  check   - Verify a source tree matches its unit files
  config  - Show and validate javagen configuration
  version - Show version information

Examples:
  javagen render api.yaml                  # Print the rendered source
  javagen render -o src/main/java *.yaml   # Write com/example/Foo.java etc.
  javagen render -o gen --watch api.yaml   # Re-render on every save
  javagen check -o src/main/java *.yaml    # Fail when generated files are stale`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")

		// A broken config file is reported by the commands that need the
		// config; config where must still run to locate it.
		cfg, cfgErr := config.Load()
		if cfgErr == nil {
			if verbosity == 0 {
				verbosity = cfg.Log.Verbosity
			}
			jsonLogs = jsonLogs || cfg.Log.JSON
		}

		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		if cfgErr != nil {
			logger.Warnw("Configuration not loaded", logger.FieldError, cfgErr)
		}
		logger.Infow("Starting",
			logger.FieldCommand, cmd.CommandPath(),
			"verbosity", logger.LevelName(verbosity))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON to stderr")

	// Add commands
	rootCmd.AddCommand(commands.RenderCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
