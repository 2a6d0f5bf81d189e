package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/javawriter"
	"github.com/teranos/javagen/unit"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check <unit files...>",
	Short: "Verify generated sources are up to date",
	Long: `Render each unit in memory and compare it with the file already in the
output directory. Prints a unified diff for every stale file and exits
non-zero when anything is stale or missing.

Examples:
  javagen check -o src/main/java *.yaml
  javagen check -o gen --ignore-header api.toml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringP("output", "o", "", "Directory holding the generated sources (default: output.dir)")
	CheckCmd.Flags().String("indent", javawriter.DefaultIndent, "Indentation for one nesting level")
	CheckCmd.Flags().Bool("no-compress", false, "Expect fully-qualified type names")
	CheckCmd.Flags().Bool("ignore-header", false, "Ignore leading // comment lines when comparing")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := outputDir(cmd, cfg)
	if dir == "" {
		return errors.WithHint(
			errors.New("check needs an output directory"),
			"pass -o <dir> or set output.dir in javagen.toml",
		)
	}
	ignoreHeader, _ := cmd.Flags().GetBool("ignore-header")
	ignoreHeader = ignoreHeader || cfg.Output.CheckIgnoreHeader

	units, err := loadUnits(args)
	if err != nil {
		return err
	}
	result, err := unit.Compare(units, dir, ignoreHeader, writerOptions(cmd, cfg)...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range result.Missing {
		fmt.Fprintf(out, "%s %s\n", pterm.Red("✗ missing:"), name)
	}
	for _, name := range result.Files() {
		fmt.Fprintf(out, "%s %s\n", pterm.Yellow("✗ stale:"), name)
		fmt.Fprint(out, result.Differences[name])
	}

	if result.UpToDate() {
		fmt.Fprintf(out, "%s %d files up to date\n", pterm.LightGreen("✓"), result.Checked)
		return nil
	}
	return errors.Newf("%d of %d files out of date",
		len(result.Missing)+len(result.Differences), result.Checked)
}
