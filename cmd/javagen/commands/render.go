package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/javagen/config"
	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/javawriter"
	"github.com/teranos/javagen/logger"
	"github.com/teranos/javagen/unit"
)

// RenderCmd represents the render command
var RenderCmd = &cobra.Command{
	Use:   "render <unit files...>",
	Short: "Render unit files to Java source",
	Long: `Render each unit file to Java source.

Without --output the sources are written to stdout one after another.
With --output each unit is written below the directory at the path its
package and first type name give, e.g. com/example/Foo.java.

Examples:
  javagen render api.yaml
  javagen render -o src/main/java api.yaml model.toml
  javagen render -o gen --indent "    " --no-compress api.json
  javagen render -o gen --watch api.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	RenderCmd.Flags().StringP("output", "o", "", "Output directory (default: output.dir, else stdout)")
	RenderCmd.Flags().String("indent", javawriter.DefaultIndent, "Indentation for one nesting level")
	RenderCmd.Flags().Bool("no-compress", false, "Write fully-qualified type names")
	RenderCmd.Flags().Bool("watch", false, "Re-render when a unit file changes (requires --output)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts := writerOptions(cmd, cfg)
	dir := outputDir(cmd, cfg)
	watch, _ := cmd.Flags().GetBool("watch")
	if watch && dir == "" {
		return errors.WithHint(
			errors.New("--watch needs an output directory"),
			"pass -o <dir> or set output.dir in javagen.toml",
		)
	}

	units, err := loadUnits(args)
	if err != nil {
		return err
	}
	for _, u := range units {
		if err := renderTo(cmd.OutOrStdout(), u, dir, opts); err != nil {
			return err
		}
	}

	if !watch {
		return nil
	}
	return watchUnits(cmd, cfg, args, dir, opts)
}

func renderTo(stdout io.Writer, u *unit.Unit, dir string, opts []javawriter.Option) error {
	if dir == "" {
		data, err := unit.RenderBytes(u, opts...)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	path, err := writeUnit(u, dir, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, path)
	return nil
}

func watchUnits(cmd *cobra.Command, cfg *config.Config, paths []string, dir string, opts []javawriter.Option) error {
	watcher, err := unit.NewWatcher(cfg.DebounceDuration(), paths...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	log := logger.ChildLogger(logger.ComponentLogger("render.watch"), logger.FieldOutput, dir)
	watcher.OnChange(func(path string) error {
		u, err := unit.Load(path)
		if err == nil {
			err = u.Validate()
		}
		if err == nil {
			err = renderTo(out, u, dir, opts)
		}
		if err != nil {
			log.Errorw("Re-render failed", logger.FieldFile, path, logger.FieldError, err)
		}
		return err
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher.Start()
	log.Infow("Watching unit files", logger.FieldCount, len(paths))
	<-ctx.Done()
	return watcher.Stop()
}
