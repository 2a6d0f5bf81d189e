package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teranos/javagen/config"
	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/javawriter"
	"github.com/teranos/javagen/logger"
	"github.com/teranos/javagen/unit"
)

// loadConfig loads and validates the effective configuration
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// writerOptions combines config with the --indent and --no-compress flags,
// which win when given.
func writerOptions(cmd *cobra.Command, cfg *config.Config) []javawriter.Option {
	opts := cfg.WriterOptions()
	if f := cmd.Flags().Lookup("indent"); f != nil && f.Changed {
		opts = append(opts, javawriter.WithIndent(f.Value.String()))
	}
	if noCompress, _ := cmd.Flags().GetBool("no-compress"); noCompress {
		opts = append(opts, javawriter.WithCompression(false))
	}
	return opts
}

// outputDir returns the -o flag, falling back to output.dir
func outputDir(cmd *cobra.Command, cfg *config.Config) string {
	if dir, _ := cmd.Flags().GetString("output"); dir != "" {
		return dir
	}
	return cfg.Output.Dir
}

func loadUnits(paths []string) ([]*unit.Unit, error) {
	units := make([]*unit.Unit, 0, len(paths))
	for _, p := range paths {
		u, err := unit.Load(p)
		if err != nil {
			return nil, err
		}
		if err := u.Validate(); err != nil {
			return nil, errors.Wrapf(err, "unit file %s", p)
		}
		units = append(units, u)
	}
	return units, nil
}

// writeUnit renders u to dir/FileName(), creating directories as needed.
// The source is rendered into a temporary file beside the target and
// renamed over it, so a failed render leaves an existing file untouched.
func writeUnit(u *unit.Unit, dir string, opts []javawriter.Option) (string, error) {
	path := filepath.Join(dir, filepath.FromSlash(u.FileName()))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create directory for %s", path)
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return "", errors.Wrapf(err, "failed to create temporary file for %s", path)
	}
	tmp := f.Name()
	w := javawriter.New(f, opts...)
	renderErr := unit.Render(u, w)
	closeErr := w.Close()
	if renderErr != nil {
		os.Remove(tmp)
		return "", renderErr
	}
	if closeErr != nil {
		os.Remove(tmp)
		return "", errors.Wrapf(closeErr, "failed to close %s", tmp)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return "", errors.Wrapf(err, "failed to set permissions on %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", errors.Wrapf(err, "failed to replace %s", path)
	}

	logger.Debugw("Wrote unit", logger.FieldFile, u.FileName(), logger.FieldOutput, path)
	return path, nil
}
