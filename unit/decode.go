package unit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/javagen/errors"
)

// Format is a unit file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(p string) (Format, error) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.WithHint(
		errors.Newf("unrecognized unit file extension %q", filepath.Ext(p)),
		"unit files end in .yaml, .yml, .toml or .json",
	)
}

// Load reads and decodes the unit file at p. It does not validate the unit.
func Load(p string) (*Unit, error) {
	format, err := FormatFromPath(p)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", p)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read unit file %s", p)
	}
	u, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "unit file %s", p)
	}
	return u, nil
}

// Decode parses data in the given format. Unknown keys are rejected so
// that typos do not silently drop declarations.
func Decode(data []byte, format Format) (*Unit, error) {
	var u Unit
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&u); err != nil {
			return nil, errors.Wrap(err, "failed to decode YAML")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &u)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode TOML")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Newf("unknown TOML key %s", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&u); err != nil {
			return nil, errors.Wrap(err, "failed to decode JSON")
		}
	default:
		return nil, errors.Newf("unsupported unit format %q", format)
	}
	return &u, nil
}
