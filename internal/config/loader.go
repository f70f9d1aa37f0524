package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads options from path, picking the format from the file
// extension (.toml, .yaml or .yml). A missing file returns the
// defaults.
func Load(path string) (Options, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return Default(), fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// LoadTOML reads options from a TOML file merged over the defaults.
func LoadTOML(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &opts); err != nil {
		perr := &ParseError{Path: path, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			perr.Line, perr.Column = de.Position()
		}
		return Default(), perr
	}
	return opts, nil
}

// LoadYAML reads options from a YAML file merged over the defaults.
func LoadYAML(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return opts, nil
}
