package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gridpath/pathfind"
)

// ErrUnknownFormat is returned for unsupported file extensions or format names
var ErrUnknownFormat = errors.New("unknown scenario format")

// Format is a scenario file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads a scenario file, the format follows the extension
func Load(path string) (pathfind.Scenario, error) {
	format, err := FormatFor(path)
	if err != nil {
		return pathfind.Scenario{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return pathfind.Scenario{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	sc, err := Decode(f, format)
	if err != nil {
		return pathfind.Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Decode reads a scenario in the given format
// Keys absent from the input keep their default values, unknown keys are rejected
func Decode(r io.Reader, format Format) (pathfind.Scenario, error) {
	file := DefaultFile()
	file.Name = ""

	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&file)
		if err != nil {
			return pathfind.Scenario{}, fmt.Errorf("config: decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			slices.Sort(keys)
			return pathfind.Scenario{}, fmt.Errorf("config: unknown toml keys: %s", strings.Join(keys, ", "))
		}

	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		// An empty document leaves every default in place
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return pathfind.Scenario{}, fmt.Errorf("config: decode yaml: %w", err)
		}

	default:
		return pathfind.Scenario{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return file.Scenario()
}

// Encode writes sc in the given format
func Encode(w io.Writer, format Format, sc pathfind.Scenario) error {
	file := FromScenario(sc)
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(file); err != nil {
			return fmt.Errorf("config: encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return fmt.Errorf("config: encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

// Save writes sc to path, the format follows the extension
func Save(path string, sc pathfind.Scenario) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	if err := Encode(f, format, sc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
