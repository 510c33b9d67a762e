// Package config loads calculator settings from files, the environment, and
// .env files, and resolves them into a numeric.Config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/numeric"
)

// Format is a configuration file format.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// Environment variables read by FromEnv.
const (
	EnvDecimalSeparator = "NUMERIC_DECIMAL_SEPARATOR"
	EnvRadixSeparator   = "NUMERIC_RADIX_SEPARATOR"
	EnvDecimalPlaces    = "NUMERIC_DECIMAL_PLACES"
	EnvMaxDecimalPlaces = "NUMERIC_MAX_DECIMAL_PLACES"
)

// Canonical setting names. Load and Resolve also accept the snake_case
// spellings.
const (
	KeyDecimalSeparator = "decimalSeparator"
	KeyRadixSeparator   = "radixSeparator"
	KeyDecimalPlaces    = "decimalPlaces"
	KeyMaxDecimalPlaces = "maxDecimalPlaces"
)

var envKeys = []struct {
	env, key string
	number   bool
}{
	{EnvDecimalSeparator, KeyDecimalSeparator, false},
	{EnvRadixSeparator, KeyRadixSeparator, false},
	{EnvDecimalPlaces, KeyDecimalPlaces, true},
	{EnvMaxDecimalPlaces, KeyMaxDecimalPlaces, true},
}

// DetectFormat determines the file format from its extension. Files that are
// not .yaml or .yml are TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes file content in the given format.
func Parse(content []byte, format Format) (map[string]any, error) {
	var data map[string]any
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
	return canonical(data), nil
}

// Load reads a configuration file. Environment variables in path are
// expanded. A table named "numeric" is used in place of the top level if the
// file has one, so the settings can share a file with other tools.
func Load(path string) (map[string]any, error) {
	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read config: %w", err)
	}
	data, err := Parse(content, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("couldn't parse %s: %w", path, err)
	}
	return data, nil
}

// FromEnv reads settings from environment variables through lookup, which is
// usually os.LookupEnv. Unset and empty variables are skipped.
func FromEnv(lookup func(string) (string, bool)) (map[string]any, error) {
	data := make(map[string]any)
	for _, e := range envKeys {
		v, ok := lookup(e.env)
		if !ok || v == "" {
			continue
		}
		if !e.number {
			data[e.key] = v
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, &numeric.ConfigError{Key: e.env, Reason: strconv.Quote(v) + " is not an integer"}
		}
		data[e.key] = n
	}
	return data, nil
}

// LoadDotenv loads variables from .env files into the process environment
// without overriding variables that are already set. With no paths, it loads
// ./.env. Missing files are not an error.
func LoadDotenv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load .env: %w", err)
		}
	}
	return nil
}

// Resolve merges layers of settings in order, later layers overriding
// earlier ones, and builds the resulting configuration over the defaults.
func Resolve(layers ...map[string]any) (numeric.Config, error) {
	merged := make(map[string]any)
	for _, l := range layers {
		for k, v := range canonical(l) {
			if v == nil || v == "" {
				continue
			}
			merged[k] = v
		}
	}
	return numeric.ConfigFromMap(merged)
}

// canonical returns data with snake_case setting names converted to their
// canonical spellings. If data has a "numeric" table, its contents are used
// instead.
func canonical(data map[string]any) map[string]any {
	if sub, ok := data["numeric"].(map[string]any); ok {
		data = sub
	}
	r := make(map[string]any, len(data))
	for k, v := range data {
		switch k {
		case "decimal_separator":
			k = KeyDecimalSeparator
		case "radix_separator":
			k = KeyRadixSeparator
		case "decimal_places":
			k = KeyDecimalPlaces
		case "max_decimal_places":
			k = KeyMaxDecimalPlaces
		}
		r[k] = v
	}
	return r
}
