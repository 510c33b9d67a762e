package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Config controls parsing, formatting, and division precision of decimals.
// The zero value is the default configuration: "." as the decimal separator,
// "," as the radix separator, 2 decimal places, and at most 8 decimal places
// produced by division. A Config is immutable once built.
type Config struct {
	dsep, rsep rune
	places     int
	maxPlaces  int
	// set distinguishes a built config from the zero value, since 0 is a
	// valid number of decimal places.
	set bool
}

// Default configuration values.
const (
	DefaultDecimalSeparator = '.'
	DefaultRadixSeparator   = ','
	DefaultDecimalPlaces    = 2
	DefaultMaxDecimalPlaces = 8
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		dsep:      DefaultDecimalSeparator,
		rsep:      DefaultRadixSeparator,
		places:    DefaultDecimalPlaces,
		maxPlaces: DefaultMaxDecimalPlaces,
		set:       true,
	}
}

// std returns c, or the default configuration if c is the zero value.
func (c Config) std() Config {
	if !c.set {
		return DefaultConfig()
	}
	return c
}

// DecimalSeparatorRune returns the rune separating integer and fractional
// digits.
func (c Config) DecimalSeparatorRune() rune {
	return c.std().dsep
}

// RadixSeparatorRune returns the digit grouping rune that is ignored on input.
func (c Config) RadixSeparatorRune() rune {
	return c.std().rsep
}

// Places returns the number of fractional digits retained at minimum and
// produced by formatting.
func (c Config) Places() int {
	return c.std().places
}

// MaxPlaces returns the maximum number of fractional digits produced by
// division.
func (c Config) MaxPlaces() int {
	return c.std().maxPlaces
}

func (c Config) String() string {
	c = c.std()
	return fmt.Sprintf("decimal=%q radix=%q places=%d max=%d", c.dsep, c.rsep, c.places, c.maxPlaces)
}

// ConfigOption is an option used when building a Config.
type ConfigOption interface {
	configOption(*Config)
}

type (
	dsepopt   rune
	rsepopt   rune
	placesopt int
	maxopt    int
)

func (o dsepopt) configOption(c *Config)   { c.dsep = rune(o) }
func (o rsepopt) configOption(c *Config)   { c.rsep = rune(o) }
func (o placesopt) configOption(c *Config) { c.places = int(o) }
func (o maxopt) configOption(c *Config)    { c.maxPlaces = int(o) }

// DecimalSeparator sets the decimal separator.
func DecimalSeparator(r rune) ConfigOption {
	return dsepopt(r)
}

// RadixSeparator sets the grouping separator which is stripped from input.
func RadixSeparator(r rune) ConfigOption {
	return rsepopt(r)
}

// DecimalPlaces sets the number of decimal places used for formatting.
func DecimalPlaces(n int) ConfigOption {
	return placesopt(n)
}

// MaxDecimalPlaces sets the maximum number of fractional digits that division
// produces.
func MaxDecimalPlaces(n int) ConfigOption {
	return maxopt(n)
}

// NewConfig creates a configuration by applying options over the defaults.
// Later options override earlier ones.
func NewConfig(opts ...ConfigOption) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.configOption(&c)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// With returns a copy of c with opts applied.
func (c Config) With(opts ...ConfigOption) (Config, error) {
	c = c.std()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.configOption(&c)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	for _, s := range []struct {
		name string
		r    rune
	}{{"decimalSeparator", c.dsep}, {"radixSeparator", c.rsep}} {
		switch {
		case s.r == 0, s.r == utf8.RuneError:
			return &ConfigError{Key: s.name, Reason: "missing separator"}
		case '0' <= s.r && s.r <= '9':
			return &ConfigError{Key: s.name, Reason: "separator " + strconv.QuoteRune(s.r) + " is a digit"}
		case unicode.IsSpace(s.r):
			return &ConfigError{Key: s.name, Reason: "separator " + strconv.QuoteRune(s.r) + " is whitespace"}
		case strings.ContainsRune(Operators, s.r):
			return &ConfigError{Key: s.name, Reason: "separator " + strconv.QuoteRune(s.r) + " is an operator"}
		}
	}
	if c.dsep == c.rsep {
		return &ConfigError{Key: "radixSeparator", Reason: "same as decimal separator"}
	}
	if c.places < 0 {
		return &ConfigError{Key: "decimalPlaces", Reason: "negative"}
	}
	if c.maxPlaces < c.places {
		return &ConfigError{Key: "maxDecimalPlaces", Reason: "less than decimalPlaces"}
	}
	return nil
}

// configKeys maps recognized override keys to their canonical names.
var configKeys = map[string]string{
	"decimalSeparator":   "decimalSeparator",
	"decimal_separator":  "decimalSeparator",
	"radixSeparator":     "radixSeparator",
	"radix_separator":    "radixSeparator",
	"decimalPlaces":      "decimalPlaces",
	"decimal_places":     "decimalPlaces",
	"maxDecimalPlaces":   "maxDecimalPlaces",
	"max_decimal_places": "maxDecimalPlaces",
}

// ConfigFromMap merges overrides onto the default configuration. Recognized
// keys are decimalSeparator, radixSeparator, decimalPlaces, and
// maxDecimalPlaces, or their snake_case spellings. Other keys are ignored, as
// are nil values and empty strings.
func ConfigFromMap(overrides map[string]any) (Config, error) {
	var opts []ConfigOption
	for k, v := range overrides {
		key, ok := configKeys[k]
		if !ok || v == nil || v == "" {
			continue
		}
		switch key {
		case "decimalSeparator", "radixSeparator":
			r, err := mapRune(key, v)
			if err != nil {
				return Config{}, err
			}
			if key == "decimalSeparator" {
				opts = append(opts, DecimalSeparator(r))
			} else {
				opts = append(opts, RadixSeparator(r))
			}
		case "decimalPlaces", "maxDecimalPlaces":
			n, err := mapInt(key, v)
			if err != nil {
				return Config{}, err
			}
			if key == "decimalPlaces" {
				opts = append(opts, DecimalPlaces(n))
			} else {
				opts = append(opts, MaxDecimalPlaces(n))
			}
		}
	}
	return NewConfig(opts...)
}

func mapRune(key string, v any) (rune, error) {
	switch v := v.(type) {
	case string:
		r, sz := utf8.DecodeRuneInString(v)
		if sz != len(v) {
			return 0, &ConfigError{Key: key, Reason: "separator " + strconv.Quote(v) + " is not a single character"}
		}
		return r, nil
	case rune:
		return v, nil
	default:
		return 0, &ConfigError{Key: key, Reason: fmt.Sprintf("want a string, got %T", v)}
	}
}

func mapInt(key string, v any) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		if v > math.MaxInt32 || v < math.MinInt32 {
			return 0, &ConfigError{Key: key, Reason: "out of range"}
		}
		return int(v), nil
	case uint:
		if v > math.MaxInt32 {
			return 0, &ConfigError{Key: key, Reason: "out of range"}
		}
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		if v > math.MaxInt32 {
			return 0, &ConfigError{Key: key, Reason: "out of range"}
		}
		return int(v), nil
	case uint64:
		if v > math.MaxInt32 {
			return 0, &ConfigError{Key: key, Reason: "out of range"}
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, &ConfigError{Key: key, Reason: "not an integer"}
		}
		return int(v), nil
	case float32:
		return mapInt(key, float64(v))
	default:
		return 0, &ConfigError{Key: key, Reason: fmt.Sprintf("want an integer, got %T", v)}
	}
}
