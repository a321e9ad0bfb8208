// Package config loads shapecalc settings with koanf.
//
// Precedence (highest to lowest): flags > SHAPECALC_* env vars > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment override, e.g. SHAPECALC_LOG_LEVEL.
const EnvPrefix = "SHAPECALC_"

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputPlain = "plain"
)

// Defaults.
const (
	DefaultOutput    = OutputTable
	DefaultPrecision = 4
	DefaultLogMode   = "dev"
	DefaultLogLevel  = "warn"
	MaxPrecision     = 15
)

// defaultFiles are probed in the working directory when no --config is given.
var defaultFiles = []string{"shapecalc.yaml", "shapecalc.yml"}

// ErrInvalidConfig marks a configuration that failed Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all CLI settings.
type Config struct {
	Output    string    `koanf:"output"`
	Precision int       `koanf:"precision"`
	Log       LogConfig `koanf:"log"`

	// File is the config file that was read, empty when none.
	File string `koanf:"-"`
}

// LogConfig selects the zap logger flavor.
type LogConfig struct {
	Mode  string `koanf:"mode"`
	Level string `koanf:"level"`
}

// Load layers defaults, the config file, environment and explicitly
// changed flags, then validates the result. flags may be nil.
// Flag names map to keys by replacing '-' with '.', so --log-level sets log.level.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":    DefaultOutput,
		"precision": DefaultPrecision,
		"log.mode":  DefaultLogMode,
		"log.level": DefaultLogLevel,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	// 2. file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", used, err)
		}
	}

	// 3. env: SHAPECALC_LOG_LEVEL -> log.level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	// 4. flags, only the ones set on the command line
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "."), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.File = used
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks output format and precision bounds.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputJSON, OutputPlain:
	default:
		return fmt.Errorf("output %q (want %s|%s|%s): %w",
			c.Output, OutputTable, OutputJSON, OutputPlain, ErrInvalidConfig)
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision %d (want 0..%d): %w", c.Precision, MaxPrecision, ErrInvalidConfig)
	}

	return nil
}

// findConfigFile returns explicit when set, otherwise the first default file
// present in the working directory, otherwise "".
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range defaultFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}
