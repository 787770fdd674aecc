package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "seedgen.yaml"

// EnvPrefix prefixes environment overrides, e.g. SEEDGEN_REFERENCES_EXPENSES.
const EnvPrefix = "SEEDGEN"

// Config represents the top-level seedgen.yaml configuration.
type Config struct {
	References ReferencesConfig `yaml:"references" mapstructure:"references"`
	Ranges     RangesConfig     `yaml:"ranges" mapstructure:"ranges"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// ReferencesConfig locates the account reference files.
type ReferencesConfig struct {
	Expenses string `yaml:"expenses" mapstructure:"expenses"`
	Revenues string `yaml:"revenues" mapstructure:"revenues"`
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int64 `yaml:"min" mapstructure:"min"`
	Max int64 `yaml:"max" mapstructure:"max"`
}

// FractionRange is a half-open range [Min, Max) of fractions.
type FractionRange struct {
	Min float64 `yaml:"min" mapstructure:"min"`
	Max float64 `yaml:"max" mapstructure:"max"`
}

// RangesConfig bounds the synthesized values.
type RangesConfig struct {
	ExpenseTotal IntRange      `yaml:"expense_total" mapstructure:"expense_total"`
	Finalistica  FractionRange `yaml:"finalistica" mapstructure:"finalistica"`
	RevenueValue IntRange      `yaml:"revenue_value" mapstructure:"revenue_value"`
}

// OutputConfig controls the emitted script.
type OutputConfig struct {
	Timestamp string `yaml:"timestamp" mapstructure:"timestamp"` // SQL expression for updated_at
	Seed      int64  `yaml:"seed" mapstructure:"seed"`           // 0 = time-based
}

// LogConfig controls stderr logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"expenses":   "references.expenses",
	"revenues":   "references.revenues",
	"seed":       "output.seed",
	"timestamp":  "output.timestamp",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Load resolves configuration from defaults, the config file, SEEDGEN_*
// environment variables and any changed flags in fs, in increasing priority.
// An empty path looks for seedgen.yaml in the working directory and tolerates
// its absence; an explicit path must exist.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		v.SetConfigFile(FileName)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("references.expenses", cfg.References.Expenses)
	v.SetDefault("references.revenues", cfg.References.Revenues)
	v.SetDefault("ranges.expense_total.min", cfg.Ranges.ExpenseTotal.Min)
	v.SetDefault("ranges.expense_total.max", cfg.Ranges.ExpenseTotal.Max)
	v.SetDefault("ranges.finalistica.min", cfg.Ranges.Finalistica.Min)
	v.SetDefault("ranges.finalistica.max", cfg.Ranges.Finalistica.Max)
	v.SetDefault("ranges.revenue_value.min", cfg.Ranges.RevenueValue.Min)
	v.SetDefault("ranges.revenue_value.max", cfg.Ranges.RevenueValue.Max)
	v.SetDefault("output.timestamp", cfg.Output.Timestamp)
	v.SetDefault("output.seed", cfg.Output.Seed)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
}

// Validate rejects configurations that cannot produce a valid script.
func Validate(cfg *Config) error {
	if cfg.References.Expenses == "" || cfg.References.Revenues == "" {
		return errors.New("both reference paths are required")
	}
	if err := validateIntRange("ranges.expense_total", cfg.Ranges.ExpenseTotal); err != nil {
		return err
	}
	if err := validateIntRange("ranges.revenue_value", cfg.Ranges.RevenueValue); err != nil {
		return err
	}
	f := cfg.Ranges.Finalistica
	if f.Min < 0 || f.Max > 1 || f.Min > f.Max {
		return fmt.Errorf("ranges.finalistica must satisfy 0 <= min <= max <= 1, got [%g, %g)", f.Min, f.Max)
	}
	if strings.TrimSpace(cfg.Output.Timestamp) == "" {
		return errors.New("output.timestamp must not be empty")
	}
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", cfg.Log.Format)
	}
	return nil
}

func validateIntRange(key string, r IntRange) error {
	if r.Min < 0 || r.Min > r.Max {
		return fmt.Errorf("%s must satisfy 0 <= min <= max, got [%d, %d]", key, r.Min, r.Max)
	}
	return nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the stock reference paths and value ranges.
func Default() *Config {
	return &Config{
		References: ReferencesConfig{
			Expenses: "data/all-accounts.json",
			Revenues: "data/all-revenues.json",
		},
		Ranges: RangesConfig{
			ExpenseTotal: IntRange{Min: 5000, Max: 50000},
			Finalistica:  FractionRange{Min: 0.1, Max: 0.9},
			RevenueValue: IntRange{Min: 10000, Max: 100000},
		},
		Output: OutputConfig{
			Timestamp: "NOW()",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
