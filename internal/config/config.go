// Package config loads vecbench settings from flags, environment variables
// (VECBENCH_*) and an optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-vecbench/bench"
)

// EnvPrefix prefixes every environment variable, e.g. VECBENCH_SIZE.
const EnvPrefix = "VECBENCH"

// Config is the validated runtime configuration.
type Config struct {
	Size        int      `mapstructure:"size" validate:"gt=0"`
	Ops         []string `mapstructure:"ops" validate:"min=1,dive,oneof=add multiply mul"`
	Repeat      int      `mapstructure:"repeat" validate:"gte=1"`
	Workers     int      `mapstructure:"workers" validate:"gte=0"`
	MemoryLimit uint64   `mapstructure:"memory_limit"`
	Verify      bool     `mapstructure:"verify"`
	Format      string   `mapstructure:"format" validate:"oneof=text json"`
	MetricsFile string   `mapstructure:"metrics_file"`
	LogLevel    string   `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat   string   `mapstructure:"log_format" validate:"oneof=text json"`
	Color       string   `mapstructure:"color" validate:"oneof=auto always never"`
}

// flag name -> viper key
var flagKeys = map[string]string{
	"size":         "size",
	"op":           "ops",
	"repeat":       "repeat",
	"workers":      "workers",
	"memory-limit": "memory_limit",
	"verify":       "verify",
	"format":       "format",
	"metrics-file": "metrics_file",
	"log-level":    "log_level",
	"log-format":   "log_format",
	"color":        "color",
}

// RegisterFlags adds the benchmark flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("size", bench.DefaultSize, "number of float32 elements per array")
	fs.StringSlice("op", []string{"add", "multiply"}, "kernels to run, in order (add, multiply)")
	fs.Int("repeat", 1, "trials per kernel")
	fs.Int("workers", 0, "goroutines per kernel pass (0 = GOMAXPROCS, 1 = serial)")
	fs.Uint64("memory-limit", 0, "max bytes one trial may allocate (0 = GOMEMLIMIT or none)")
	fs.Bool("verify", false, "check outputs against a float64 reference")
	fs.String("format", "text", "output format: text or json")
	fs.String("metrics-file", "", "write Prometheus metrics to this file")
	fs.String("log-level", "warn", "log level: debug, info, warn, error")
	fs.String("log-format", "text", "log format: text or json")
	fs.String("color", "auto", "color output: auto, always, never")
}

// New returns a viper instance with defaults, environment binding and the
// flags in fs bound to their keys.
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("size", bench.DefaultSize)
	v.SetDefault("ops", []string{"add", "multiply"})
	v.SetDefault("repeat", 1)
	v.SetDefault("workers", 0)
	v.SetDefault("memory_limit", 0)
	v.SetDefault("verify", false)
	v.SetDefault("format", "text")
	v.SetDefault("metrics_file", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("color", "auto")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}
	return v, nil
}

// Load reads configFile (if set), decodes v and validates the result.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	for i, op := range cfg.Ops {
		cfg.Ops[i] = strings.ToLower(strings.TrimSpace(op))
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg and returns one error naming every invalid field.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s fails %q (got %v)", fe.Namespace(), fe.ActualTag(), fe.Value()))
	}
	return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
}
