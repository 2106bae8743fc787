// Package config provides Viper-based configuration loading for gearscore.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cory-johannsen/gearscore/internal/game/scaling"
)

// EnvPrefix prefixes every environment variable override, e.g.
// GEARSCORE_SCORING_LEVEL.
const EnvPrefix = "GEARSCORE"

// DataConfig locates the equipment data.
type DataConfig struct {
	// Path is the extracted equips JSON file or a full item database.
	Path string `mapstructure:"path" validate:"required"`
	// Locale is the language used for item names.
	Locale string `mapstructure:"locale" validate:"required"`
}

// ScoringConfig holds the ranking parameters.
type ScoringConfig struct {
	// Level is the level scalable items are evaluated at; 0 evaluates every
	// item at its own level.
	Level int `mapstructure:"level"`
	// Types is the equipType allow-list, matched case-insensitively.
	Types []string `mapstructure:"types"`
	// Unobtainable includes items whose default name starts with "-".
	Unobtainable bool `mapstructure:"unobtainable"`
	// Weights are [name:]number weight specifiers applied in order.
	Weights []string `mapstructure:"weights"`
	// Profile is an optional YAML weight profile applied before Weights.
	Profile string `mapstructure:"profile"`
	// Top limits the number of ranked items shown; 0 shows all.
	Top int `mapstructure:"top" validate:"min=0"`
	// Workers bounds concurrent item scoring.
	Workers int `mapstructure:"workers" validate:"min=1,max=64"`
}

// OutputConfig controls how rankings are rendered.
type OutputConfig struct {
	// Format is one of "table", "json", "yaml".
	Format string `mapstructure:"format"`
	// Color enables ANSI colors in table output.
	Color bool `mapstructure:"color"`
	// Breakdown adds each item's weighted contributions to table output.
	Breakdown bool `mapstructure:"breakdown"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Scoring ScoringConfig `mapstructure:"scoring"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
		for _, fe := range verrs {
			errs = append(errs, fmt.Sprintf("%s failed %q (got %v)", fieldPath(fe), fe.Tag(), fe.Value()))
		}
	}
	if err := validateScoring(c.Scoring); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateOutput(c.Output); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// fieldPath renders a validator namespace such as "Config.Scoring.Level" as
// the lower-case config key "scoring.level".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

func validateScoring(s ScoringConfig) error {
	var errs []string
	if s.Level != 0 {
		if err := scaling.ValidateLevel(s.Level); err != nil {
			errs = append(errs, fmt.Sprintf("scoring.level: %v", err))
		}
	}
	for _, t := range s.Types {
		if strings.TrimSpace(t) == "" {
			errs = append(errs, "scoring.types must not contain empty entries")
			break
		}
	}
	for _, w := range s.Weights {
		if strings.TrimSpace(w) == "" {
			errs = append(errs, "scoring.weights must not contain empty entries")
			break
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	validFormats := map[string]bool{"table": true, "json": true, "yaml": true}
	if !validFormats[o.Format] {
		return fmt.Errorf("output.format must be one of [table, json, yaml], got %q", o.Format)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path (optional), applies
// environment variable overrides and bound flags, and validates the result.
//
// Precondition: path is empty or a readable YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := New()
	if flags != nil {
		if err := BindFlags(v, flags); err != nil {
			return Config{}, err
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// New returns a Viper instance with defaults and environment overrides set.
func New() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with GEARSCORE_ prefix
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"data":         "data.path",
	"locale":       "data.locale",
	"level":        "scoring.level",
	"type":         "scoring.types",
	"unobtainable": "scoring.unobtainable",
	"weight":       "scoring.weights",
	"profile":      "scoring.profile",
	"top":          "scoring.top",
	"workers":      "scoring.workers",
	"format":       "output.format",
	"color":        "output.color",
	"breakdown":    "output.breakdown",
	"log-level":    "logging.level",
	"log-format":   "logging.format",
}

// BindFlags binds every known flag present in flags to its configuration key.
// Flags take precedence over the config file and environment only when set.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %q: %w", name, err)
		}
	}
	return nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.path", "data/equips.json")
	v.SetDefault("data.locale", "en_US")

	v.SetDefault("scoring.level", 85)
	v.SetDefault("scoring.types", []string{"head", "arm", "torso", "feet"})
	v.SetDefault("scoring.unobtainable", false)
	v.SetDefault("scoring.weights", []string{})
	v.SetDefault("scoring.profile", "")
	v.SetDefault("scoring.top", 0)
	v.SetDefault("scoring.workers", 4)

	v.SetDefault("output.format", "table")
	v.SetDefault("output.color", false)
	v.SetDefault("output.breakdown", false)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}
