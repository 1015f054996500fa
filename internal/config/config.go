// Package config loads the user configuration of prefix-by-date.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mouse-blink/prefix-by-date/internal/domain/matchers"
	"github.com/spf13/viper"
)

// FileName is the name of the configuration file inside the configuration directory.
const FileName = "config.toml"

// Config is the content of config.toml.
type Config struct {
	Time          bool           `mapstructure:"time"`
	LogFile       string         `mapstructure:"log_file"`
	DefaultFormat DefaultFormat  `mapstructure:"default_format"`
	Matchers      MatchersConfig `mapstructure:"matchers"`
}

// DefaultFormat holds the strftime layouts used when a pattern has none.
type DefaultFormat struct {
	Date     string `mapstructure:"date" validate:"required"`
	DateTime string `mapstructure:"date_time" validate:"required"`
}

// MatchersConfig lists the matchers to enable.
type MatchersConfig struct {
	Patterns          []PatternConfig         `mapstructure:"patterns" validate:"unique=Name,dive"`
	PredeterminedDate PredeterminedDateConfig `mapstructure:"predetermined_date"`
	Metadata          MetadataConfig          `mapstructure:"metadata"`
}

// PatternConfig defines one regular expression matcher.
type PatternConfig struct {
	Name      string `mapstructure:"name" validate:"required,not_reserved"`
	Regex     string `mapstructure:"regex"`
	Delimiter string `mapstructure:"delimiter"`
	Format    string `mapstructure:"format"`
}

// PredeterminedDateConfig toggles the "today" matcher.
type PredeterminedDateConfig struct {
	Today bool `mapstructure:"today"`
}

// MetadataConfig toggles the filesystem timestamp matchers.
type MetadataConfig struct {
	Created  bool `mapstructure:"created"`
	Modified bool `mapstructure:"modified"`
}

// Definition converts the pattern into its matcher definition.
func (p PatternConfig) Definition() matchers.Definition {
	return matchers.Definition{
		Name:      p.Name,
		Regex:     p.Regex,
		Delimiter: p.Delimiter,
		Format:    p.Format,
	}
}

// DateFormat returns the default layout, with or without time.
func (c Config) DateFormat() string {
	if c.Time {
		return c.DefaultFormat.DateTime
	}

	return c.DefaultFormat.Date
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DefaultFormat: DefaultFormat{
			Date:     matchers.DefaultDateFormat,
			DateTime: matchers.DefaultDateTimeFormat,
		},
	}
}

// Load reads config.toml from dir. A missing file yields the defaults.
func Load(dir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	file := filepath.Join(dir, FileName)

	_, err := os.Stat(file)

	switch {
	case err == nil:
		v.SetConfigFile(file)
		v.SetConfigType("toml")

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("failed to access config file %s: %w", file, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration %s: %w", file, err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("time", defaults.Time)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("default_format.date", defaults.DefaultFormat.Date)
	v.SetDefault("default_format.date_time", defaults.DefaultFormat.DateTime)
	v.SetDefault("matchers.predetermined_date.today", false)
	v.SetDefault("matchers.metadata.created", false)
	v.SetDefault("matchers.metadata.modified", false)
}

// Validate checks the configuration using struct tags.
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("not_reserved", validateNotReserved); err != nil {
		return fmt.Errorf("failed to register not_reserved validation: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	return nil
}

func validateNotReserved(fl validator.FieldLevel) bool {
	return !matchers.IsReserved(fl.Field().String())
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))

	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Namespace()))
		case "unique":
			messages = append(messages, fmt.Sprintf("%s contains duplicate pattern names", e.Namespace()))
		case "not_reserved":
			messages = append(messages, fmt.Sprintf("%s uses the reserved name %q", e.Namespace(), e.Value()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed on %s", e.Namespace(), e.Tag()))
		}
	}

	return &ValidationError{Messages: messages}
}

// ValidationError lists every invalid setting of a configuration.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
