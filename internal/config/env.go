package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v10"
)

// AppName names the configuration directory.
const AppName = "prefix-by-date"

// ErrNoConfigDir is returned when no variable allows locating the configuration.
var ErrNoConfigDir = errors.New("unable to locate the configuration directory")

// Environment holds the variables that influence configuration discovery.
type Environment struct {
	ConfigDir     string `env:"PREFIX_BY_DATE_CONFIG"`
	XDGConfigHome string `env:"XDG_CONFIG_HOME"`
	Home          string `env:"HOME"`
	LogLevel      string `env:"PREFIX_BY_DATE_LOG"`
}

// LoadEnvironment parses the process environment.
func LoadEnvironment() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	return e, nil
}

// DefaultDir returns the configuration directory implied by the environment:
// $PREFIX_BY_DATE_CONFIG, then $XDG_CONFIG_HOME/prefix-by-date, then
// $HOME/.config/prefix-by-date.
func (e Environment) DefaultDir() (string, error) {
	switch {
	case e.ConfigDir != "":
		return e.ConfigDir, nil
	case e.XDGConfigHome != "":
		return filepath.Join(e.XDGConfigHome, AppName), nil
	case e.Home != "":
		return filepath.Join(e.Home, ".config", AppName), nil
	default:
		return "", ErrNoConfigDir
	}
}

// ResolveDir returns override when set, fallback otherwise.
func ResolveDir(override, fallback string) string {
	if override != "" {
		return override
	}

	return fallback
}
