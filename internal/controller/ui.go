// Package controller provides the front-ends that drive a renaming batch.
package controller

import (
	"fmt"

	"github.com/mouse-blink/prefix-by-date/internal/domain"
	"github.com/mouse-blink/prefix-by-date/internal/domain/matchers"
)

// Kind selects a front-end.
type Kind string

// Available front-ends.
const (
	KindOff  Kind = "off"
	KindText Kind = "text"
	KindTUI  Kind = "tui"
)

// Kinds lists the accepted values of --interactive.
var Kinds = []Kind{KindOff, KindText, KindTUI}

// ParseKind converts a flag value into a Kind.
func ParseKind(value string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == value {
			return k, nil
		}
	}

	return "", fmt.Errorf("unknown interface %q, expected one of %v", value, Kinds)
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	matchers []matchers.Matcher
}

// WithMatchers gives the UI the matchers of the batch so it can offer
// alternatives. The UI never mutates them.
func WithMatchers(list []matchers.Matcher) StartOption {
	return func(c *StartConfig) {
		c.matchers = list
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI answers the engine and displays the progress of a batch.
type UI interface {
	domain.Interface

	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
}
