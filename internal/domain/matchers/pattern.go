package matchers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

const patternMatchTimeout = time.Second

// PatternOption customizes a pattern matcher.
type PatternOption func(*Matcher)

// WithDelimiter sets the string joining the start, end and rest fragments.
func WithDelimiter(delimiter string) PatternOption {
	return func(mt *Matcher) {
		mt.delimiter = delimiter
	}
}

// WithFormat sets the strftime layout of the date prefix.
func WithFormat(format string) PatternOption {
	return func(mt *Matcher) {
		if format != "" {
			mt.format = format
		}
	}
}

// WithLocation sets the time zone in which matched dates are interpreted.
func WithLocation(loc *time.Location) PatternOption {
	return func(mt *Matcher) {
		if loc != nil {
			mt.location = loc
		}
	}
}

// NewPattern compiles expr in whitespace-insensitive mode. The expression may
// use the named groups year, month, day, hour, min, sec, rest, start and end.
func NewPattern(name, expr string, opts ...PatternOption) (Matcher, error) {
	switch {
	case name == "":
		return Matcher{}, ErrEmptyName
	case IsReserved(name):
		return Matcher{}, fmt.Errorf("%w: %q", ErrReservedName, name)
	}

	regex, err := regexp2.Compile(expr, regexp2.IgnorePatternWhitespace)
	if err != nil {
		return Matcher{}, fmt.Errorf("%w %q: %w", ErrInvalidPattern, name, err)
	}

	regex.MatchTimeout = patternMatchTimeout

	mt := Matcher{
		kind:     KindPattern,
		name:     name,
		format:   DefaultDateFormat,
		expr:     expr,
		regex:    regex,
		location: time.Local,
	}

	for _, opt := range opts {
		opt(&mt)
	}

	return mt, nil
}

// Definition is the configured shape of a pattern matcher.
type Definition struct {
	Name      string
	Regex     string
	Delimiter string
	Format    string
}

// Deserialize builds a pattern from its definition. A definition without a
// regex yields ok == false and no error.
func Deserialize(def Definition, defaultFormat string, opts ...PatternOption) (Matcher, bool, error) {
	if strings.TrimSpace(def.Regex) == "" {
		return Matcher{}, false, nil
	}

	options := append([]PatternOption{
		WithFormat(defaultFormat),
		WithDelimiter(def.Delimiter),
		WithFormat(def.Format),
	}, opts...)

	mt, err := NewPattern(def.Name, def.Regex, options...)
	if err != nil {
		return Matcher{}, false, err
	}

	return mt, true, nil
}

func (mt Matcher) matchPattern(stem string) (string, bool) {
	match, err := mt.regex.FindStringMatch(stem)
	if err != nil || match == nil {
		return "", false
	}

	group := func(name string) (string, bool) {
		g := match.GroupByName(name)
		if g == nil || len(g.Captures) == 0 {
			return "", false
		}

		return g.String(), true
	}

	number := func(name string, fallback int, required bool) (int, bool) {
		value, ok := group(name)
		if !ok {
			return fallback, !required
		}

		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, false
		}

		return n, true
	}

	fields := [6]int{}

	for i, field := range []struct {
		name     string
		required bool
	}{
		{"year", true},
		{"month", true},
		{"day", true},
		{"hour", false},
		{"min", false},
		{"sec", false},
	} {
		n, ok := number(field.name, 0, field.required)
		if !ok {
			return "", false
		}

		fields[i] = n
	}

	at, ok := resolveLocal(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], mt.location)
	if !ok {
		return "", false
	}

	var parts []string

	if rest, ok := group("rest"); ok {
		parts = append(parts, rest)
	} else if start, ok := group("start"); ok {
		parts = append(parts, start)

		if end, ok := group("end"); ok {
			parts = append(parts, end)
		}
	}

	return prefix(mt.format, at, strings.Join(parts, mt.delimiter)), true
}
