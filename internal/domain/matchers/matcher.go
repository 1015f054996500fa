// Package matchers provides the strategies that turn a file path into a
// date-prefixed Replacement.
package matchers

import (
	"errors"
	"time"

	"github.com/dlclark/regexp2"
	m "github.com/mouse-blink/prefix-by-date/internal/model"
)

// Kind enumerates the matcher variants.
type Kind int

// Available matcher kinds.
const (
	KindPredeterminedDate Kind = iota
	KindPattern
	KindMetadataCreated
	KindMetadataModified
)

func (k Kind) String() string {
	switch k {
	case KindPredeterminedDate:
		return "predetermined_date"
	case KindPattern:
		return "pattern"
	case KindMetadataCreated:
		return "metadata_created"
	case KindMetadataModified:
		return "metadata_modified"
	default:
		return "unknown"
	}
}

// Names of the built-in matchers. Configured patterns may not use them.
const (
	NamePredeterminedDate = "predetermined_date today"
	NameMetadataCreated   = "metadata created"
	NameMetadataModified  = "metadata modified"
)

// Default strftime layouts.
const (
	DefaultDateFormat     = "%Y-%m-%d"
	DefaultDateTimeFormat = "%Y-%m-%d %Hh%Mm%S"
)

var (
	// ErrReservedName is returned when a pattern reuses a built-in matcher name.
	ErrReservedName = errors.New("matcher name is reserved")
	// ErrDuplicateName is returned when two matchers share a name.
	ErrDuplicateName = errors.New("duplicate matcher name")
	// ErrEmptyName is returned for a pattern without a name.
	ErrEmptyName = errors.New("matcher name is empty")
	// ErrInvalidPattern wraps regular expression compilation failures.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// IsReserved reports whether name belongs to a built-in matcher.
func IsReserved(name string) bool {
	switch name {
	case NamePredeterminedDate, NameMetadataCreated, NameMetadataModified:
		return true
	default:
		return false
	}
}

// Matcher proposes a Replacement for a path. The zero value is not usable,
// build one with NewPredeterminedDate, NewPattern or NewMetadata*.
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	kind      Kind
	name      string
	delimiter string
	format    string

	// KindPredeterminedDate
	at time.Time

	// KindPattern
	expr     string
	regex    *regexp2.Regexp
	location *time.Location
}

// Kind returns the variant of the matcher.
func (mt Matcher) Kind() Kind { return mt.kind }

// Name returns the unique name of the matcher.
func (mt Matcher) Name() string { return mt.name }

// Delimiter returns the string joining the matched text fragments.
func (mt Matcher) Delimiter() string { return mt.delimiter }

// DateFormat returns the strftime layout of the date prefix.
func (mt Matcher) DateFormat() string { return mt.format }

// Expr returns the source of the regular expression, empty for non pattern matchers.
func (mt Matcher) Expr() string { return mt.expr }

// Check returns the replacement proposed for path, if any.
func (mt Matcher) Check(path m.Path) (m.Replacement, bool) {
	rep, err := m.NewReplacement(path)
	if err != nil {
		return m.Replacement{}, false
	}

	var stem string

	var ok bool

	switch mt.kind {
	case KindPredeterminedDate:
		stem, ok = prefix(mt.format, mt.at, rep.FileStem), true
	case KindPattern:
		stem, ok = mt.matchPattern(rep.FileStem)
	case KindMetadataCreated:
		stem, ok = mt.matchMetadata(path, rep.FileStem, birthTime)
	case KindMetadataModified:
		stem, ok = mt.matchMetadata(path, rep.FileStem, modTime)
	}

	if !ok {
		return m.Replacement{}, false
	}

	return rep.WithNewFileStem(stem), true
}

// prefix builds "<date> <rest>", or only the date when rest is empty.
func prefix(format string, at time.Time, rest string) string {
	date := formatDate(format, at)
	if rest == "" {
		return date
	}

	return date + " " + rest
}
