package matchers

import (
	"time"

	"github.com/djherbis/times"
	m "github.com/mouse-blink/prefix-by-date/internal/model"
)

type timestampFunc func(path string) (time.Time, bool)

// NewMetadataCreated returns a matcher that prefixes with the birth time of the file.
func NewMetadataCreated(format string) Matcher {
	return Matcher{
		kind:   KindMetadataCreated,
		name:   NameMetadataCreated,
		format: format,
	}
}

// NewMetadataModified returns a matcher that prefixes with the modification time of the file.
func NewMetadataModified(format string) Matcher {
	return Matcher{
		kind:   KindMetadataModified,
		name:   NameMetadataModified,
		format: format,
	}
}

func (mt Matcher) matchMetadata(path m.Path, stem string, timestamp timestampFunc) (string, bool) {
	at, ok := timestamp(string(path))
	if !ok {
		return "", false
	}

	return prefix(mt.format, at.Local(), stem), true
}

func birthTime(path string) (time.Time, bool) {
	ts, err := times.Stat(path)
	if err != nil || !ts.HasBirthTime() {
		return time.Time{}, false
	}

	return ts.BirthTime(), true
}

func modTime(path string) (time.Time, bool) {
	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, false
	}

	return ts.ModTime(), true
}
