package matchers

import "time"

// NewPredeterminedDate returns a matcher that always prefixes with at.
// at is fixed at construction so every file of a batch shares it.
func NewPredeterminedDate(format string, at time.Time) Matcher {
	return Matcher{
		kind:   KindPredeterminedDate,
		name:   NamePredeterminedDate,
		format: format,
		at:     at,
	}
}
