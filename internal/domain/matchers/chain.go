package matchers

import (
	"fmt"

	m "github.com/mouse-blink/prefix-by-date/internal/model"
)

// Chain is an ordered set of matchers with unique names.
type Chain struct {
	matchers []Matcher
	names    map[string]struct{}
}

// NewChain builds a chain from matchers, failing on the first duplicate name.
func NewChain(matchers ...Matcher) (*Chain, error) {
	c := &Chain{names: make(map[string]struct{}, len(matchers))}

	for _, mt := range matchers {
		if err := c.Add(mt); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Add appends mt at the end of the chain.
func (c *Chain) Add(mt Matcher) error {
	if c.names == nil {
		c.names = make(map[string]struct{})
	}

	if _, ok := c.names[mt.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, mt.Name())
	}

	c.names[mt.Name()] = struct{}{}
	c.matchers = append(c.matchers, mt)

	return nil
}

// Matchers returns a copy of the matchers in evaluation order.
func (c *Chain) Matchers() []Matcher {
	out := make([]Matcher, len(c.matchers))
	copy(out, c.matchers)

	return out
}

// Len returns the number of matchers.
func (c *Chain) Len() int {
	return len(c.matchers)
}

// Alternative is a replacement proposed by a named matcher.
type Alternative struct {
	Matcher     string
	Replacement m.Replacement
}

// Alternatives runs every matcher on path, in order, and keeps the proposals
// whose new stem differs from excluded.
func Alternatives(matchers []Matcher, path m.Path, excluded string) []Alternative {
	var out []Alternative

	for _, mt := range matchers {
		rep, ok := mt.Check(path)
		if !ok || rep.NewFileStem == excluded {
			continue
		}

		out = append(out, Alternative{Matcher: mt.Name(), Replacement: rep})
	}

	return out
}
