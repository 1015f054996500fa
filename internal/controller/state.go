package controller

import (
	"github.com/mouse-blink/prefix-by-date/internal/domain/matchers"
	m "github.com/mouse-blink/prefix-by-date/internal/model"
)

// Current is the step of the path being processed.
type Current int

// Steps of a path, in the order they normally happen.
const (
	CurrentNone Current = iota
	CurrentPath
	CurrentConfirm
	CurrentRescue
	CurrentResolving
	CurrentResolved
)

func (c Current) String() string {
	switch c {
	case CurrentPath:
		return "path"
	case CurrentConfirm:
		return "confirm"
	case CurrentRescue:
		return "rescue"
	case CurrentResolving:
		return "resolving"
	case CurrentResolved:
		return "resolved"
	default:
		return "none"
	}
}

// Change is a replacement awaiting an answer.
type Change struct {
	Replacement  m.Replacement
	Alternatives []matchers.Alternative
	// Customize holds the stem typed by the user, nil until they customize.
	Customize *string
}

// FurtherCustomizable reports whether offering Customize still makes sense.
func (c Change) FurtherCustomizable() bool {
	return c.Customize == nil || len(c.Alternatives) > 0
}

// Result is the outcome of a finished path.
type Result struct {
	Path    m.Path
	NewPath m.Path
	OK      bool
	Err     string
}

// State tracks a batch from the front-end side. It is not safe for
// concurrent use: each front-end mutates it from a single goroutine.
type State struct {
	total     int
	index     int
	current   Current
	path      m.Path
	change    Change
	resolving m.Confirmation
	results   []Result
}

// NewState creates an empty state.
func NewState() *State {
	return &State{}
}

// Setup resets the state for a batch of count paths.
func (s *State) Setup(count int) {
	*s = State{total: count}
}

// Total returns the announced batch size.
func (s *State) Total() int { return s.total }

// Index returns the 1-based position of the current path.
func (s *State) Index() int { return s.index }

// Current returns the current step.
func (s *State) Current() Current { return s.current }

// Path returns the path being processed.
func (s *State) Path() m.Path { return s.path }

// Results returns the finished paths in order.
func (s *State) Results() []Result { return s.results }

// Change returns the pending change, if a question is open.
func (s *State) Change() (Change, bool) {
	switch s.current {
	case CurrentConfirm, CurrentRescue:
		return s.change, true
	default:
		return Change{}, false
	}
}

// Actions lists what the user can do now.
func (s *State) Actions() []Action {
	return DetermineFor(s.current, s.change)
}

// StartPath moves to the next path.
func (s *State) StartPath(path m.Path) bool {
	if s.current != CurrentNone && s.current != CurrentResolved {
		return false
	}

	s.index++
	s.current = CurrentPath
	s.path = path
	s.change = Change{}

	return true
}

// AskConfirm opens a confirmation question for rep. Alternatives are computed
// from list and exclude rep itself.
func (s *State) AskConfirm(rep m.Replacement, list []matchers.Matcher) bool {
	if s.current != CurrentPath {
		return false
	}

	s.current = CurrentConfirm
	s.change = Change{
		Replacement:  rep,
		Alternatives: matchers.Alternatives(list, rep.Path(), rep.NewFileStem),
	}

	return true
}

// AskRescue opens a rescue question for a path nothing matched.
func (s *State) AskRescue(rep m.Replacement) bool {
	if s.current != CurrentPath {
		return false
	}

	s.current = CurrentRescue
	s.change = Change{Replacement: rep}

	return true
}

// Customize records the stem typed by the user. The pending replacement
// follows it. Stems that would leave the directory are refused.
func (s *State) Customize(stem string) bool {
	if s.current != CurrentConfirm && s.current != CurrentRescue {
		return false
	}

	if m.ValidateStem(stem) != nil {
		return false
	}

	s.change.Customize = &stem
	s.change.Replacement = s.change.Replacement.WithNewFileStem(stem)

	return true
}

// Resolve answers the open question with a.
func (s *State) Resolve(a Action) (m.Confirmation, bool) {
	if s.current != CurrentConfirm && s.current != CurrentRescue {
		return m.Confirmation{}, false
	}

	if !containsKind(s.Actions(), a.Kind) {
		return m.Confirmation{}, false
	}

	c, ok := a.Confirmation()
	if !ok {
		return m.Confirmation{}, false
	}

	s.current = CurrentResolving
	s.resolving = c

	return c, true
}

// Succeed closes the current path as renamed.
func (s *State) Succeed(rep m.Replacement) bool {
	if !s.inFlight() {
		return false
	}

	s.results = append(s.results, Result{Path: rep.Path(), NewPath: rep.NewPath(), OK: true})
	s.current = CurrentResolved

	return true
}

// Fail closes the current path as left untouched.
func (s *State) Fail(path m.Path, err error) bool {
	if !s.inFlight() {
		return false
	}

	msg := ""
	if err != nil {
		msg = err.Error()
	}

	s.results = append(s.results, Result{Path: path, Err: msg})
	s.current = CurrentResolved

	return true
}

// Count returns the number of renamed and untouched paths.
func (s *State) Count() (renamed, untouched int) {
	for _, r := range s.results {
		if r.OK {
			renamed++
		} else {
			untouched++
		}
	}

	return renamed, untouched
}

// Paths auto-accepted by Always never go through Confirm, so a path can
// finish from any open step.
func (s *State) inFlight() bool {
	return s.current != CurrentNone && s.current != CurrentResolved
}
