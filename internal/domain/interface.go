// Package domain contains the renaming engine and the contracts it uses to
// talk to front-ends and observers.
package domain

import (
	"fmt"

	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"go.uber.org/zap"
)

// Communication is how the engine asks what to do with a replacement.
type Communication interface {
	// Confirm decides the fate of a proposed replacement.
	Confirm(replacement m.Replacement) m.Confirmation
	// Rescue is called with a NoMatch error when no matcher proposed anything.
	// Returning a replacement applies it; returning ErrAbort stops the batch;
	// any other error leaves the path unmatched.
	Rescue(err error) (m.Replacement, error)
}

// Reporter observes the progress of a batch. Implementations must not block.
type Reporter interface {
	Setup(count int)
	Processing(path m.Path)
	ProcessingOK(replacement m.Replacement)
	ProcessingErr(path m.Path, err error)
}

// Interface is everything the engine needs from its driver.
type Interface interface {
	Communication
	Reporter
}

// Reporters fans notifications out to several observers in registration order.
// A panicking observer is logged and skipped.
type Reporters struct {
	reporters []Reporter
	logger    *zap.Logger
}

var _ Reporter = (*Reporters)(nil)

// NewReporters creates an aggregate of reporters.
func NewReporters(logger *zap.Logger, reporters ...Reporter) *Reporters {
	if logger == nil {
		logger = zap.NewNop()
	}

	agg := &Reporters{logger: logger}
	for _, r := range reporters {
		agg.Add(r)
	}

	return agg
}

// Add registers a reporter after the existing ones. nil is ignored.
func (r *Reporters) Add(reporter Reporter) {
	if reporter == nil {
		return
	}

	r.reporters = append(r.reporters, reporter)
}

// Len returns the number of registered reporters.
func (r *Reporters) Len() int {
	return len(r.reporters)
}

// Setup forwards the batch size.
func (r *Reporters) Setup(count int) {
	r.each("setup", func(rep Reporter) { rep.Setup(count) })
}

// Processing forwards the start of a path.
func (r *Reporters) Processing(path m.Path) {
	r.each("processing", func(rep Reporter) { rep.Processing(path) })
}

// ProcessingOK forwards a successful rename.
func (r *Reporters) ProcessingOK(replacement m.Replacement) {
	r.each("processing_ok", func(rep Reporter) { rep.ProcessingOK(replacement) })
}

// ProcessingErr forwards a per-path failure.
func (r *Reporters) ProcessingErr(path m.Path, err error) {
	r.each("processing_err", func(rep Reporter) { rep.ProcessingErr(path, err) })
}

func (r *Reporters) each(event string, fn func(Reporter)) {
	for _, rep := range r.reporters {
		r.call(event, rep, fn)
	}
}

func (r *Reporters) call(event string, rep Reporter, fn func(Reporter)) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("reporter panicked",
				zap.String("event", event),
				zap.String("reporter", fmt.Sprintf("%T", rep)),
				zap.Any("panic", rec),
			)
		}
	}()

	fn(rep)
}

type composed struct {
	Communication
	*Reporters
}

// Compose binds a front-end to the observers of a batch. The front-end is
// also notified, after every other reporter.
func Compose(front Interface, reporters *Reporters) Interface {
	if reporters == nil {
		reporters = NewReporters(nil)
	}

	all := NewReporters(reporters.logger)
	all.reporters = append(all.reporters, reporters.reporters...)
	all.Add(front)

	return composed{Communication: front, Reporters: all}
}
