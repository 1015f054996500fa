package domain

import (
	"errors"

	"github.com/mouse-blink/prefix-by-date/internal/adapter"
	"github.com/mouse-blink/prefix-by-date/internal/domain/matchers"
	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"go.uber.org/zap"
)

// Processing renames a batch of paths one after the other.
type Processing struct {
	iface    Interface
	matchers []matchers.Matcher
	paths    []m.Path
	fs       adapter.RenameFS
	logger   *zap.Logger
}

// Option customizes a Processing.
type Option func(*Processing)

// WithFS replaces the filesystem used to check and rename paths.
func WithFS(fs adapter.RenameFS) Option {
	return func(p *Processing) {
		p.fs = fs
	}
}

// WithLogger sets the logger of the engine.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Processing) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProcessing creates an engine for paths. Matchers are tried in the given order.
func NewProcessing(iface Interface, chain []matchers.Matcher, paths []m.Path, opts ...Option) *Processing {
	p := &Processing{
		iface:    iface,
		matchers: chain,
		paths:    paths,
		fs:       adapter.NewLocalRenameFS(),
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// processingMatcher carries the per-batch choices made about a matcher.
type processingMatcher struct {
	matcher   matchers.Matcher
	confirmed bool
	ignored   bool
}

// Run processes every path. Per-path failures are reported and do not stop
// the batch. The only error returned is ErrAbort, in which case the aborted
// path and the ones after it are not reported.
func (p *Processing) Run() error {
	state := make([]*processingMatcher, 0, len(p.matchers))
	for _, mt := range p.matchers {
		state = append(state, &processingMatcher{matcher: mt})
	}

	p.iface.Setup(len(p.paths))

	for i, path := range p.paths {
		p.iface.Processing(path)

		replacement, err := p.process(state, path)

		switch {
		case errors.Is(err, ErrAbort):
			p.logger.Warn("batch aborted",
				zap.String("path", string(path)),
				zap.Int("processed", i),
				zap.Int("remaining", len(p.paths)-i),
			)

			return err
		case err != nil:
			p.iface.ProcessingErr(path, err)
		default:
			p.iface.ProcessingOK(replacement)
		}
	}

	return nil
}

func (p *Processing) process(state []*processingMatcher, path m.Path) (m.Replacement, error) {
	if !p.fs.Exists(path) {
		return m.Replacement{}, newError(ErrorNotFound, path, nil)
	}

	// Matchers cannot tell a path they cannot split from one they do not match.
	if _, err := m.NewReplacement(path); err != nil {
		return m.Replacement{}, newError(ErrorPath, path, err)
	}

	for _, pm := range state {
		if pm.ignored {
			continue
		}

		replacement, ok := pm.matcher.Check(path)
		if !ok {
			continue
		}

		p.logger.Debug("matched",
			zap.String("path", string(path)),
			zap.String("matcher", pm.matcher.Name()),
			zap.String("into", replacement.NewFileName()),
		)

		if pm.confirmed {
			return p.execute(path, replacement)
		}

		return p.confirm(pm, path, replacement)
	}

	return p.rescue(path)
}

func (p *Processing) confirm(pm *processingMatcher, path m.Path, replacement m.Replacement) (m.Replacement, error) {
	confirmation := p.iface.Confirm(replacement)

	p.logger.Debug("confirmation",
		zap.String("path", string(path)),
		zap.Stringer("answer", confirmation),
	)

	switch confirmation.Kind {
	case m.ConfirmAccept:
		return p.execute(path, replacement)
	case m.ConfirmAlways:
		pm.confirmed = true
		return p.execute(path, replacement)
	case m.ConfirmReplace:
		return p.execute(path, confirmation.Replacement)
	case m.ConfirmSkip:
		return m.Replacement{}, newError(ErrorSkip, path, nil)
	case m.ConfirmIgnore:
		pm.ignored = true
		return m.Replacement{}, newError(ErrorIgnore, path, nil)
	case m.ConfirmAbort:
		return m.Replacement{}, newError(ErrorAbort, path, nil)
	default:
		return m.Replacement{}, newError(ErrorRefuse, path, nil)
	}
}

func (p *Processing) rescue(path m.Path) (m.Replacement, error) {
	noMatch := newError(ErrorNoMatch, path, nil)

	replacement, err := p.iface.Rescue(noMatch)

	switch {
	case err == nil:
		return p.execute(path, replacement)
	case errors.Is(err, ErrAbort):
		return m.Replacement{}, newError(ErrorAbort, path, nil)
	default:
		return m.Replacement{}, noMatch
	}
}

func (p *Processing) execute(path m.Path, replacement m.Replacement) (m.Replacement, error) {
	done, err := replacement.Execute(p.fs)
	if err == nil {
		return done, nil
	}

	if errors.Is(err, ErrAbort) {
		return m.Replacement{}, err
	}

	return m.Replacement{}, newError(ErrorIO, path, err)
}
