package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/mouse-blink/prefix-by-date/internal/config"
	"github.com/mouse-blink/prefix-by-date/internal/domain/matchers"
	"go.uber.org/zap"
)

// BuildMatchers turns the configuration into the ordered matcher list of a
// batch: today's date, the configured patterns in file order, then the
// creation and modification time. Patterns whose regex is missing or does not
// compile are skipped with a warning. Reserved or duplicate names are errors.
func BuildMatchers(cfg config.Config, now time.Time, logger *zap.Logger, opts ...matchers.PatternOption) ([]matchers.Matcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	format := cfg.DateFormat()

	var chain matchers.Chain

	if cfg.Matchers.PredeterminedDate.Today {
		if err := chain.Add(matchers.NewPredeterminedDate(format, now)); err != nil {
			return nil, err
		}
	}

	for _, pattern := range cfg.Matchers.Patterns {
		mt, ok, err := matchers.Deserialize(pattern.Definition(), format, opts...)

		switch {
		case errors.Is(err, matchers.ErrInvalidPattern):
			logger.Warn("skipping pattern with invalid regex",
				zap.String("pattern", pattern.Name),
				zap.Error(err),
			)

			continue
		case err != nil:
			return nil, fmt.Errorf("pattern %q: %w", pattern.Name, err)
		case !ok:
			logger.Warn("skipping pattern without regex", zap.String("pattern", pattern.Name))

			continue
		}

		if err := chain.Add(mt); err != nil {
			return nil, err
		}
	}

	if cfg.Matchers.Metadata.Created {
		if err := chain.Add(matchers.NewMetadataCreated(format)); err != nil {
			return nil, err
		}
	}

	if cfg.Matchers.Metadata.Modified {
		if err := chain.Add(matchers.NewMetadataModified(format)); err != nil {
			return nil, err
		}
	}

	logger.Debug("matchers ready", zap.Int("count", chain.Len()))

	return chain.Matchers(), nil
}
