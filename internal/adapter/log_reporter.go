package adapter

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"go.uber.org/zap"
)

// declined is implemented by errors that stand for a user choice.
type declined interface {
	Declined() bool
}

// IsDeclined reports whether err was chosen by the user rather than suffered.
// It mirrors domain.IsDeclined through the declined interface because domain
// imports adapter.
func IsDeclined(err error) bool {
	var d declined
	return errors.As(err, &d) && d.Declined()
}

// LogReporter writes the progress of a batch to a zap logger.
type LogReporter struct {
	logger *zap.Logger
	total  int
	index  int
}

// NewLogReporter creates a LogReporter.
func NewLogReporter(logger *zap.Logger) *LogReporter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LogReporter{logger: logger}
}

// Setup logs the size of the batch.
func (r *LogReporter) Setup(count int) {
	r.total = count
	r.index = 0

	r.logger.Info(fmt.Sprintf("Processing %d paths", count))
}

// Processing logs the start of a path.
func (r *LogReporter) Processing(path m.Path) {
	r.index++

	r.logger.Info("Processing",
		zap.String("path", string(path)),
		zap.String("progress", fmt.Sprintf("%d/%d", r.index, r.total)),
	)
}

// ProcessingOK logs a rename.
func (r *LogReporter) ProcessingOK(replacement m.Replacement) {
	r.logger.Info("Renamed",
		zap.String("path", string(replacement.Path())),
		zap.String("into", replacement.NewFileName()),
	)
}

// ProcessingErr logs a declined path at info level and a failure at error level.
func (r *LogReporter) ProcessingErr(path m.Path, err error) {
	if IsDeclined(err) {
		r.logger.Info("Left untouched", zap.String("path", string(path)), zap.String("reason", err.Error()))
		return
	}

	r.logger.Error("Failed", zap.String("path", string(path)), zap.Error(err))
}
