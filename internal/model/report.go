package model

import "time"

// Outcome classifies how a path left the batch.
type Outcome string

const (
	// OutcomeRenamed means the replacement was executed.
	OutcomeRenamed Outcome = "renamed"
	// OutcomeDeclined means the user chose not to rename (skip, refuse, ignore).
	OutcomeDeclined Outcome = "declined"
	// OutcomeFailed means the path could not be renamed.
	OutcomeFailed Outcome = "failed"
)

// Report records the terminal outcome of a single path.
type Report struct {
	Path    Path    `yaml:"path"`
	NewPath Path    `yaml:"new_path,omitempty"`
	Outcome Outcome `yaml:"outcome"`
	Error   string  `yaml:"error,omitempty"`
}

// Journal holds every report of one batch.
type Journal struct {
	BatchID    string    `yaml:"batch_id"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at,omitempty"`
	Total      int       `yaml:"total"`
	Aborted    bool      `yaml:"aborted"`
	Reports    []Report  `yaml:"reports"`
}

// Count returns how many reports have the given outcome.
func (j Journal) Count(outcome Outcome) int {
	n := 0

	for _, r := range j.Reports {
		if r.Outcome == outcome {
			n++
		}
	}

	return n
}
