package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"gopkg.in/yaml.v3"
)

// ReportStore persists and retrieves batch journals.
type ReportStore interface {
	SaveJournal(path m.Path, journal m.Journal) error
	LoadJournal(path m.Path) (m.Journal, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore writing YAML files.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveJournal(path m.Path, journal m.Journal) error {
	data, err := yaml.Marshal(journal)
	if err != nil {
		return fmt.Errorf("failed to encode journal: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}

	return nil
}

func (rs *reportStore) LoadJournal(path m.Path) (m.Journal, error) {
	// #nosec G304 - the journal path is chosen by the user on the command line
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Journal{}, fmt.Errorf("failed to read journal: %w", err)
	}

	var journal m.Journal
	if err := yaml.Unmarshal(data, &journal); err != nil {
		return m.Journal{}, fmt.Errorf("failed to decode journal %s: %w", path, err)
	}

	return journal, nil
}

// JournalReporter records the outcome of every path of a batch.
type JournalReporter struct {
	mu      sync.Mutex
	journal m.Journal
	now     func() time.Time
}

// NewJournalReporter starts a journal with a fresh batch id.
func NewJournalReporter() *JournalReporter {
	r := &JournalReporter{now: time.Now}
	r.journal = m.Journal{
		BatchID:   uuid.NewString(),
		StartedAt: r.now(),
	}

	return r
}

// BatchID returns the identifier of the batch.
func (r *JournalReporter) BatchID() string {
	return r.journal.BatchID
}

// Setup records the size of the batch.
func (r *JournalReporter) Setup(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.journal.Total = count
}

// Processing does nothing, only outcomes are journaled.
func (r *JournalReporter) Processing(_ m.Path) {}

// ProcessingOK records a rename.
func (r *JournalReporter) ProcessingOK(replacement m.Replacement) {
	r.append(m.Report{
		Path:    replacement.Path(),
		NewPath: replacement.NewPath(),
		Outcome: m.OutcomeRenamed,
	})
}

// ProcessingErr records a path left untouched.
func (r *JournalReporter) ProcessingErr(path m.Path, err error) {
	outcome := m.OutcomeFailed
	if IsDeclined(err) {
		outcome = m.OutcomeDeclined
	}

	detail := ""
	if err != nil {
		detail = err.Error()
	}

	r.append(m.Report{Path: path, Outcome: outcome, Error: detail})
}

func (r *JournalReporter) append(report m.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.journal.Reports = append(r.journal.Reports, report)
}

// Finish stamps the end of the batch and returns a copy of the journal.
func (r *JournalReporter) Finish(aborted bool) m.Journal {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.journal.FinishedAt = r.now()
	r.journal.Aborted = aborted

	journal := r.journal
	journal.Reports = append([]m.Report(nil), r.journal.Reports...)

	return journal
}
