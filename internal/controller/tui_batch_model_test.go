package controller

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mouse-blink/prefix-by-date/internal/domain/matchers"
	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func feed(t *testing.T, model tea.Model, msgs ...tea.Msg) batchModel {
	t.Helper()

	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}

	bm, ok := model.(batchModel)
	require.True(t, ok)

	return bm
}

func askedModel(t *testing.T, answers chan m.Confirmation) batchModel {
	t.Helper()

	today := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	chain := []matchers.Matcher{matchers.NewPredeterminedDate(matchers.DefaultDateFormat, today)}
	rep := sampleReplacement()

	return feed(t, newBatchModel(answers, chain),
		tea.WindowSizeMsg{Width: 100, Height: 40},
		setupMsg{count: 2},
		processingMsg{path: rep.Path()},
		confirmMsg{replacement: rep},
	)
}

func TestBatchModel_Answers(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.Msg
		wantKind m.ConfirmationKind
		wantStem string
	}{
		{name: "accept", keys: []tea.Msg{keyRunes("y")}, wantKind: m.ConfirmAccept},
		{name: "ignore", keys: []tea.Msg{keyRunes("I")}, wantKind: m.ConfirmIgnore},
		{name: "abort", keys: []tea.Msg{keyRunes("q")}, wantKind: m.ConfirmAbort},
		{
			name:     "alternative",
			keys:     []tea.Msg{keyRunes("v"), keyRunes("1")},
			wantKind: m.ConfirmReplace,
			wantStem: "2024-01-02 20231028-a",
		},
		{
			name:     "customize",
			keys:     []tea.Msg{keyRunes("c"), keyRunes("!"), tea.KeyMsg{Type: tea.KeyEnter}},
			wantKind: m.ConfirmReplace,
			wantStem: "2023-10-28 a!",
		},
		{
			name:     "customize cancelled",
			keys:     []tea.Msg{keyRunes("c"), tea.KeyMsg{Type: tea.KeyEsc}, keyRunes("s")},
			wantKind: m.ConfirmSkip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := make(chan m.Confirmation, 1)
			feed(t, askedModel(t, answers), tt.keys...)

			select {
			case c := <-answers:
				assert.Equal(t, tt.wantKind, c.Kind)

				if tt.wantStem != "" {
					assert.Equal(t, tt.wantStem, c.Replacement.NewFileStem)
				}
			default:
				t.Fatal("no answer sent")
			}
		})
	}
}

func TestBatchModel_CustomizeRefusesSeparators(t *testing.T) {
	answers := make(chan m.Confirmation, 1)
	bm := askedModel(t, answers)

	bm = feed(t, bm, keyRunes("c"))
	bm.input.SetValue("../escaped")
	bm = feed(t, bm, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, answers)
	assert.True(t, bm.customizing, "input stays open on an invalid name")

	bm.input.SetValue("escaped")
	feed(t, bm, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, answers, 1)
	c := <-answers
	assert.Equal(t, m.ConfirmReplace, c.Kind)
	assert.Equal(t, "escaped", c.Replacement.NewFileStem)
}

func TestBatchModel_UnknownKeyDoesNotAnswer(t *testing.T) {
	answers := make(chan m.Confirmation, 1)
	bm := feed(t, askedModel(t, answers), keyRunes("z"), keyRunes("v"), keyRunes("9"))

	assert.Empty(t, answers)
	assert.True(t, bm.alternatives)
	assert.Contains(t, bm.View(), "(predetermined_date today)")
}

func TestBatchModel_CtrlCClosesAnswers(t *testing.T) {
	answers := make(chan m.Confirmation, 1)
	bm := askedModel(t, answers)

	model, cmd := bm.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, ok := <-answers
	assert.False(t, ok, "answers must be closed")

	// a second quit must not close twice
	_, _ = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, "", model.View())
}

func TestBatchModel_ResultsAndSummary(t *testing.T) {
	answers := make(chan m.Confirmation, 1)
	rep := sampleReplacement()

	bm := feed(t, askedModel(t, answers),
		keyRunes("y"),
		processingOKMsg{replacement: rep},
		processingMsg{path: "/photos/b.jpg"},
		processingErrMsg{path: "/photos/b.jpg", err: errors.New("no match found"), declined: false},
	)

	view := bm.View()
	assert.Contains(t, view, "Renamed:")
	assert.Contains(t, view, "2023-10-28 a.jpg")
	assert.Contains(t, view, "no match found")
	assert.Len(t, bm.results.Items(), 2)

	bm = feed(t, bm, batchDoneMsg{})
	assert.Contains(t, bm.View(), "Batch finished")

	_, cmd := bm.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
