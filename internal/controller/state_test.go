package controller

import (
	"errors"
	"testing"
	"time"

	"github.com/mouse-blink/prefix-by-date/internal/domain/matchers"
	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReplacement() m.Replacement {
	return m.Replacement{Parent: "/photos", FileStem: "20231028-a", NewFileStem: "2023-10-28 a", Extension: "jpg"}
}

func TestState_ConfirmFlow(t *testing.T) {
	today := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	list := []matchers.Matcher{matchers.NewPredeterminedDate(matchers.DefaultDateFormat, today)}

	s := NewState()
	s.Setup(1)

	assert.False(t, s.AskConfirm(sampleReplacement(), list), "confirm before path")
	require.True(t, s.StartPath("/photos/20231028-a.jpg"))
	assert.Equal(t, 1, s.Index())
	assert.False(t, s.StartPath("/photos/other.jpg"), "path while processing")

	require.True(t, s.AskConfirm(sampleReplacement(), list))
	assert.Equal(t, CurrentConfirm, s.Current())

	change, ok := s.Change()
	require.True(t, ok)
	require.Len(t, change.Alternatives, 1)
	assert.Equal(t, "2024-01-02 20231028-a", change.Alternatives[0].Replacement.NewFileStem)

	_, ok = s.Resolve(Action{Kind: ActionCancel})
	assert.False(t, ok, "cancel is not an answer")

	c, ok := s.Resolve(Action{Kind: ActionAlways})
	require.True(t, ok)
	assert.Equal(t, m.ConfirmAlways, c.Kind)
	assert.Equal(t, CurrentResolving, s.Current())

	_, ok = s.Resolve(Action{Kind: ActionAccept})
	assert.False(t, ok, "question already answered")

	require.True(t, s.Succeed(sampleReplacement()))
	assert.Equal(t, CurrentResolved, s.Current())

	renamed, untouched := s.Count()
	assert.Equal(t, 1, renamed)
	assert.Equal(t, 0, untouched)
}

func TestState_RescueAndCustomize(t *testing.T) {
	s := NewState()
	s.Setup(2)

	rep := m.Replacement{Parent: "/photos", FileStem: "holiday", NewFileStem: "holiday", Extension: "jpg"}

	require.True(t, s.StartPath(rep.Path()))
	require.True(t, s.AskRescue(rep))

	actions := s.Actions()
	assert.True(t, containsKind(actions, ActionCustomize))
	assert.False(t, containsKind(actions, ActionAlways))
	assert.False(t, containsKind(actions, ActionIgnore))

	assert.False(t, s.Customize("../holiday"))
	assert.False(t, s.Customize("2023/08/01 holiday"))

	require.True(t, s.Customize("2023-08-01 holiday"))

	change, _ := s.Change()
	require.NotNil(t, change.Customize)
	assert.Equal(t, "2023-08-01 holiday", change.Replacement.NewFileStem)
	assert.False(t, change.FurtherCustomizable())
	assert.False(t, containsKind(s.Actions(), ActionCustomize))

	c, ok := s.Resolve(Action{Kind: ActionReplace, Replacement: change.Replacement})
	require.True(t, ok)
	assert.Equal(t, "2023-08-01 holiday", c.Replacement.NewFileStem)

	require.True(t, s.Fail(rep.Path(), errors.New("denied")))
	assert.Equal(t, "denied", s.Results()[0].Err)
}

func TestState_AutoAcceptedPathFinishesFromPath(t *testing.T) {
	s := NewState()
	s.Setup(1)

	assert.False(t, s.Succeed(sampleReplacement()), "nothing in flight")

	require.True(t, s.StartPath("/photos/20231028-a.jpg"))
	require.True(t, s.Succeed(sampleReplacement()))
	assert.Len(t, s.Results(), 1)
}

func TestState_SetupResets(t *testing.T) {
	s := NewState()
	s.Setup(1)
	s.StartPath("/a")
	s.Fail("/a", nil)

	s.Setup(3)

	assert.Equal(t, 3, s.Total())
	assert.Equal(t, 0, s.Index())
	assert.Empty(t, s.Results())
	assert.Equal(t, CurrentNone, s.Current())
}
