package controller

import (
	m "github.com/mouse-blink/prefix-by-date/internal/model"
)

// Messages sent by the engine goroutine to the program.
type setupMsg struct {
	count int
}

type processingMsg struct {
	path m.Path
}

type confirmMsg struct {
	replacement m.Replacement
}

type rescueMsg struct {
	replacement m.Replacement
}

type processingOKMsg struct {
	replacement m.Replacement
}

type processingErrMsg struct {
	path     m.Path
	err      error
	declined bool
}

// batchDoneMsg is sent by Close once the engine has returned.
type batchDoneMsg struct{}

// resultItem is a finished path in the results list.
type resultItem struct {
	path     string
	newPath  string
	err      string
	declined bool
}

func (r resultItem) FilterValue() string {
	return r.path + " " + r.newPath
}

func (r resultItem) status() string {
	switch {
	case r.err == "":
		return "renamed"
	case r.declined:
		return "untouched"
	default:
		return "failed"
	}
}
