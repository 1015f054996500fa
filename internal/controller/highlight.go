package controller

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Highlighter styles the differences between an old and a new file name.
type Highlighter struct {
	Removed func(string) string
	Added   func(string) string
}

// Highlight renders old with its removed characters styled, and new with its
// added characters styled. Unchanged runs are left as is.
func (h Highlighter) Highlight(oldName, newName string) (string, string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldName, newName, false)

	var before, after strings.Builder

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			before.WriteString(d.Text)
			after.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			before.WriteString(apply(h.Removed, d.Text))
		case diffmatchpatch.DiffInsert:
			after.WriteString(apply(h.Added, d.Text))
		}
	}

	return before.String(), after.String()
}

func apply(style func(string) string, text string) string {
	if style == nil {
		return text
	}

	return style(text)
}
