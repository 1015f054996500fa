package controller

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mouse-blink/prefix-by-date/internal/domain"
	"github.com/mouse-blink/prefix-by-date/internal/domain/matchers"
	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"github.com/spf13/cobra"
)

var (
	colorRemoved = color.New(color.FgRed, color.CrossedOut)
	colorAdded   = color.New(color.FgGreen, color.Bold)
	colorOK      = color.New(color.FgGreen)
	colorDecline = color.New(color.FgYellow)
	colorFailure = color.New(color.FgRed, color.Bold)
	colorKey     = color.New(color.FgCyan, color.Bold)
	colorFaint   = color.New(color.Faint)
)

// TextUI asks questions line by line on the command's input.
type TextUI struct {
	cmd      *cobra.Command
	in       *bufio.Reader
	state    *State
	matchers []matchers.Matcher
	hl       Highlighter
}

// NewTextUI creates a line-oriented UI reading from cmd's input.
func NewTextUI(cmd *cobra.Command) *TextUI {
	return &TextUI{
		cmd:   cmd,
		in:    bufio.NewReader(cmd.InOrStdin()),
		state: NewState(),
		hl: Highlighter{
			Removed: func(s string) string { return colorRemoved.Sprint(s) },
			Added:   func(s string) string { return colorAdded.Sprint(s) },
		},
	}
}

// Start stores the matchers used to propose alternatives.
func (t *TextUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	t.matchers = cfg.matchers

	return nil
}

// Close prints the totals of the batch.
func (t *TextUI) Close() {
	renamed, untouched := t.state.Count()
	t.printf("%d renamed, %d left untouched\n", renamed, untouched)
}

// Wait returns immediately.
func (t *TextUI) Wait() {}

// Setup records the batch size.
func (t *TextUI) Setup(count int) {
	t.state.Setup(count)
}

// Processing records the current path.
func (t *TextUI) Processing(path m.Path) {
	t.state.StartPath(path)
}

// ProcessingOK prints a rename.
func (t *TextUI) ProcessingOK(replacement m.Replacement) {
	t.state.Succeed(replacement)
	t.printf("%s %s\n", colorOK.Sprint("renamed"), replacement.String())
}

// ProcessingErr prints a path left untouched.
func (t *TextUI) ProcessingErr(path m.Path, err error) {
	t.state.Fail(path, err)

	if domain.IsDeclined(err) {
		t.printf("%s %v\n", colorDecline.Sprint("untouched"), err)
		return
	}

	t.printf("%s %v\n", colorFailure.Sprint("failed"), err)
}

// Confirm asks what to do with replacement.
func (t *TextUI) Confirm(replacement m.Replacement) m.Confirmation {
	if !t.state.AskConfirm(replacement, t.matchers) {
		return m.Skip()
	}

	return t.ask()
}

// Rescue offers to name a path by hand when nothing matched it.
func (t *TextUI) Rescue(err error) (m.Replacement, error) {
	rep, ok := rescueReplacement(err)
	if !ok || !t.state.AskRescue(rep) {
		return m.Replacement{}, err
	}

	t.printf("%s\n", colorDecline.Sprint(err.Error()))

	return rescueAnswer(t.ask(), err)
}

func (t *TextUI) ask() m.Confirmation {
	for {
		change, _ := t.state.Change()
		actions := t.state.Actions()

		t.printChange(change)
		t.printActions(actions)

		line, err := t.readLine("> ")
		if err != nil {
			c, _ := t.state.Resolve(Action{Kind: ActionAbort})
			return c
		}

		key, _ := utf8.DecodeRuneInString(line)

		action, ok := findAction(actions, key)
		if !ok {
			t.printf("unknown choice %q\n", line)
			continue
		}

		switch action.Kind {
		case ActionViewAlternatives:
			rep, chosen := t.chooseAlternative(change.Alternatives)
			if !chosen {
				continue
			}

			action = Action{Kind: ActionReplace, Replacement: rep}
		case ActionCustomize:
			stem, typed := t.readStem(change.Replacement)
			if !typed {
				continue
			}

			if !t.state.Customize(stem) {
				t.printf("%s\n", colorFailure.Sprint(m.ValidateStem(stem)))
				continue
			}

			customized, _ := t.state.Change()
			action = Action{Kind: ActionReplace, Replacement: customized.Replacement}
		}

		if c, ok := t.state.Resolve(action); ok {
			return c
		}
	}
}

func (t *TextUI) printChange(change Change) {
	rep := change.Replacement
	before, after := t.hl.Highlight(rep.FileName(), rep.NewFileName())

	t.printf("\n[%d/%d] %s\n", t.state.Index(), t.state.Total(), rep.Parent)
	t.printf("  %s\n  %s\n", before, after)
}

func (t *TextUI) printActions(actions []Action) {
	for _, a := range actions {
		if key, ok := a.Shortcut(); ok {
			t.printf("  %s  %s\n", colorKey.Sprintf("[%c]", key), a.Label())
		}
	}
}

func (t *TextUI) chooseAlternative(alternatives []matchers.Alternative) (m.Replacement, bool) {
	for i, alt := range alternatives {
		t.printf("  %s  %s %s\n", colorKey.Sprintf("[%d]", i+1), alt.Replacement.NewFileName(), colorFaint.Sprintf("(%s)", alt.Matcher))
	}

	line, err := t.readLine("number, empty to cancel> ")
	if err != nil || line == "" {
		return m.Replacement{}, false
	}

	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(alternatives) {
		t.printf("unknown choice %q\n", line)
		return m.Replacement{}, false
	}

	return alternatives[n-1].Replacement, true
}

func (t *TextUI) readStem(rep m.Replacement) (string, bool) {
	t.printf("  current: %s\n", rep.NewFileStem)

	line, err := t.readLine("new name without extension, empty to cancel> ")
	if err != nil || line == "" {
		return "", false
	}

	return line, true
}

func (t *TextUI) readLine(prompt string) (string, error) {
	t.printf("%s", prompt)

	line, err := t.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (t *TextUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.cmd.OutOrStdout(), format, args...)
}

// rescueReplacement builds the unchanged replacement of an unmatched path.
func rescueReplacement(err error) (m.Replacement, bool) {
	var perr *domain.Error
	if !errors.As(err, &perr) || perr.Kind != domain.ErrorNoMatch {
		return m.Replacement{}, false
	}

	rep, rerr := m.NewReplacement(perr.Path)
	if rerr != nil {
		return m.Replacement{}, false
	}

	return rep, true
}

// rescueAnswer converts the answer to a rescue question for the engine.
func rescueAnswer(c m.Confirmation, err error) (m.Replacement, error) {
	switch c.Kind {
	case m.ConfirmReplace:
		return c.Replacement, nil
	case m.ConfirmAbort:
		return m.Replacement{}, domain.ErrAbort
	default:
		return m.Replacement{}, err
	}
}
