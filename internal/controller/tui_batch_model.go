package controller

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mouse-blink/prefix-by-date/internal/domain/matchers"
	m "github.com/mouse-blink/prefix-by-date/internal/model"
)

var (
	accentColor = lipgloss.Color("6") // Cyan

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle  = lipgloss.NewStyle().Foreground(accentColor)
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Strikethrough(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Padding(0, 2)
)

// resultDelegate renders a finished path on one line.
type resultDelegate struct{}

func (d resultDelegate) Height() int                             { return 1 }
func (d resultDelegate) Spacing() int                            { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d resultDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	result, ok := item.(resultItem)
	if !ok {
		return
	}

	statusColorMap := map[string]lipgloss.Color{
		"renamed":   lipgloss.Color("2"), // Green
		"untouched": lipgloss.Color("3"), // Yellow
		"failed":    lipgloss.Color("1"), // Red
	}

	status := result.status()
	statusStyle := lipgloss.NewStyle().
		Foreground(statusColorMap[status]).
		Bold(true).
		Width(11).
		Align(lipgloss.Left)

	detail := result.newPath
	if result.err != "" {
		detail = result.err
	}

	detail = truncateToWidth(detail, lm.Width()-12)
	if index == lm.Index() {
		detail = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(detail)
	}

	_, _ = fmt.Fprintf(w, "%s %s", statusStyle.Render(status), detail)
}

// batchModel displays a batch and answers the engine's questions.
type batchModel struct {
	width  int
	height int

	state    *State
	matchers []matchers.Matcher
	hl       Highlighter

	answers   chan<- m.Confirmation
	closeOnce *sync.Once

	progressBar  progress.Model
	input        textinput.Model
	results      list.Model
	customizing  bool
	alternatives bool
	finished     bool
	quitting     bool
}

func newBatchModel(answers chan<- m.Confirmation, chain []matchers.Matcher) batchModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	input := textinput.New()
	input.Prompt = "new name: "
	input.CharLimit = 255

	results := list.New([]list.Item{}, resultDelegate{}, 80, 10)
	results.SetShowPagination(false)
	results.SetShowFilter(false)
	results.SetFilteringEnabled(false)
	results.SetShowHelp(false)
	results.SetShowTitle(false)
	results.SetShowStatusBar(false)

	return batchModel{
		state:    NewState(),
		matchers: chain,
		hl: Highlighter{
			Removed: func(s string) string { return removedStyle.Render(s) },
			Added:   func(s string) string { return addedStyle.Render(s) },
		},
		answers:     answers,
		closeOnce:   &sync.Once{},
		progressBar: prog,
		input:       input,
		results:     results,
	}
}

func (bm batchModel) Init() tea.Cmd {
	return nil
}

//nolint:cyclop // one case per message type
func (bm batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width
		bm.height = msg.Height
		bm.results.SetWidth(msg.Width - 4)

		return bm, nil

	case tea.KeyMsg:
		return bm.handleKey(msg)

	case setupMsg:
		bm.state.Setup(msg.count)

	case processingMsg:
		bm.state.StartPath(msg.path)

	case confirmMsg:
		bm.customizing, bm.alternatives = false, false
		bm.state.AskConfirm(msg.replacement, bm.matchers)

	case rescueMsg:
		bm.customizing, bm.alternatives = false, false
		bm.state.AskRescue(msg.replacement)

	case processingOKMsg:
		bm.state.Succeed(msg.replacement)
		bm = bm.appendResult(resultItem{
			path:    string(msg.replacement.Path()),
			newPath: string(msg.replacement.NewPath()),
		})

	case processingErrMsg:
		bm.state.Fail(msg.path, msg.err)

		errText := ""
		if msg.err != nil {
			errText = msg.err.Error()
		}

		bm = bm.appendResult(resultItem{path: string(msg.path), err: errText, declined: msg.declined})

	case batchDoneMsg:
		bm.finished = true
	}

	return bm, nil
}

func (bm batchModel) appendResult(item resultItem) batchModel {
	index := len(bm.results.Items())
	bm.results.InsertItem(index, item)
	bm.results.Select(index)

	return bm
}

func (bm batchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return bm.quit()
	}

	if bm.finished {
		switch msg.String() {
		case "q", "esc", "enter":
			return bm.quit()
		}

		var cmd tea.Cmd
		bm.results, cmd = bm.results.Update(msg)

		return bm, cmd
	}

	change, open := bm.state.Change()
	if !open {
		return bm, nil
	}

	switch {
	case bm.customizing:
		return bm.handleCustomizeKey(msg)
	case bm.alternatives:
		return bm.handleAlternativeKey(msg, change)
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return bm, nil
	}

	action, ok := findAction(bm.state.Actions(), msg.Runes[0])
	if !ok {
		return bm, nil
	}

	switch action.Kind {
	case ActionViewAlternatives:
		bm.alternatives = true

		return bm, nil
	case ActionCustomize:
		bm.customizing = true
		bm.input.SetValue(change.Replacement.NewFileStem)
		bm.input.CursorEnd()

		return bm, bm.input.Focus()
	default:
		bm.answer(action)

		return bm, nil
	}
}

func (bm batchModel) handleCustomizeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		bm.customizing = false
		bm.input.Blur()

		return bm, nil
	case tea.KeyEnter:
		stem := strings.TrimSpace(bm.input.Value())
		if !bm.state.Customize(stem) {
			return bm, nil
		}

		bm.customizing = false
		bm.input.Blur()

		change, _ := bm.state.Change()
		bm.answer(Action{Kind: ActionReplace, Replacement: change.Replacement})

		return bm, nil
	}

	var cmd tea.Cmd
	bm.input, cmd = bm.input.Update(msg)

	return bm, cmd
}

func (bm batchModel) handleAlternativeKey(msg tea.KeyMsg, change Change) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		bm.alternatives = false

		return bm, nil
	}

	n, err := strconv.Atoi(msg.String())
	if err != nil || n < 1 || n > len(change.Alternatives) {
		return bm, nil
	}

	bm.alternatives = false
	bm.answer(Action{Kind: ActionReplace, Replacement: change.Alternatives[n-1].Replacement})

	return bm, nil
}

// answer resolves the open question and hands the confirmation to the engine.
func (bm batchModel) answer(action Action) {
	if bm.quitting {
		return
	}

	if c, ok := bm.state.Resolve(action); ok {
		bm.answers <- c
	}
}

// quit closes the answer channel before leaving so a waiting engine aborts.
func (bm batchModel) quit() (tea.Model, tea.Cmd) {
	bm.quitting = true
	bm.closeOnce.Do(func() { close(bm.answers) })

	return bm, tea.Quit
}

func (bm batchModel) View() string {
	if bm.quitting {
		return ""
	}

	renamed, untouched := bm.state.Count()
	done := renamed + untouched

	percent := 0.0
	if total := bm.state.Total(); total > 0 {
		percent = float64(done) / float64(total)
	}

	title := titleStyle.Render("prefix-by-date")
	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  Renamed: %s  •  Untouched: %s",
		accentStyle.Render(strconv.Itoa(done)),
		accentStyle.Render(strconv.Itoa(bm.state.Total())),
		accentStyle.Render(strconv.Itoa(renamed)),
		accentStyle.Render(strconv.Itoa(untouched)),
	))
	progressView := lipgloss.NewStyle().Padding(0, 2).Render(bm.progressBar.ViewAs(percent))

	footer := footerStyle.Render("ctrl+c abort")
	if bm.finished {
		footer = footerStyle.Render("↑/k up • ↓/j down • q quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		bm.renderCurrent(),
		bm.renderResults(),
		footer,
	)
}

func (bm batchModel) renderCurrent() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(1, 1, 1, 0)

	if bm.width > 4 {
		box = box.Width(bm.width - 4)
	}

	if bm.finished {
		return box.Render("Batch finished")
	}

	change, open := bm.state.Change()
	if !open {
		path := string(bm.state.Path())
		if path == "" {
			return box.Render("Waiting…")
		}

		return box.Render("Processing " + truncateToWidth(path, bm.width-12))
	}

	rep := change.Replacement
	before, after := bm.hl.Highlight(rep.FileName(), rep.NewFileName())

	lines := []string{
		faintStyle.Render(string(rep.Parent)),
		"  " + before,
		"→ " + after,
		"",
	}

	switch {
	case bm.customizing:
		lines = append(lines, bm.input.View(), faintStyle.Render("enter confirm • esc cancel"))
	case bm.alternatives:
		for i, alt := range change.Alternatives {
			lines = append(lines, fmt.Sprintf("%s %s %s",
				keyStyle.Render(fmt.Sprintf("[%d]", i+1)),
				alt.Replacement.NewFileName(),
				faintStyle.Render("("+alt.Matcher+")"),
			))
		}

		lines = append(lines, faintStyle.Render("esc back"))
	default:
		for _, a := range bm.state.Actions() {
			if key, ok := a.Shortcut(); ok {
				lines = append(lines, fmt.Sprintf("%s %s", keyStyle.Render(fmt.Sprintf("[%c]", key)), a.Label()))
			}
		}
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (bm batchModel) renderResults() string {
	if len(bm.results.Items()) == 0 {
		return ""
	}

	height := bm.height - 20
	if height < 3 {
		height = 3
	}

	bm.results.SetHeight(height)

	return lipgloss.NewStyle().Padding(0, 2).Render(bm.results.View())
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
