package controller

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mouse-blink/prefix-by-date/internal/domain"
	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// TUI implements UI using Bubble Tea for interactive display.
//
// The engine and the program run on different goroutines. The engine talks
// to the program with messages; the program answers questions on a
// single-slot channel. Once the program is gone every question is answered
// with Abort.
type TUI struct {
	input  io.Reader
	output io.Writer

	program   *tea.Program
	group     errgroup.Group
	started   bool
	altScreen bool
	runErr    error

	answers chan m.Confirmation
	done    chan struct{}
	once    sync.Once
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{
		input:   input,
		output:  output,
		answers: make(chan m.Confirmation, 1),
		done:    make(chan struct{}),
	}
}

// Start launches the program.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	model := newBatchModel(t.answers, cfg.matchers)

	if f, ok := t.output.(*os.File); ok && IsTTY(f) {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
			t.altScreen = true
		}
	}

	return t.startWithModel(model)
}

func (t *TUI) startWithModel(model tea.Model) error {
	if t.started {
		return nil
	}

	options := []tea.ProgramOption{tea.WithInput(t.input), tea.WithOutput(t.output)}
	if t.altScreen {
		options = append(options, tea.WithAltScreen())
	}

	t.program = tea.NewProgram(model, options...)
	t.started = true

	t.group.Go(func() error {
		defer t.once.Do(func() { close(t.done) })

		_, err := t.program.Run()

		return err
	})

	return nil
}

// ensureStarted starts the default model when the engine talks to a TUI
// nobody started.
func (t *TUI) ensureStarted() {
	if !t.started {
		_ = t.Start()
	}
}

// Close tells the program the batch is over. The program keeps the summary
// on screen until the user leaves it.
func (t *TUI) Close() {
	t.send(batchDoneMsg{})
}

// Wait blocks until the program exits.
func (t *TUI) Wait() {
	if !t.started {
		return
	}

	t.runErr = t.group.Wait()
}

// Err returns the error the program exited with, after Wait.
func (t *TUI) Err() error {
	return t.runErr
}

// Setup announces the batch size.
func (t *TUI) Setup(count int) {
	t.ensureStarted()
	t.send(setupMsg{count: count})
}

// Processing announces the current path.
func (t *TUI) Processing(path m.Path) {
	t.send(processingMsg{path: path})
}

// ProcessingOK announces a rename.
func (t *TUI) ProcessingOK(replacement m.Replacement) {
	t.send(processingOKMsg{replacement: replacement})
}

// ProcessingErr announces a path left untouched.
func (t *TUI) ProcessingErr(path m.Path, err error) {
	t.send(processingErrMsg{path: path, err: err, declined: domain.IsDeclined(err)})
}

// Confirm asks the program what to do with replacement.
func (t *TUI) Confirm(replacement m.Replacement) m.Confirmation {
	if !t.send(confirmMsg{replacement: replacement}) {
		return m.Abort()
	}

	return t.await()
}

// Rescue asks the program to name a path nothing matched.
func (t *TUI) Rescue(err error) (m.Replacement, error) {
	rep, ok := rescueReplacement(err)
	if !ok {
		return m.Replacement{}, err
	}

	if !t.send(rescueMsg{replacement: rep}) {
		return m.Replacement{}, domain.ErrAbort
	}

	return rescueAnswer(t.await(), err)
}

func (t *TUI) await() m.Confirmation {
	select {
	case c, ok := <-t.answers:
		if !ok {
			return m.Abort()
		}

		return c
	case <-t.done:
		return m.Abort()
	}
}

// send delivers msg to a running program and reports whether it could.
func (t *TUI) send(msg tea.Msg) bool {
	if !t.started {
		return false
	}

	select {
	case <-t.done:
		return false
	default:
	}

	t.program.Send(msg)

	return true
}
