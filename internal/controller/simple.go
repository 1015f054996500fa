package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output. It accepts every
// proposal and prints a summary table when the batch is over.
type SimpleUI struct {
	cmd   *cobra.Command
	state *State
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, state: NewState()}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Wait returns immediately, nothing is left to display after Close.
func (s *SimpleUI) Wait() {}

// Confirm accepts every replacement.
func (s *SimpleUI) Confirm(_ m.Replacement) m.Confirmation {
	return m.Accept()
}

// Rescue leaves unmatched paths untouched.
func (s *SimpleUI) Rescue(err error) (m.Replacement, error) {
	return m.Replacement{}, err
}

// Setup records the batch size.
func (s *SimpleUI) Setup(count int) {
	s.state.Setup(count)
}

// Processing records the current path.
func (s *SimpleUI) Processing(path m.Path) {
	s.state.StartPath(path)
}

// ProcessingOK prints and records a rename.
func (s *SimpleUI) ProcessingOK(replacement m.Replacement) {
	s.state.Succeed(replacement)
	s.printf("%s\n", replacement.String())
}

// ProcessingErr records a path left untouched.
func (s *SimpleUI) ProcessingErr(path m.Path, err error) {
	s.state.Fail(path, err)
}

// Close prints the summary of the batch.
func (s *SimpleUI) Close() {
	results := s.state.Results()
	if len(results) == 0 {
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Result"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, r := range results {
		if r.OK {
			table.Append([]string{string(r.Path), string(r.NewPath)})
		} else {
			table.Append([]string{string(r.Path), r.Err})
		}
	}

	renamed, untouched := s.state.Count()
	table.SetFooter([]string{
		fmt.Sprintf("Renamed %d", renamed),
		fmt.Sprintf("Untouched %d", untouched),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
