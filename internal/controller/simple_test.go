package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"github.com/spf13/cobra"
)

func TestSimpleUI_AcceptsAndPrintsTable(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)
	if err := ui.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	rep := m.Replacement{Parent: "/photos", FileStem: "20231028-a", NewFileStem: "2023-10-28 a", Extension: "jpg"}

	ui.Setup(2)
	ui.Processing(rep.Path())

	if c := ui.Confirm(rep); c.Kind != m.ConfirmAccept {
		t.Fatalf("Confirm() = %v, want accept", c.Kind)
	}

	ui.ProcessingOK(rep)
	ui.Processing("/photos/b.jpg")
	ui.ProcessingErr("/photos/b.jpg", errors.New("no match found"))
	ui.Close()
	ui.Wait()

	output := buf.String()

	for _, want := range []string{
		"/photos/20231028-a.jpg",
		"/photos/2023-10-28 a.jpg",
		"/photos/b.jpg",
		"no match found",
		"RENAMED 1",
		"UNTOUCHED 1",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_RescueKeepsError(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewSimpleUI(cmd)
	boom := errors.New("boom")

	if _, err := ui.Rescue(boom); !errors.Is(err, boom) {
		t.Fatalf("Rescue() error = %v, want %v", err, boom)
	}
}

func TestSimpleUI_CloseWithoutResults(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	NewSimpleUI(cmd).Close()

	if buf.Len() != 0 {
		t.Fatalf("Close() printed %q, want nothing", buf.String())
	}
}
