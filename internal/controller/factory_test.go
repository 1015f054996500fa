package controller

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUI_Kinds(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindTUI, "*controller.TUI"},
		{KindText, "*controller.TextUI"},
		{KindOff, "*controller.SimpleUI"},
		{Kind(""), "*controller.SimpleUI"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetIn(&bytes.Buffer{})

			ui := NewUI(tt.kind, cmd)

			var got string
			switch ui.(type) {
			case *TUI:
				got = "*controller.TUI"
			case *TextUI:
				got = "*controller.TextUI"
			case *SimpleUI:
				got = "*controller.SimpleUI"
			}

			if got != tt.want {
				t.Errorf("NewUI(%q) returned %T, want %s", tt.kind, ui, tt.want)
			}
		})
	}
}

func TestIsTTY_WithRegularFile(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "prefix-by-date-tty")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer file.Close()

	if IsTTY(file) {
		t.Fatalf("IsTTY(regular file) = true, want false")
	}
}

func TestIsTTY_WithCharDevice(t *testing.T) {
	file, err := os.Open("/dev/null")
	if err != nil {
		t.Skip("/dev/null not available")
	}
	defer file.Close()

	if !IsTTY(file) {
		t.Fatalf("IsTTY(/dev/null) = false, want true")
	}
}

func TestIsTTY_WithNonTerminal(t *testing.T) {
	var buf bytes.Buffer

	if IsTTY(&buf) {
		t.Fatalf("IsTTY(buffer) = true, want false")
	}
}
