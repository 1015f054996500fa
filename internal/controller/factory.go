package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI creates the front-end selected once at startup.
func NewUI(kind Kind, cmd *cobra.Command) UI {
	switch kind {
	case KindTUI:
		return NewTUI(cmd.InOrStdin(), cmd.OutOrStdout())
	case KindText:
		return NewTextUI(cmd)
	default:
		return NewSimpleUI(cmd)
	}
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
