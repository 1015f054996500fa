package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reporter := NewLogReporter(zap.New(core))

	reporter.Setup(2)
	reporter.Processing("/photos/a.jpg")
	reporter.ProcessingOK(m.Replacement{Parent: "/photos", FileStem: "a", NewFileStem: "2023 a", Extension: "jpg"})
	reporter.Processing("/photos/b.jpg")
	reporter.ProcessingErr("/photos/b.jpg", userChoice{})
	reporter.ProcessingErr("/photos/c.jpg", errors.New("boom"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 6)

	assert.Equal(t, "Processing 2 paths", entries[0].Message)
	assert.Equal(t, "1/2", entries[1].ContextMap()["progress"])
	assert.Equal(t, "2023 a.jpg", entries[2].ContextMap()["into"])
	assert.Equal(t, "2/2", entries[3].ContextMap()["progress"])
	assert.Equal(t, zapcore.InfoLevel, entries[4].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[5].Level)
}

func TestLocalRenameFS(t *testing.T) {
	dir := t.TempDir()
	fs := NewLocalRenameFS()

	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0o600))

	assert.True(t, fs.Exists(m.Path(a)))
	assert.False(t, fs.Exists(m.Path(b)))

	info, err := fs.FileInfo(m.Path(a))
	require.NoError(t, err)
	assert.Equal(t, "a.txt", info.Name())

	require.NoError(t, fs.Rename(m.Path(a), m.Path(a)))
	require.NoError(t, fs.Rename(m.Path(a), m.Path(b)))
	assert.True(t, fs.Exists(m.Path(b)))

	require.NoError(t, os.WriteFile(a, []byte("other"), 0o600))

	err = fs.Rename(m.Path(a), m.Path(b))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrExist)

	content, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, "a", string(content))
}
