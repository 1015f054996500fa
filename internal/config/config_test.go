package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mouse-blink/prefix-by-date/internal/domain/matchers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))

	return dir
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, matchers.DefaultDateFormat, cfg.DateFormat())
}

func TestLoad_File(t *testing.T) {
	dir := writeConfig(t, `
time = true
log_file = "/tmp/prefix-by-date.log"

[default_format]
date_time = "%Y%m%d-%H%M%S"

[matchers.predetermined_date]
today = true

[matchers.metadata]
modified = true

[[matchers.patterns]]
name = "whatsapp"
regex = '''IMG-(?<year>\d{4})(?<month>\d{2})(?<day>\d{2})-WA(?<rest>\d+)'''
delimiter = " "

[[matchers.patterns]]
name = "camera"
regex = '''IMG_(?<year>\d{4})(?<month>\d{2})(?<day>\d{2})_(?<rest>.+)'''
format = "%d.%m.%Y"
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	want := Config{
		Time:    true,
		LogFile: "/tmp/prefix-by-date.log",
		DefaultFormat: DefaultFormat{
			Date:     matchers.DefaultDateFormat,
			DateTime: "%Y%m%d-%H%M%S",
		},
		Matchers: MatchersConfig{
			Patterns: []PatternConfig{
				{
					Name:      "whatsapp",
					Regex:     `IMG-(?<year>\d{4})(?<month>\d{2})(?<day>\d{2})-WA(?<rest>\d+)`,
					Delimiter: " ",
				},
				{
					Name:   "camera",
					Regex:  `IMG_(?<year>\d{4})(?<month>\d{2})(?<day>\d{2})_(?<rest>.+)`,
					Format: "%d.%m.%Y",
				},
			},
			PredeterminedDate: PredeterminedDateConfig{Today: true},
			Metadata:          MetadataConfig{Modified: true},
		},
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "%Y%m%d-%H%M%S", cfg.DateFormat())
	assert.Equal(t, "camera", cfg.Matchers.Patterns[1].Definition().Name)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			name:    "reserved name",
			content: "[[matchers.patterns]]\nname = \"metadata modified\"\nregex = 'x'\n",
			message: `uses the reserved name "metadata modified"`,
		},
		{
			name:    "missing name",
			content: "[[matchers.patterns]]\nregex = 'x'\n",
			message: "Name is required",
		},
		{
			name:    "duplicate names",
			content: "[[matchers.patterns]]\nname = \"a\"\n[[matchers.patterns]]\nname = \"a\"\n",
			message: "duplicate pattern names",
		},
		{
			name:    "empty default format",
			content: "[default_format]\ndate = \"\"\n",
			message: "Date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeConfig(t, "time = [\n"))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
}
