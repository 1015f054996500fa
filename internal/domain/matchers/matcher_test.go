package matchers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredeterminedDate(t *testing.T) {
	at := time.Date(2023, 10, 31, 0, 0, 0, 0, time.Local)
	mt := NewPredeterminedDate("%Y-%m-%d %Hh%Mm", at)

	assert.Equal(t, NamePredeterminedDate, mt.Name())
	assert.Equal(t, KindPredeterminedDate, mt.Kind())

	for _, file := range []string{"foo.txt", "bar", "IMG-20231028-whatever.jpg"} {
		rep, ok := mt.Check(subject(file))
		require.True(t, ok)

		stem, _ := m.SplitFileName(file)
		assert.Equal(t, "2023-10-31 00h00m "+stem, rep.NewFileStem)
	}
}

func TestMetadata(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "scan.pdf")
	require.NoError(t, os.WriteFile(file, []byte("pdf"), 0o600))

	modified := time.Date(2021, 5, 6, 7, 8, 9, 0, time.Local)
	require.NoError(t, os.Chtimes(file, modified, modified))

	t.Run("modified", func(t *testing.T) {
		mt := NewMetadataModified(DefaultDateTimeFormat)
		assert.Equal(t, NameMetadataModified, mt.Name())

		rep, ok := mt.Check(m.Path(file))
		require.True(t, ok)
		assert.Equal(t, "2021-05-06 07h08m09 scan", rep.NewFileStem)
		assert.Equal(t, "pdf", rep.Extension)
	})

	t.Run("created", func(t *testing.T) {
		mt := NewMetadataCreated(DefaultDateFormat)
		assert.Equal(t, NameMetadataCreated, mt.Name())

		// Birth time is not recorded on every platform or filesystem.
		rep, ok := mt.Check(m.Path(file))
		if ok {
			assert.Regexp(t, `^\d{4}-\d{2}-\d{2} scan$`, rep.NewFileStem)
		}
	})

	t.Run("missing file yields nothing", func(t *testing.T) {
		for _, mt := range []Matcher{NewMetadataCreated(DefaultDateFormat), NewMetadataModified(DefaultDateFormat)} {
			_, ok := mt.Check(m.Path(filepath.Join(dir, "missing.pdf")))
			assert.False(t, ok)
		}
	})
}

func TestIsReserved(t *testing.T) {
	assert.True(t, IsReserved("predetermined_date today"))
	assert.True(t, IsReserved("metadata created"))
	assert.True(t, IsReserved("metadata modified"))
	assert.False(t, IsReserved("whatsapp"))
}

func TestChain(t *testing.T) {
	first := mustPattern(t, "first", dateRestExpr)
	second := mustPattern(t, "second", dateRestExpr, WithFormat("%Y"))

	chain, err := NewChain(first, second)
	require.NoError(t, err)
	assert.Equal(t, 2, chain.Len())

	names := []string{}
	for _, mt := range chain.Matchers() {
		names = append(names, mt.Name())
	}

	assert.Equal(t, []string{"first", "second"}, names)

	err = chain.Add(mustPattern(t, "first", startEndExpr))
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, 2, chain.Len())

	_, err = NewChain(first, first)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestAlternatives(t *testing.T) {
	first := mustPattern(t, "first", dateRestExpr)
	same := mustPattern(t, "same", dateRestExpr)
	year := mustPattern(t, "year", dateRestExpr, WithFormat("%Y"))
	never := mustPattern(t, "never", startEndExpr)
	today := NewPredeterminedDate(DefaultDateFormat, time.Date(2020, 1, 2, 0, 0, 0, 0, time.Local))

	path := subject("20231028-foo.jpg")

	proposed, ok := first.Check(path)
	require.True(t, ok)

	alternatives := Alternatives([]Matcher{first, year, same, never, today}, path, proposed.NewFileStem)
	require.Len(t, alternatives, 2)

	assert.Equal(t, "year", alternatives[0].Matcher)
	assert.Equal(t, "2023 foo", alternatives[0].Replacement.NewFileStem)
	assert.Equal(t, NamePredeterminedDate, alternatives[1].Matcher)
	assert.Equal(t, "2020-01-02 20231028-foo", alternatives[1].Replacement.NewFileStem)
}
