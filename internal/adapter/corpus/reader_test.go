package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/morpheval/internal/domain"
)

func TestRead(t *testing.T) {
	t.Parallel()

	in := "cats,cat<n><pl>\nwent,go<vblex><past>\n\n\"a,b\",\"a,b<np>\"\n"
	items, err := Read(strings.NewReader(in), Options{})
	require.NoError(t, err)

	assert.Equal(t, []domain.CorpusItem{
		{Wordform: "cats", Reference: "cat<n><pl>"},
		{Wordform: "went", Reference: "go<vblex><past>"},
		{Wordform: "a,b", Reference: "a,b<np>"},
	}, items)
}

func TestRead_DropFirstRow(t *testing.T) {
	t.Parallel()

	in := "wordform,analysis\ncats,cat<n><pl>\n"
	items, err := Read(strings.NewReader(in), Options{DropFirstRow: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "cats", items[0].Wordform)

	items, err = Read(strings.NewReader(""), Options{DropFirstRow: true})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRead_WrongColumnCount(t *testing.T) {
	t.Parallel()

	_, err := Read(strings.NewReader("cats,cat<n><pl>,extra\n"), Options{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "read row")
}

func TestRead_NormalizeNFC(t *testing.T) {
	t.Parallel()

	in := " \u0435\u0308лка ,\u0435\u0308лка<n><f><sg><nom>\n"
	items, err := Read(strings.NewReader(in), Options{NormalizeNFC: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "\u0451лка", items[0].Wordform)
	assert.Equal(t, "\u0451лка<n><f><sg><nom>", items[0].Reference)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.csv")
	require.NoError(t, os.WriteFile(path, []byte("cats,cat<n><pl>\n"), 0o644))

	items, err := ReadFile(path, nil, Options{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestReadFile_Stdin(t *testing.T) {
	t.Parallel()

	items, err := ReadFile(Stdin, strings.NewReader("cats,cat<n><pl>\n"), Options{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestReadFile_NotFound(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"), nil, Options{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
