package details

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/morpheval/internal/domain"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestDirSink_Record(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "details")
	sink, err := NewDirSink(dir)
	require.NoError(t, err)

	require.NoError(t, sink.Record(domain.Detail{
		Metric: "exact_match", Wordform: "cars", Reference: "car<n><pl>",
		Variants: "car<n><pl>/cars<n><pl>", Verdict: domain.VerdictCorrect,
	}))
	require.NoError(t, sink.Record(domain.Detail{
		Metric: "exact_match", Wordform: "went", Reference: "go<vblex><past>",
		Variants: "went<n><sg>", Verdict: domain.VerdictFail,
	}))
	require.NoError(t, sink.Record(domain.Detail{
		Metric: domain.UnknownDetail, Wordform: "xyz", Reference: "xyz<n>",
		Variants: "*xyz", Verdict: domain.VerdictUnknown,
	}))
	require.NoError(t, sink.Close())

	assert.Equal(t, [][]string{
		{"cars", "car<n><pl>", "car<n><pl>/cars<n><pl>", "CORRECT"},
		{"went", "go<vblex><past>", "went<n><sg>", "FAIL"},
	}, readRows(t, filepath.Join(dir, "exact_match.csv")))
	assert.Equal(t, [][]string{
		{"xyz", "xyz<n>", "*xyz", "UNKNOWN"},
	}, readRows(t, filepath.Join(dir, "unknown.csv")))
}

func TestNewDirSink_ClearsPreviousRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stale := filepath.Join(dir, "stem_match.csv")
	require.NoError(t, os.WriteFile(stale, []byte("old,row,x,FAIL\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "keep"), 0o755))

	sink, err := NewDirSink(dir)
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale file must be removed")
	_, err = os.Stat(filepath.Join(dir, "keep"))
	assert.NoError(t, err)
	assert.Equal(t, dir, sink.Dir())
}

func TestDirSink_CloseIdempotent(t *testing.T) {
	t.Parallel()

	sink, err := NewDirSink(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, sink.Record(domain.Detail{Metric: "pos_match", Verdict: domain.VerdictFail}))
	require.NoError(t, sink.Close())
	require.NoError(t, sink.Close())
}
