// Package corpus reads the labeled evaluation corpus: two-column CSV rows
// of (wordform, reference analysis).
package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/heartmarshall/morpheval/internal/domain"
)

// Stdin is the path value that selects standard input.
const Stdin = "STDIN"

// Options controls corpus parsing.
type Options struct {
	// DropFirstRow skips a header row.
	DropFirstRow bool
	// NormalizeNFC trims both columns and composes them to Unicode NFC.
	NormalizeNFC bool
}

// Read parses corpus rows from r.
func Read(r io.Reader, opts Options) ([]domain.CorpusItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	if opts.DropFirstRow {
		if _, err := reader.Read(); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, fmt.Errorf("read header: %w", err)
		}
	}

	var items []domain.CorpusItem
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		item := domain.CorpusItem{Wordform: record[0], Reference: record[1]}
		if opts.NormalizeNFC {
			item.Wordform = domain.NormalizeText(item.Wordform)
			item.Reference = domain.NormalizeText(item.Reference)
		}
		items = append(items, item)
	}
	return items, nil
}

// ReadFile parses the corpus at path. The Stdin path reads from stdin.
func ReadFile(path string, stdin io.Reader, opts Options) ([]domain.CorpusItem, error) {
	if path == "" || path == Stdin {
		return Read(stdin, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("corpus %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	items, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("corpus %s: %w", path, err)
	}
	return items, nil
}
