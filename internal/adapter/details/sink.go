// Package details writes per-item evaluation verdicts as CSV audit logs,
// one file per metric plus one for unrecognized items.
package details

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/morpheval/internal/domain"
)

type logFile struct {
	f *os.File
	w *csv.Writer
}

// DirSink appends detail rows to <dir>/<metric>.csv.
type DirSink struct {
	dir   string
	files map[string]*logFile
}

// NewDirSink creates dir if needed and removes the files a previous run left in it.
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create details dir: %w", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read details dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return nil, fmt.Errorf("clear details dir: %w", err)
		}
	}
	return &DirSink{dir: dir, files: make(map[string]*logFile)}, nil
}

// Dir returns the directory the sink writes to.
func (s *DirSink) Dir() string {
	return s.dir
}

// Record appends (wordform, reference, variants, verdict) to the metric's file.
func (s *DirSink) Record(d domain.Detail) error {
	lf, err := s.file(d.Metric)
	if err != nil {
		return err
	}
	return lf.w.Write([]string{d.Wordform, d.Reference, d.Variants, string(d.Verdict)})
}

func (s *DirSink) file(metric string) (*logFile, error) {
	if lf, ok := s.files[metric]; ok {
		return lf, nil
	}
	name := metric
	if !strings.HasSuffix(name, ".csv") {
		name += ".csv"
	}
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open details file: %w", err)
	}
	lf := &logFile{f: f, w: csv.NewWriter(f)}
	s.files[metric] = lf
	return lf, nil
}

// Close flushes and closes every file opened by the sink.
func (s *DirSink) Close() error {
	var errs []error
	for metric, lf := range s.files {
		lf.w.Flush()
		if err := lf.w.Error(); err != nil {
			errs = append(errs, fmt.Errorf("flush %s details: %w", metric, err))
		}
		if err := lf.f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s details: %w", metric, err))
		}
	}
	s.files = make(map[string]*logFile)
	return errors.Join(errs...)
}
