package hfst

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/heartmarshall/morpheval/internal/domain"
	"github.com/heartmarshall/morpheval/pkg/ctxutil"
)

// DefaultLookupBin is the lookup executable used when none is configured.
const DefaultLookupBin = "hfst-lookup"

// Transducer is one compiled .hfst/.hfstol file queried through hfst-lookup.
type Transducer struct {
	log  *slog.Logger
	bin  string
	path string
}

// NewTransducer checks that path is a regular file and returns a Transducer
// that queries it with the bin executable.
func NewTransducer(log *slog.Logger, bin, path string) (*Transducer, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("transducer %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("transducer %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("transducer %s is a directory: %w", path, domain.ErrNotFound)
	}
	if strings.TrimSpace(bin) == "" {
		bin = DefaultLookupBin
	}
	return &Transducer{
		log:  log.With("transducer", path),
		bin:  bin,
		path: path,
	}, nil
}

// Path returns the transducer file path.
func (t *Transducer) Path() string {
	return t.path
}

// Lookup submits all inputs in a single hfst-lookup invocation and returns
// one token per input, in submission order. The process is drained to
// completion before parsing. A non-zero exit fails the whole batch.
func (t *Transducer) Lookup(ctx context.Context, inputs []string) ([]domain.AnalyzedToken, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	cmd := exec.CommandContext(ctx, t.bin, "-q", "--output-format", "apertium", t.path)
	cmd.Stdin = strings.NewReader(strings.Join(inputs, "\n"))
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	log := t.log
	if runID, ok := ctxutil.RunIDFromCtx(ctx); ok {
		log = log.With(slog.String("run_id", runID.String()))
	}
	log.DebugContext(ctx, "lookup started", slog.Int("inputs", len(inputs)))
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &domain.LookupError{
				Command:  t.bin,
				ExitCode: exitErr.ExitCode(),
				Output:   out.String(),
			}
		}
		return nil, fmt.Errorf("run %s: %w", t.bin, err)
	}

	tokens := ParseApertium(out.String())
	if len(tokens) != len(inputs) {
		return nil, fmt.Errorf("%w: submitted %d inputs to %s, parsed %d tokens",
			domain.ErrShapeMismatch, len(inputs), t.path, len(tokens))
	}
	log.DebugContext(ctx, "lookup finished", slog.Int("tokens", len(tokens)))
	return tokens, nil
}
