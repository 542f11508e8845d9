// Package evaluation scores a morphological analyzer against a labeled corpus.
package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/morpheval/internal/domain"
	"github.com/heartmarshall/morpheval/pkg/ctxutil"
)

type lookuper interface {
	Lookup(ctx context.Context, inputs []string) ([]domain.AnalyzedToken, error)
}

// Service runs the evaluation pipeline: alias normalization, analyzer lookup,
// optional stem transliteration and scoring.
type Service struct {
	log      *slog.Logger
	analyzer lookuper
	translit lookuper
	metrics  *Registry
	sink     DetailSink
}

// Option configures optional pipeline stages.
type Option func(*Service)

// WithTransliterator enables the stem transliteration pass.
func WithTransliterator(tr lookuper) Option {
	return func(s *Service) { s.translit = tr }
}

// WithDetailSink enables per-item detail logging.
func WithDetailSink(sink DetailSink) Option {
	return func(s *Service) { s.sink = sink }
}

// NewService creates a new evaluation service.
func NewService(log *slog.Logger, analyzer lookuper, metrics *Registry, opts ...Option) *Service {
	s := &Service{
		log:      log.With("service", "evaluation"),
		analyzer: analyzer,
		metrics:  metrics,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run evaluates items in a single batch pass. Reference analyses of items
// are alias-normalized in place.
func (s *Service) Run(ctx context.Context, items []domain.CorpusItem) (domain.RunResult, error) {
	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	log := s.log.With(slog.String("run_id", runID.String()))
	start := time.Now()

	wordforms, references := domain.SplitCorpus(items)
	NormalizeAliases(references)
	for i := range items {
		items[i].Reference = references[i]
	}
	log.InfoContext(ctx, "corpus prepared", slog.Int("items", len(items)))

	predicted, err := s.analyzer.Lookup(ctx, wordforms)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("analyzer lookup: %w", err)
	}
	log.InfoContext(ctx, "analyzer finished", slog.Int("tokens", len(predicted)))

	if s.translit != nil {
		n, err := Transliterate(ctx, log, predicted, s.translit)
		if err != nil {
			return domain.RunResult{}, err
		}
		log.InfoContext(ctx, "stems transliterated", slog.Int("stems", n))
	}

	res, err := Evaluate(references, predicted, s.metrics, s.sink)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("evaluate: %w", err)
	}
	res.RunID = runID

	log.InfoContext(ctx, "evaluation completed",
		slog.Int("total", res.Total),
		slog.Int("recognized", res.Recognized),
		slog.Int("metrics", len(res.Metrics)),
		slog.Duration("duration", time.Since(start)),
	)
	return res, nil
}
