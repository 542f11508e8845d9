package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/morpheval/internal/adapter/corpus"
	"github.com/heartmarshall/morpheval/internal/adapter/details"
	"github.com/heartmarshall/morpheval/internal/adapter/hfst"
	"github.com/heartmarshall/morpheval/internal/config"
	"github.com/heartmarshall/morpheval/internal/service/evaluation"
	"github.com/heartmarshall/morpheval/internal/transport/report"
)

// Run wires the evaluation pipeline from a validated configuration and
// writes the report to stdout. stdin is read when the corpus path is STDIN.
//
// Transducer paths, the output format and metric names are checked before
// any corpus input is consumed. The details directory is cleared only once
// the corpus has been read.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdin io.Reader, stdout io.Writer) (err error) {
	logger.Info("starting evaluation",
		slog.String("version", BuildVersion()),
		slog.String("analyzer", cfg.Analyzer.AnalyzerPath),
		slog.String("corpus", cfg.Corpus.Path),
	)

	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}

	metrics, err := evaluation.DefaultRegistry().Select(cfg.Report.Metrics)
	if err != nil {
		return err
	}

	analyzer, err := hfst.NewTransducer(logger, cfg.Analyzer.LookupBin, cfg.Analyzer.AnalyzerPath)
	if err != nil {
		return fmt.Errorf("analyzer: %w", err)
	}

	var opts []evaluation.Option
	if cfg.Analyzer.TranslitPath != "" {
		translit, err := hfst.NewTransducer(logger, cfg.Analyzer.LookupBin, cfg.Analyzer.TranslitPath)
		if err != nil {
			return fmt.Errorf("transliterator: %w", err)
		}
		opts = append(opts, evaluation.WithTransliterator(translit))
	}

	items, err := corpus.ReadFile(cfg.Corpus.Path, stdin, corpus.Options{
		DropFirstRow: cfg.Corpus.DropFirstRow,
		NormalizeNFC: cfg.Corpus.NormalizeNFC,
	})
	if err != nil {
		return fmt.Errorf("corpus: %w", err)
	}

	if cfg.Report.DetailsDir != "" {
		sink, serr := details.NewDirSink(cfg.Report.DetailsDir)
		if serr != nil {
			return fmt.Errorf("details: %w", serr)
		}
		defer func() {
			if cerr := sink.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("details: %w", cerr)
			}
		}()
		opts = append(opts, evaluation.WithDetailSink(sink))
		logger.Info("logging details", slog.String("dir", sink.Dir()))
	}

	svc := evaluation.NewService(logger, analyzer, metrics, opts...)
	res, err := svc.Run(ctx, items)
	if err != nil {
		return err
	}

	return report.Render(stdout, res, format)
}
