// Command morpheval measures the accuracy of an HFST morphological analyzer
// against a gold-standard corpus of (wordform, analysis) pairs.
//
// Flags:
//
//	-H, --hfst-analyzer       analyzer transducer (required)
//	-i, --csv                 corpus CSV path or STDIN (default: STDIN)
//	-f, --output-format       table, json or json_indent (default: table)
//	    --drop-first-csv-row  skip the corpus header row
//	    --hfst-translit       stem transliteration transducer
//	    --details-dir         directory for per-metric detail CSVs
//	    --metric              metric to report, repeatable (default: all)
//	    --normalize-nfc       NFC-normalize corpus fields
//	    --config              path to YAML config file
//	    --log-level           debug, info, warn or error
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/heartmarshall/morpheval/internal/app"
	"github.com/heartmarshall/morpheval/internal/config"
)

func main() {
	cmd := newRootCmd(func(ctx context.Context, cfg *config.Config) error {
		logger := app.NewLogger(cfg.Log)
		return app.Run(ctx, cfg, logger, os.Stdin, os.Stdout)
	})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("evaluation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
