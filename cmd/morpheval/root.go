package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/morpheval/internal/app"
	"github.com/heartmarshall/morpheval/internal/config"
)

type runFunc func(ctx context.Context, cfg *config.Config) error

type cliFlags struct {
	configPath   string
	analyzer     string
	translit     string
	corpus       string
	format       string
	detailsDir   string
	logLevel     string
	metrics      []string
	dropFirstRow bool
	normalizeNFC bool
}

// newRootCmd builds the morpheval command. run receives the merged,
// validated configuration.
func newRootCmd(run runFunc) *cobra.Command {
	var f cliFlags

	cmd := &cobra.Command{
		Use:           "morpheval",
		Short:         "Evaluate an HFST morphological analyzer against a gold corpus",
		Version:       app.BuildVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg, &f)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.analyzer, "hfst-analyzer", "H", "", "analyzer transducer path")
	fs.StringVarP(&f.corpus, "csv", "i", "", "corpus CSV path, or STDIN")
	fs.StringVarP(&f.format, "output-format", "f", "", "output format: table, json or json_indent")
	fs.BoolVar(&f.dropFirstRow, "drop-first-csv-row", false, "skip the first corpus row")
	fs.StringVar(&f.translit, "hfst-translit", "", "stem transliteration transducer path")
	fs.StringVar(&f.detailsDir, "details-dir", "", "write per-metric detail CSVs to this directory")
	fs.StringArrayVar(&f.metrics, "metric", nil, "metric to report (repeatable, default: all)")
	fs.BoolVar(&f.normalizeNFC, "normalize-nfc", false, "NFC-normalize corpus fields")
	fs.StringVar(&f.configPath, "config", "", "path to YAML config file")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")

	return cmd
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config, f *cliFlags) {
	fs := cmd.Flags()
	if fs.Changed("hfst-analyzer") {
		cfg.Analyzer.AnalyzerPath = f.analyzer
	}
	if fs.Changed("hfst-translit") {
		cfg.Analyzer.TranslitPath = f.translit
	}
	if fs.Changed("csv") {
		cfg.Corpus.Path = f.corpus
	}
	if fs.Changed("drop-first-csv-row") {
		cfg.Corpus.DropFirstRow = f.dropFirstRow
	}
	if fs.Changed("normalize-nfc") {
		cfg.Corpus.NormalizeNFC = f.normalizeNFC
	}
	if fs.Changed("output-format") {
		cfg.Report.Format = f.format
	}
	if fs.Changed("details-dir") {
		cfg.Report.DetailsDir = f.detailsDir
	}
	if fs.Changed("metric") {
		cfg.Report.Metrics = f.metrics
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
}
