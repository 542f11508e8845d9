package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/morpheval/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration
// and normalizes list fields.
func (c *Config) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(c.Analyzer.AnalyzerPath) == "" {
		errs = append(errs, domain.FieldError{
			Field:   "analyzer.analyzer_path",
			Message: "required (set --hfst-analyzer or EVAL_ANALYZER_PATH)",
		})
	}
	if strings.TrimSpace(c.Analyzer.LookupBin) == "" {
		errs = append(errs, domain.FieldError{Field: "analyzer.lookup_bin", Message: "must not be empty"})
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, domain.FieldError{
			Field:   "log.format",
			Message: fmt.Sprintf("must be text or json (got %q)", c.Log.Format),
		})
	}

	c.Report.Metrics = ParseList(c.Report.Metrics)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ParseList trims entries, splits comma-joined entries and drops empty ones.
// An empty result is nil.
func ParseList(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, p := range strings.Split(r, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
