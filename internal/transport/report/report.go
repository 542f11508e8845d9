// Package report renders evaluation results for people (table) or tools (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/heartmarshall/morpheval/internal/domain"
)

// Format selects the report presentation.
type Format string

const (
	FormatTable      Format = "table"
	FormatJSON       Format = "json"
	FormatJSONIndent Format = "json_indent"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTable, FormatJSON, FormatJSONIndent}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", domain.NewValidationError("report.format",
		fmt.Sprintf("unknown output format %q (want table, json or json_indent)", s))
}

type metricRecord struct {
	Metric     string  `json:"metric"`
	Correct    int     `json:"correct"`
	Recognized int     `json:"recognized"`
	Accuracy   float64 `json:"accuracy"`
}

type record struct {
	RunID      string         `json:"run_id"`
	Total      int            `json:"total"`
	Recognized int            `json:"recognized"`
	Coverage   float64        `json:"coverage"`
	Accuracy   []metricRecord `json:"accuracy"`
}

// Render writes res to w in the given format.
func Render(w io.Writer, res domain.RunResult, f Format) error {
	switch f {
	case FormatTable:
		return renderTable(w, res)
	case FormatJSON, FormatJSONIndent:
		return renderJSON(w, res, f == FormatJSONIndent)
	default:
		_, err := ParseFormat(string(f))
		return err
	}
}

func renderTable(w io.Writer, res domain.RunResult) error {
	tw := table.NewWriter()
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)

	tw.AppendHeader(table.Row{"metric", "value", "absolute"})
	tw.AppendRow(table.Row{"coverage", percent(res.Coverage()), fraction(res.Recognized, res.Total)})
	for _, m := range res.Metrics {
		tw.AppendRow(table.Row{m.Name, percent(m.Accuracy), fraction(m.Correct, m.Recognized)})
	}

	_, err := fmt.Fprintf(w, "%s\n\n", tw.Render())
	return err
}

func renderJSON(w io.Writer, res domain.RunResult, indent bool) error {
	rec := record{
		RunID:      res.RunID.String(),
		Total:      res.Total,
		Recognized: res.Recognized,
		Coverage:   res.Coverage(),
		Accuracy:   make([]metricRecord, 0, len(res.Metrics)),
	}
	for _, m := range res.Metrics {
		rec.Accuracy = append(rec.Accuracy, metricRecord{
			Metric:     m.Name,
			Correct:    m.Correct,
			Recognized: m.Recognized,
			Accuracy:   m.Accuracy,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(rec)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

func fraction(n, d int) string {
	return fmt.Sprintf("%d/%d", n, d)
}
