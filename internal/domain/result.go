package domain

import "github.com/google/uuid"

// Verdict is the outcome of scoring one corpus item under one metric.
type Verdict string

const (
	VerdictCorrect Verdict = "CORRECT"
	VerdictFail    Verdict = "FAIL"
	VerdictUnknown Verdict = "UNKNOWN"
)

// UnknownDetail is the detail stream name for unrecognized items.
const UnknownDetail = "unknown"

// Detail is one audit record of the evaluation.
type Detail struct {
	Metric    string
	Wordform  string
	Reference string
	Variants  string
	Verdict   Verdict
}

// MetricResult holds the counts of a single accuracy metric.
type MetricResult struct {
	Name       string  `json:"metric"`
	Correct    int     `json:"correct"`
	Recognized int     `json:"recognized"`
	Accuracy   float64 `json:"accuracy"`
}

// RunResult aggregates one evaluation run. Metrics keep registry order.
type RunResult struct {
	RunID      uuid.UUID      `json:"run_id"`
	Total      int            `json:"total"`
	Recognized int            `json:"recognized"`
	Metrics    []MetricResult `json:"accuracy"`
}

// Coverage returns Recognized/Total, or 0 for an empty corpus.
func (r RunResult) Coverage() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Recognized) / float64(r.Total)
}

// Metric looks up the result of the named metric.
func (r RunResult) Metric(name string) (MetricResult, bool) {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return MetricResult{}, false
}

// Ratio returns correct/recognized, defined as 0 when recognized is 0.
func Ratio(correct, recognized int) float64 {
	if recognized == 0 {
		return 0
	}
	return float64(correct) / float64(recognized)
}
