package evaluation

import (
	"fmt"

	"github.com/heartmarshall/morpheval/internal/domain"
)

// DetailSink receives one audit record per scored (item, metric) pair and
// one per unrecognized item.
type DetailSink interface {
	Record(d domain.Detail) error
}

// Evaluate scores predicted tokens against reference analyses, paired by
// position. An item is correct for a metric if at least one of its variants
// matches. Unknown items count towards Total only. sink may be nil.
func Evaluate(reference []string, predicted []domain.AnalyzedToken, metrics *Registry, sink DetailSink) (domain.RunResult, error) {
	if len(reference) != len(predicted) {
		return domain.RunResult{}, fmt.Errorf("%w: reference count %d != predicted count %d",
			domain.ErrShapeMismatch, len(reference), len(predicted))
	}
	for i, ref := range reference {
		if err := domain.ValidateAnalysis(ref); err != nil {
			return domain.RunResult{}, fmt.Errorf("reference row %d: %w", i+1, err)
		}
	}

	ms := metrics.Metrics()
	res := domain.RunResult{
		Total:   len(reference),
		Metrics: make([]domain.MetricResult, len(ms)),
	}
	for i, m := range ms {
		res.Metrics[i].Name = m.Name
	}

	for i, ref := range reference {
		pred := predicted[i]
		if pred.IsUnknown() {
			if err := record(sink, domain.UnknownDetail, pred, ref, domain.VerdictUnknown); err != nil {
				return domain.RunResult{}, err
			}
			continue
		}
		res.Recognized++

		for j, m := range ms {
			res.Metrics[j].Recognized++
			verdict := domain.VerdictFail
			for _, v := range pred.Variants {
				if m.Match(ref, v) {
					verdict = domain.VerdictCorrect
					res.Metrics[j].Correct++
					break
				}
			}
			if err := record(sink, m.Name, pred, ref, verdict); err != nil {
				return domain.RunResult{}, err
			}
		}
	}

	for j := range res.Metrics {
		res.Metrics[j].Accuracy = domain.Ratio(res.Metrics[j].Correct, res.Metrics[j].Recognized)
	}
	return res, nil
}

func record(sink DetailSink, metric string, pred domain.AnalyzedToken, ref string, verdict domain.Verdict) error {
	if sink == nil {
		return nil
	}
	err := sink.Record(domain.Detail{
		Metric:    metric,
		Wordform:  pred.Input,
		Reference: ref,
		Variants:  pred.JoinedVariants(),
		Verdict:   verdict,
	})
	if err != nil {
		return fmt.Errorf("record %s detail for %q: %w", metric, pred.Input, err)
	}
	return nil
}
