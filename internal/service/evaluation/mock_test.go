package evaluation

import (
	"context"

	"github.com/heartmarshall/morpheval/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockLookuper struct {
	LookupFunc func(ctx context.Context, inputs []string) ([]domain.AnalyzedToken, error)
	calls      [][]string
}

func (m *mockLookuper) Lookup(ctx context.Context, inputs []string) ([]domain.AnalyzedToken, error) {
	m.calls = append(m.calls, append([]string(nil), inputs...))
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, inputs)
	}
	return nil, nil
}

// dictLookuper answers from a fixed table; unknown inputs get the unknown marker.
func dictLookuper(table map[string][]string) *mockLookuper {
	return &mockLookuper{
		LookupFunc: func(_ context.Context, inputs []string) ([]domain.AnalyzedToken, error) {
			out := make([]domain.AnalyzedToken, len(inputs))
			for i, in := range inputs {
				variants, ok := table[in]
				if !ok {
					variants = []string{domain.UnknownMarker + in}
				}
				out[i] = domain.AnalyzedToken{Input: in, Variants: variants}
			}
			return out, nil
		},
	}
}

type mockSink struct {
	RecordFunc func(d domain.Detail) error
	details    []domain.Detail
}

func (m *mockSink) Record(d domain.Detail) error {
	m.details = append(m.details, d)
	if m.RecordFunc != nil {
		return m.RecordFunc(d)
	}
	return nil
}

func (m *mockSink) byMetric(metric string) []domain.Detail {
	var out []domain.Detail
	for _, d := range m.details {
		if d.Metric == metric {
			out = append(out, d)
		}
	}
	return out
}
