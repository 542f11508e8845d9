package evaluation

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/morpheval/internal/domain"
)

// Metric names of the default registry, in report order.
const (
	MetricExact         = "exact_match"
	MetricStem          = "stem_match"
	MetricPOS           = "pos_match"
	MetricStemAndPOS    = "stem_and_pos_match"
	MetricUnorderedTags = "unordered_tags_match"
)

// MatchFunc compares a reference analysis with one candidate analysis.
// Implementations must be pure.
type MatchFunc func(reference, candidate string) bool

// Metric is a named accuracy predicate.
type Metric struct {
	Name  string
	Match MatchFunc
}

// Registry is an ordered, read-only set of metrics. Iteration order is
// registration order and is the row order of reports.
type Registry struct {
	metrics []Metric
	byName  map[string]int
}

// NewRegistry builds a registry from metrics. Names must be unique and non-empty.
func NewRegistry(metrics ...Metric) (*Registry, error) {
	r := &Registry{
		metrics: make([]Metric, 0, len(metrics)),
		byName:  make(map[string]int, len(metrics)),
	}
	for _, m := range metrics {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			return nil, fmt.Errorf("metric name must not be empty")
		}
		if m.Match == nil {
			return nil, fmt.Errorf("metric %q has no match function", name)
		}
		if _, ok := r.byName[name]; ok {
			return nil, fmt.Errorf("duplicate metric %q", name)
		}
		r.byName[name] = len(r.metrics)
		r.metrics = append(r.metrics, Metric{Name: name, Match: m.Match})
	}
	return r, nil
}

// DefaultRegistry returns the five built-in metrics.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		Metric{Name: MetricExact, Match: MatchExact},
		Metric{Name: MetricStem, Match: MatchStem},
		Metric{Name: MetricPOS, Match: MatchPOS},
		Metric{Name: MetricStemAndPOS, Match: MatchStemAndPOS},
		Metric{Name: MetricUnorderedTags, Match: MatchUnorderedTags},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Metrics returns the registered metrics in order.
func (r *Registry) Metrics() []Metric {
	return append([]Metric(nil), r.metrics...)
}

// Names returns the registered metric names in order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.metrics))
	for i, m := range r.metrics {
		names[i] = m.Name
	}
	return names
}

// Len returns the number of registered metrics.
func (r *Registry) Len() int {
	return len(r.metrics)
}

// Get looks a metric up by name.
func (r *Registry) Get(name string) (Metric, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Metric{}, false
	}
	return r.metrics[i], true
}

// Select returns a registry narrowed to names, keeping the order of r.
// An empty names list selects everything.
func (r *Registry) Select(names []string) (*Registry, error) {
	if len(names) == 0 {
		return r, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if _, ok := r.byName[n]; !ok {
			return nil, domain.NewValidationError("metrics",
				fmt.Sprintf("unknown metric %q (known: %s)", n, strings.Join(r.Names(), ", ")))
		}
		want[n] = true
	}
	var selected []Metric
	for _, m := range r.metrics {
		if want[m.Name] {
			selected = append(selected, m)
		}
	}
	return NewRegistry(selected...)
}

// MatchExact compares full analysis strings.
func MatchExact(reference, candidate string) bool {
	return reference == candidate
}

// MatchStem compares stems. Analyses without a stem never match.
func MatchStem(reference, candidate string) bool {
	s1, err := domain.Stem(reference)
	if err != nil {
		return false
	}
	s2, err := domain.Stem(candidate)
	if err != nil {
		return false
	}
	return s1 == s2
}

// MatchPOS compares the first tag after the stem.
func MatchPOS(reference, candidate string) bool {
	p1, err := domain.POS(reference)
	if err != nil {
		return false
	}
	p2, err := domain.POS(candidate)
	if err != nil {
		return false
	}
	return p1 == p2
}

// MatchStemAndPOS requires both MatchStem and MatchPOS.
func MatchStemAndPOS(reference, candidate string) bool {
	return MatchStem(reference, candidate) && MatchPOS(reference, candidate)
}

// MatchUnorderedTags requires equal stems and equal tag sets, ignoring tag order.
func MatchUnorderedTags(reference, candidate string) bool {
	if !MatchStem(reference, candidate) {
		return false
	}
	return sameSet(domain.Tags(reference), domain.Tags(candidate))
}

func sameSet(a, b []string) bool {
	sa := make(map[string]struct{}, len(a))
	for _, x := range a {
		sa[x] = struct{}{}
	}
	sb := make(map[string]struct{}, len(b))
	for _, x := range b {
		if _, ok := sa[x]; !ok {
			return false
		}
		sb[x] = struct{}{}
	}
	return len(sa) == len(sb)
}
