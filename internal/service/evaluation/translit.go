package evaluation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/morpheval/internal/domain"
)

// Transliterate rewrites the stem of every variant of every recognized token
// through tr. Distinct stems are collected first and sent in one Lookup call;
// each variant then expands into one variant per transliterated stem form.
// Unknown tokens are left untouched. It returns the number of distinct stems.
func Transliterate(ctx context.Context, log *slog.Logger, tokens []domain.AnalyzedToken, tr lookuper) (int, error) {
	var stems []string
	seen := make(map[string]bool)
	for _, tok := range tokens {
		if tok.IsUnknown() {
			continue
		}
		for _, v := range tok.Variants {
			stem, err := domain.Stem(v)
			if err != nil {
				return 0, fmt.Errorf("transliterate %q: %w", tok.Input, err)
			}
			if !seen[stem] {
				seen[stem] = true
				stems = append(stems, stem)
			}
		}
	}
	if len(stems) == 0 {
		return 0, nil
	}

	res, err := tr.Lookup(ctx, stems)
	if err != nil {
		return 0, fmt.Errorf("transliteration lookup: %w", err)
	}
	if len(res) != len(stems) {
		return 0, fmt.Errorf("%w: transliterated %d of %d stems", domain.ErrShapeMismatch, len(res), len(stems))
	}

	forms := make(map[string][]string, len(stems))
	for i, stem := range stems {
		if res[i].IsUnknown() {
			log.WarnContext(ctx, "stem not transliterated, keeping original", slog.String("stem", stem))
			forms[stem] = []string{stem}
			continue
		}
		forms[stem] = res[i].Variants
	}

	for i := range tokens {
		if tokens[i].IsUnknown() {
			continue
		}
		variants := make([]string, 0, len(tokens[i].Variants))
		for _, v := range tokens[i].Variants {
			start, end, err := domain.StemSpan(v)
			if err != nil {
				return 0, fmt.Errorf("transliterate %q: %w", tokens[i].Input, err)
			}
			for _, f := range forms[v[start:end]] {
				variants = append(variants, v[:start]+f+v[end:])
			}
		}
		tokens[i].Variants = variants
	}
	return len(stems), nil
}
