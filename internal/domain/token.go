package domain

import "strings"

// UnknownMarker is what the analyzer emits in place of an analysis
// for a wordform it does not recognize.
const UnknownMarker = "*"

// AnalyzedToken is one analyzer response for one submitted wordform.
// Variants keep analyzer output order and are never empty.
type AnalyzedToken struct {
	Input    string
	Variants []string
}

// IsUnknown reports whether the analyzer failed to recognize the input.
func (t AnalyzedToken) IsUnknown() bool {
	return len(t.Variants) == 0 || strings.Contains(t.Variants[0], UnknownMarker)
}

// JoinedVariants returns the variants joined by "/", as in the apertium stream.
func (t AnalyzedToken) JoinedVariants() string {
	return strings.Join(t.Variants, "/")
}

func (t AnalyzedToken) String() string {
	return t.Input + " -> " + t.JoinedVariants()
}

// CorpusItem is one labeled row of the evaluation corpus.
type CorpusItem struct {
	Wordform  string
	Reference string
}

// SplitCorpus returns the wordform and reference columns of items.
func SplitCorpus(items []CorpusItem) (wordforms, references []string) {
	wordforms = make([]string, len(items))
	references = make([]string, len(items))
	for i, it := range items {
		wordforms[i] = it.Wordform
		references[i] = it.Reference
	}
	return wordforms, references
}
