// Package hfst runs hfst-lookup transducers and parses their apertium-format output.
package hfst

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/morpheval/internal/domain"
)

// apertiumRe matches every "^...$" span with no nested "^" or "$".
var apertiumRe = regexp.MustCompile(`\^([^\^\$]+)\$`)

// ParseApertium turns hfst-lookup output in the apertium convention
// ("^input/cand1/cand2$") into tokens in stream order.
// Text outside the spans is ignored.
func ParseApertium(out string) []domain.AnalyzedToken {
	matches := apertiumRe.FindAllStringSubmatch(out, -1)
	tokens := make([]domain.AnalyzedToken, 0, len(matches))
	for _, m := range matches {
		parts := strings.Split(m[1], "/")
		variants := parts[1:]
		if len(variants) == 0 {
			// "^input$" carries no analysis at all.
			variants = []string{domain.UnknownMarker + parts[0]}
		}
		tokens = append(tokens, domain.AnalyzedToken{
			Input:    parts[0],
			Variants: variants,
		})
	}
	return tokens
}
