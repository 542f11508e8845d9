package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares corpus text for comparison with analyzer output:
//   - trims leading/trailing whitespace
//   - composes the text to Unicode NFC
//
// Case is preserved. Stems and tags are case-sensitive for the analyzer.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return norm.NFC.String(text)
}
