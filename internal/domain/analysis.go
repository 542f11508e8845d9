package domain

import (
	"fmt"
	"regexp"
)

var (
	// stemRe captures the text before the first tag, skipping one optional
	// leading tag: "stem<tag>..." or "tag>stem<tag>...".
	stemRe = regexp.MustCompile(`>?([^<>]+)<`)
	// posRe captures the first tag that follows a stem.
	posRe = regexp.MustCompile(`[^<>\n]+<([^<>]+)>`)
	tagRe = regexp.MustCompile(`<[^<>]+>`)
)

// StemSpan returns the byte offsets of the stem inside analysis.
func StemSpan(analysis string) (start, end int, err error) {
	loc := stemRe.FindStringSubmatchIndex(analysis)
	if loc == nil {
		return 0, 0, fmt.Errorf("%w: no stem in %q", ErrMalformedAnalysis, analysis)
	}
	return loc[2], loc[3], nil
}

// Stem returns the lexical root of an analysis string such as "car<n><pl>".
func Stem(analysis string) (string, error) {
	start, end, err := StemSpan(analysis)
	if err != nil {
		return "", err
	}
	return analysis[start:end], nil
}

// POS returns the name of the first tag following the stem, without brackets.
func POS(analysis string) (string, error) {
	m := posRe.FindStringSubmatch(analysis)
	if m == nil {
		return "", fmt.Errorf("%w: no part-of-speech tag in %q", ErrMalformedAnalysis, analysis)
	}
	return m[1], nil
}

// Tags returns every bracketed tag of analysis in order of appearance, brackets included.
func Tags(analysis string) []string {
	return tagRe.FindAllString(analysis, -1)
}

// ValidateAnalysis reports whether analysis has both a stem and a part-of-speech tag.
func ValidateAnalysis(analysis string) error {
	if _, err := Stem(analysis); err != nil {
		return err
	}
	_, err := POS(analysis)
	return err
}
