package evaluation

import "strings"

// TagAlias rewrites a deprecated tag spelling to its canonical form.
type TagAlias struct {
	Old string
	New string
}

// tagAliases is applied in order. Entries must not overlap or produce
// another entry's Old spelling.
var tagAliases = []TagAlias{
	{Old: "<lat>", New: "<dat>"},
	{Old: "<o>", New: "<obl>"},
}

// TagAliases returns the alias table in application order.
func TagAliases() []TagAlias {
	return append([]TagAlias(nil), tagAliases...)
}

// NormalizeAliases rewrites every alias in every reference analysis, in place.
func NormalizeAliases(references []string) {
	for i := range references {
		for _, a := range tagAliases {
			references[i] = strings.ReplaceAll(references[i], a.Old, a.New)
		}
	}
}
