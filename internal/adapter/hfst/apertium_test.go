package hfst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/morpheval/internal/domain"
)

func TestParseApertium(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		out  string
		want []domain.AnalyzedToken
	}{
		{
			name: "single analysis",
			out:  "^cat/cat<n><sg>$",
			want: []domain.AnalyzedToken{{Input: "cat", Variants: []string{"cat<n><sg>"}}},
		},
		{
			name: "variants keep order",
			out:  "^dogs/dog<n><pl>/dogs<n><pl>$",
			want: []domain.AnalyzedToken{{Input: "dogs", Variants: []string{"dog<n><pl>", "dogs<n><pl>"}}},
		},
		{
			name: "unknown token",
			out:  "^xyz/*xyz$",
			want: []domain.AnalyzedToken{{Input: "xyz", Variants: []string{"*xyz"}}},
		},
		{
			name: "token without analyses becomes unknown",
			out:  "^xyz$",
			want: []domain.AnalyzedToken{{Input: "xyz", Variants: []string{"*xyz"}}},
		},
		{
			name: "blank lines and diagnostics ignored",
			out:  "warning: something\n^cat/cat<n><sg>$\n\n\n^xyz/*xyz$\n\n",
			want: []domain.AnalyzedToken{
				{Input: "cat", Variants: []string{"cat<n><sg>"}},
				{Input: "xyz", Variants: []string{"*xyz"}},
			},
		},
		{
			name: "empty output",
			out:  "",
			want: []domain.AnalyzedToken{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseApertium(tt.out)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].Input, got[i].Input)
				assert.Equal(t, tt.want[i].Variants, got[i].Variants)
			}
		})
	}
}
