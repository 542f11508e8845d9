package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAliases(t *testing.T) {
	t.Parallel()

	refs := []string{
		"кошка<n><f><sg><lat>",
		"дом<n><m><sg><o>",
		"car<n><pl>",
		"x<o><lat>",
	}
	NormalizeAliases(refs)

	assert.Equal(t, []string{
		"кошка<n><f><sg><dat>",
		"дом<n><m><sg><obl>",
		"car<n><pl>",
		"x<obl><dat>",
	}, refs)
}

func TestNormalizeAliases_Idempotent(t *testing.T) {
	t.Parallel()

	refs := []string{"a<n><lat>", "b<n><o>", "c<n><obl>"}
	NormalizeAliases(refs)
	once := append([]string(nil), refs...)
	NormalizeAliases(refs)

	assert.Equal(t, once, refs)
}

func TestTagAliases_DoNotRetrigger(t *testing.T) {
	t.Parallel()

	aliases := TagAliases()
	for _, a := range aliases {
		for _, b := range aliases {
			assert.NotContains(t, a.New, b.Old, "alias %s produces %s", a.Old, b.Old)
		}
	}
}
