package dawgtext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildAndPack inserts words (in the given order) into a fresh Builder and
// returns the resulting Dictionary. Shared by every test file that needs an
// end-to-end pipeline rather than poking at one stage in isolation.
func buildAndPack(t *testing.T, words []string) *Dictionary {
	t.Helper()
	b := New()
	require.NoError(t, b.InsertAll(words))
	packed, err := b.Pack()
	require.NoError(t, err)
	d, err := NewDictionary(packed)
	require.NoError(t, err)
	return d
}

func assertWords(t *testing.T, d *Dictionary, members []string, nonMembers []string) {
	t.Helper()
	for _, w := range members {
		ok, err := d.IsWord(w)
		require.NoError(t, err, "IsWord(%q)", w)
		require.True(t, ok, "expected %q to be a member", w)
	}
	for _, w := range nonMembers {
		ok, err := d.IsWord(w)
		require.NoError(t, err, "IsWord(%q)", w)
		require.False(t, ok, "expected %q not to be a member", w)
	}
}
