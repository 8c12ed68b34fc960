package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectReturnsEnabledModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	seen := map[string]bool{}
	for _, m := range Models {
		seen[m] = true
	}

	for i := 0; i < 100; i++ {
		model, err := Select(rng)
		require.NoError(t, err)
		assert.True(t, seen[model], "selected model %q is not in the enabled pool", model)
	}
}

func TestSelectIsReproducibleForFixedSeed(t *testing.T) {
	first, err := Select(rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	second, err := Select(rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSelectFromEmptyPool(t *testing.T) {
	_, err := SelectFrom(rand.New(rand.NewSource(1)), nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestEnabledPoolIsNotEmpty(t *testing.T) {
	require.NotEmpty(t, Models)
}
