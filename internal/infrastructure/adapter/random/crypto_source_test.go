package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoSource_Intn(t *testing.T) {
	src := NewCryptoSource()

	t.Run("Stays within bounds and hits every value", func(t *testing.T) {
		counts := make([]int, 5)
		for i := 0; i < 5000; i++ {
			v, err := src.Intn(5)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 5)
			counts[v]++
		}
		for v, c := range counts {
			assert.InDelta(t, 1000, c, 200, "value %d", v)
		}
	})

	t.Run("Rejects non-positive bounds", func(t *testing.T) {
		_, err := src.Intn(0)
		assert.Error(t, err)
	})

	t.Run("Bound of one", func(t *testing.T) {
		v, err := src.Intn(1)
		require.NoError(t, err)
		assert.Zero(t, v)
	})
}
