package capacity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	t.Run("below minimum", func(t *testing.T) {
		require.Equal(t, Min, Round(0))
		require.Equal(t, Min, Round(1))
		require.Equal(t, Min, Round(Min))
	})

	t.Run("rounds up to power of two", func(t *testing.T) {
		require.Equal(t, 32, Round(Min+1))
		require.Equal(t, 32, Round(32))
		require.Equal(t, 64, Round(33))
		require.Equal(t, 1024, Round(513))
	})

	t.Run("always a power of two", func(t *testing.T) {
		for n := 0; n < 10_000; n += 7 {
			c := Round(n)
			require.GreaterOrEqual(t, c, n)
			require.GreaterOrEqual(t, c, Min)
			require.Zero(t, c&(c-1))
		}
	})
}
