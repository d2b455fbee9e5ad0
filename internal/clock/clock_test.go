package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReal_SinceIsMonotonic(t *testing.T) {
	c := Real()
	start := c.Now()
	require.GreaterOrEqual(t, c.Since(start), time.Duration(0))
}

func TestFake_Advance(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Fake(base)

	start := c.Now()
	require.Equal(t, base, start)
	require.Zero(t, c.Since(start))

	c.Advance(250 * time.Millisecond)
	require.Equal(t, 250*time.Millisecond, c.Since(start))
}

func TestFake_Step(t *testing.T) {
	c := Fake(time.Unix(0, 0))
	c.SetStep(time.Second)

	for range 3 {
		start := c.Now()
		require.Equal(t, time.Second, c.Since(start))
	}

	c.SetStep(0)
	start := c.Now()
	require.Zero(t, c.Since(start))
}
