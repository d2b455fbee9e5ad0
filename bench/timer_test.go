package bench

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hwjsnc/compbench/internal/clock"
)

func TestTime(t *testing.T) {
	clk := steppedClock(3 * time.Millisecond)

	calls := 0
	got, elapsed, err := Time(clk, func() (string, error) {
		calls++
		return "done", nil
	})
	require.NoError(t, err)
	require.Equal(t, "done", got)
	require.Equal(t, 3*time.Millisecond, elapsed)
	require.Equal(t, 1, calls)
}

func TestTime_PropagatesError(t *testing.T) {
	want := errors.New("boom")

	_, _, err := Time(clock.Real(), func() (int, error) { return 0, want })
	require.Same(t, want, err)
}

func TestTime_RealClockNonNegative(t *testing.T) {
	_, elapsed, err := Time(clock.Real(), func() (struct{}, error) { return struct{}{}, nil })
	require.NoError(t, err)
	require.GreaterOrEqual(t, elapsed, time.Duration(0))
}

func TestRunningStats(t *testing.T) {
	var s runningStats
	require.Zero(t, s.average())
	require.Zero(t, s.stddev())

	s.add(42)
	require.Equal(t, uint(1), s.count())
	require.Equal(t, 42.0, s.average())
	require.Zero(t, s.stddev())

	s = runningStats{}
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.add(v)
	}
	require.Equal(t, uint(8), s.count())
	require.InDelta(t, 5.0, s.average(), 1e-12)
	require.InDelta(t, 32.0/7.0, s.variance(), 1e-12)
	require.InDelta(t, math.Sqrt(32.0/7.0), s.stddev(), 1e-12)
}

func TestRunningStats_LargeOffset(t *testing.T) {
	var s runningStats
	for _, v := range []float64{1e9 + 4, 1e9 + 7, 1e9 + 13, 1e9 + 16} {
		s.add(v)
	}
	require.InDelta(t, 1e9+10, s.average(), 1e-6)
	require.InDelta(t, 30.0, s.variance(), 1e-6)
}
