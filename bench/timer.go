package bench

import (
	"time"

	"github.com/hwjsnc/compbench/internal/clock"
)

// Time runs op exactly once and reports how long it took according to clk.
// The error from op is returned unchanged; the duration is only meaningful
// when it is nil.
func Time[T any](clk clock.Clock, op func() (T, error)) (T, time.Duration, error) {
	start := clk.Now()
	result, err := op()
	elapsed := clk.Since(start)

	return result, elapsed, err
}
