// Package testutil contains common test utilities.
package testutil

import (
	"os"
	"strconv"
	"time"
)

// Scaled returns d scaled by $SLOWSCAN_TEST_TIME_SCALE. If the environment
// variable does not exist or contains an invalid value, the scale defaults to
// 1. Tests that depend on wall time should use Scaled durations so that slow
// machines can run them reliably by setting a larger scale.
func Scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * getTestTimeScale())
}

func getTestTimeScale() float64 {
	env := os.Getenv("SLOWSCAN_TEST_TIME_SCALE")
	if env == "" {
		return 1
	}
	scale, err := strconv.ParseFloat(env, 64)
	if err != nil || scale <= 0 {
		return 1
	}
	return scale
}
