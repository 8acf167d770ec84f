package serbench

import "time"

// MeasureDuration runs action exactly once on the calling goroutine and
// returns how long it took. The monotonic clock is used, so the result is
// never negative.
func MeasureDuration(action func()) time.Duration {
	start := time.Now()
	action()
	return time.Since(start)
}

// Measure runs action exactly once and returns the elapsed time in whole
// milliseconds.
func Measure(action func()) int64 {
	return MeasureDuration(action).Milliseconds()
}

// Sample runs action n times and returns the mean elapsed time in whole
// milliseconds. n is treated as 1 if it is smaller.
func Sample(n int, action func()) int64 {
	if n < 1 {
		n = 1
	}

	var total time.Duration
	for i := 0; i < n; i++ {
		total += MeasureDuration(action)
	}
	return (total / time.Duration(n)).Milliseconds()
}
