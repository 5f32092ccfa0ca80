package edgeauth

import "time"

// Clock reports the current wall-clock time in unix seconds.
//
// A Config consults its Clock only when the expiration is derived from
// the window and no start time is set.
type Clock interface {
	UnixSeconds() int64
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() int64

// UnixSeconds calls f.
func (f ClockFunc) UnixSeconds() int64 {
	return f()
}

// SystemClock reads time.Now.
var SystemClock Clock = ClockFunc(func() int64 {
	return time.Now().Unix()
})

// FixedClock returns a Clock that always reports sec.
func FixedClock(sec int64) Clock {
	return ClockFunc(func() int64 {
		return sec
	})
}
