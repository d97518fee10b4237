package chrono

import (
	"math"
	"time"
)

// HostClock is the package's single boundary to the outside world: a raw
// wall-clock read and a local-time decomposition of an epoch second count.
// Everything else in the package is pure computation.
//
// Implementations must clamp leap seconds to 59 in LocalDecompose and keep
// both calls non-blocking. The offset between local and UTC decomposition
// is assumed to stay within ±24h and to change at most once within any
// single lookup window; naive-timestamp resolution relies on that bound.
type HostClock interface {
	// RawNow returns seconds since the POSIX epoch, with sub-second
	// precision if the host has it.
	RawNow() float64

	// LocalDecompose converts whole epoch seconds to local calendar
	// fields (year, month, day, hour, minute, second).
	LocalDecompose(sec int64) (year, month, day, hour, minute, second int)
}

// SystemClock adapts the runtime clock and local timezone database to
// HostClock.
type SystemClock struct{}

var _ HostClock = SystemClock{}

// RawNow returns the current time as float seconds since the epoch.
func (SystemClock) RawNow() float64 {
	t := time.Now()
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// LocalDecompose decomposes epoch seconds in the process-local timezone.
func (SystemClock) LocalDecompose(sec int64) (int, int, int, int, int, int) {
	t := time.Unix(sec, 0).Local()
	ss := t.Second()
	if ss > 59 {
		ss = 59
	}
	return t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), ss
}

// epochSecondsOf splits a float timestamp into whole epoch seconds,
// flooring so that the fractional part is non-negative.
func epochSecondsOf(t float64) int64 {
	return int64(math.Floor(t))
}

// splitTimestamp separates a float timestamp into whole seconds and a
// rounded microsecond remainder in [0, 1e6).
func splitTimestamp(t float64) (sec int64, micro int) {
	whole, frac := math.Modf(t)
	us := int(math.RoundToEven(frac * 1e6))
	s := int64(whole)
	if us >= microsPerSec {
		s++
		us -= microsPerSec
	} else if us < 0 {
		s--
		us += microsPerSec
	}
	return s, us
}
