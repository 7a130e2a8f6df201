// Package clock abstracts the wall clock so time-dependent code can be tested
// with a fixed or scripted time source.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Func adapts a plain function, such as time.Now, to Clock.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// Unix returns a Fixed clock at the given Unix second.
func Unix(sec int64) Fixed {
	return Fixed(time.Unix(sec, 0))
}
