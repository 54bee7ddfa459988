package supernovas

import "time"

//Clock is the source of the current time for Now.
type Clock interface {
	Now() time.Time
}

//SystemClock reads the system clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

var _ Clock = SystemClock{}

//Now returns the Julian date of the current time of c.
func Now(c Clock) (JulianDate, error) {
	return FromTime(c.Now())
}
