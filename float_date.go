package supernovas

import (
	"cmp"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

//FloatJulianDate holds a Julian date as one floating point number of type F.
//All magnitude sits in a single value, so every addition rounds at the scale
//of the day number. Use JulianDate when many operations accumulate.
type FloatJulianDate[F constraints.Float] struct {
	value F
}

//NewFloat wraps a raw Julian date number. NaN and infinities are rejected.
func NewFloat[F constraints.Float](v F) (FloatJulianDate[F], error) {
	x := float64(v)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return FloatJulianDate[F]{}, fmt.Errorf("%w: %v", ErrNonFinite, x)
	}
	return FloatJulianDate[F]{value: v}, nil
}

//FloatFromTime returns the Julian date of t, counting from the Unix epoch at
//Julian date 2440587.5 like FromTime does.
func FloatFromTime[F constraints.Float](t time.Time) FloatJulianDate[F] {
	days := float64(t.Unix())/86400 + float64(t.Nanosecond())/float64(NanosecondsPerDay)
	return FloatJulianDate[F]{value: F(UnixEpochJulianDate + days)}
}

//ToFloat converts j to a FloatJulianDate of precision F.
func ToFloat[F constraints.Float](j JulianDate) FloatJulianDate[F] {
	return FloatJulianDate[F]{value: F(j.Float64())}
}

func (f FloatJulianDate[F]) Value() F {
	return f.value
}

//Add returns f advanced by d, computed in F.
func (f FloatJulianDate[F]) Add(d time.Duration) FloatJulianDate[F] {
	return FloatJulianDate[F]{value: f.value + F(d.Nanoseconds())/F(NanosecondsPerDay)}
}

//Sub returns f moved back by d, computed in F.
func (f FloatJulianDate[F]) Sub(d time.Duration) FloatJulianDate[F] {
	return FloatJulianDate[F]{value: f.value - F(d.Nanoseconds())/F(NanosecondsPerDay)}
}

func (f FloatJulianDate[F]) Compare(u FloatJulianDate[F]) int {
	return cmp.Compare(f.value, u.value)
}

//Fixed converts f to a JulianDate, rounding to the nanosecond.
func (f FloatJulianDate[F]) Fixed() (JulianDate, error) {
	return FromFloat(f.value)
}
