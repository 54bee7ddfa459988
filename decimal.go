package supernovas

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
)

//Enough digits for a full int64 day plus a nanosecond fraction
const decimalPrecision = 50

var decimalNanosecondsPerDay = apd.New(NanosecondsPerDay, 0)

func decimalContext() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(decimalPrecision)
	ctx.Rounding = apd.RoundHalfEven
	return ctx
}

//FromDecimal splits an exact decimal Julian date into day and time of day.
//The fraction is rounded half to even at the nanosecond.
func FromDecimal(x *apd.Decimal) (JulianDate, error) {
	if x == nil || x.Form != apd.Finite {
		return JulianDate{}, fmt.Errorf("%w: %v", ErrNonFinite, x)
	}
	ctx := decimalContext()

	var whole, frac, ns apd.Decimal
	if _, err := ctx.Floor(&whole, x); err != nil {
		return JulianDate{}, err
	}
	day, err := whole.Int64()
	if err != nil {
		return JulianDate{}, fmt.Errorf("%w: %s", ErrOverflow, x)
	}

	if _, err := ctx.Sub(&frac, x, &whole); err != nil {
		return JulianDate{}, err
	}
	if _, err := ctx.Mul(&ns, &frac, decimalNanosecondsPerDay); err != nil {
		return JulianDate{}, err
	}
	if _, err := ctx.RoundToIntegralValue(&ns, &ns); err != nil {
		return JulianDate{}, err
	}
	n, err := ns.Int64()
	if err != nil {
		return JulianDate{}, err
	}
	return New(day, time.Duration(n))
}

//Decimal returns j as a decimal number, the fraction rounded to 50 significant digits.
func (j JulianDate) Decimal() *apd.Decimal {
	ctx := decimalContext()
	frac, d := new(apd.Decimal), new(apd.Decimal)
	//Division by a non-zero constant and an addition cannot trap
	_, _ = ctx.Quo(frac, apd.New(int64(j.timeOfDay), 0), decimalNanosecondsPerDay)
	_, _ = ctx.Add(d, apd.New(j.day, 0), frac)
	return d
}
