package supernovas

import (
	"fmt"
	"math"
	"time"
)

// Normalize folds whole days of raw into day and returns the remainder,
// which always lies in [0, Day). A negative raw borrows days from day.
// ErrOverflow is returned if the resulting day count leaves the int64 range.
func Normalize(day int64, raw time.Duration) (int64, time.Duration, error) {
	carry, rem := splitDays(raw)
	d, err := addDays(day, carry)
	if err != nil {
		return 0, 0, err
	}
	return d, rem, nil
}

//Floor division, the remainder takes the sign of Day
func splitDays(d time.Duration) (int64, time.Duration) {
	carry, rem := int64(d/Day), d%Day
	if rem < 0 {
		carry--
		rem += Day
	}
	return carry, rem
}

func addDays(day, n int64) (int64, error) {
	if (n > 0 && day > math.MaxInt64-n) || (n < 0 && day < math.MinInt64-n) {
		return 0, fmt.Errorf("%w: %d%+d days", ErrOverflow, day, n)
	}
	return day + n, nil
}

func subDays(day, n int64) (int64, error) {
	if (n < 0 && day > math.MaxInt64+n) || (n > 0 && day < math.MinInt64+n) {
		return 0, fmt.Errorf("%w: %d-%d days", ErrOverflow, day, n)
	}
	return day - n, nil
}
