// Package calendar converts proleptic Julian/Gregorian calendar dates to
// Julian day numbers and back.
package calendar

import (
	"errors"
	"fmt"
	"math"
	"time"

	usno "github.com/carlosjhr64/jd"
)

var (
	ErrInvalidDate = errors.New("invalid calendar date")      //Returned for a month outside 1..12, a negative day or a time of day outside [0, 24h)
	ErrOutOfRange  = errors.New("calendar date out of range") //Returned when a year, day or day number is too large to convert exactly
)

const (
	julianYear  = 365.25
	monthLength = 30.6001
	epochOffset = 1720994.5

	// Bounds that keep julianYear*year exact in a float64 and every sum in an int64.
	maxYear      = 1 << 40
	maxDay       = 1 << 40
	maxDayNumber = 1 << 40
)

// Date is a proleptic calendar date. There is a year 0, the year before 1.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Cutover is the last date converted without the Gregorian correction.
// Dates strictly after it are treated as Gregorian, dates on or before it as Julian.
var Cutover = Date{Year: 1582, Month: time.October, Day: 15}

// After reports whether d is later than u in calendar order.
func (d Date) After(u Date) bool {
	if d.Year != u.Year {
		return d.Year > u.Year
	}
	if d.Month != u.Month {
		return d.Month > u.Month
	}
	return d.Day > u.Day
}

func (d Date) validate() error {
	if d.Month < time.January || d.Month > time.December {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, int(d.Month))
	}
	if d.Day < 0 {
		return fmt.Errorf("%w: day %d", ErrInvalidDate, d.Day)
	}
	if int64(d.Day) > maxDay {
		return fmt.Errorf("%w: day %d", ErrOutOfRange, d.Day)
	}
	if y := int64(d.Year); y > maxYear || y < -maxYear {
		return fmt.Errorf("%w: year %d", ErrOutOfRange, d.Year)
	}
	return nil
}

// MidnightDay returns the whole part of the Julian date at which date begins.
// The date starts half a day later, at Julian date MidnightDay(date) + 0.5.
func MidnightDay(date Date) (int64, error) {
	if err := date.validate(); err != nil {
		return 0, err
	}

	//January and February count as months 13 and 14 of the previous year
	y, m := int64(date.Year), int64(date.Month)
	if m <= 2 {
		y--
		m += 12
	}

	var b int64
	if date.After(Cutover) {
		a := floorDiv(y, 100)
		b = 2 - a + floorDiv(a, 4)
	}

	//Truncation rounds negative years the wrong way, the 0.75 puts them on the floor
	var c int64
	if y < 0 {
		c = int64(julianYear*float64(y) - 0.75)
	} else {
		c = int64(julianYear * float64(y))
	}

	d := int64(math.Floor(monthLength * float64(m+1)))

	return b + c + d + int64(date.Day) + int64(math.Floor(epochOffset)), nil
}

// DayNumber converts a calendar date and a time of day to a Julian day number.
// The result is the real Julian date truncated toward zero.
func DayNumber(date Date, timeOfDay time.Duration) (int64, error) {
	if timeOfDay < 0 || timeOfDay >= 24*time.Hour {
		return 0, fmt.Errorf("%w: time of day %s", ErrInvalidDate, timeOfDay)
	}
	n, err := MidnightDay(date)
	if err != nil {
		return 0, err
	}

	//The real value is n + 0.5 + timeOfDay/24h
	half := 12 * time.Hour
	switch {
	case n >= 0 || (n == -1 && timeOfDay >= half):
		if timeOfDay >= half {
			n++
		}
	case timeOfDay <= half:
		n++
	default:
		n += 2
	}
	return n, nil
}

// GregorianDate converts a Julian day number to the proleptic Gregorian date
// whose noon it is. Day numbers before the cutover are not mapped back to the
// Julian calendar.
//
//	d, _ := calendar.GregorianDate(2453738)
//	d == calendar.Date{2006, time.January, 2} //=> true
func GregorianDate(n int64) (Date, error) {
	if n < 0 || n > maxDayNumber {
		return Date{}, fmt.Errorf("%w: day number %d", ErrOutOfRange, n)
	}
	y, m, d := usno.J2YMD(int(n))
	return Date{Year: y, Month: time.Month(m), Day: d}, nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
