//package supernovas provides Julian dates for astronomical time keeping.
//
//JulianDate is the primary type: a whole Julian day plus a time of day kept in
//[0, 24h), so repeated arithmetic never loses precision. FloatJulianDate holds
//the whole date in a single floating point value and is only a convenience.
//Leap seconds and time zones are not handled.
package supernovas

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/brobeson/supernovas/calendar"
	"golang.org/x/exp/constraints"
)

//Days before or after the Unix epoch that still fit a time.Time
const maxTimeDays = 1 << 40

//A JulianDate is the real number Day() + TimeOfDay()/24h.
//The zero value is Julian date 0.0. JulianDate values are comparable with ==.
type JulianDate struct {
	day       int64
	timeOfDay time.Duration
}

//New returns the Julian date day + d. Whole days in d, negative or positive,
//are moved into the day count.
func New(day int64, d time.Duration) (JulianDate, error) {
	day, tod, err := Normalize(day, d)
	if err != nil {
		return JulianDate{}, err
	}
	return JulianDate{day: day, timeOfDay: tod}, nil
}

//FromDays returns the start of Julian day day.
func FromDays(day int64) JulianDate {
	return JulianDate{day: day}
}

//FromFloat splits a real Julian date into day and time of day. The fraction
//is rounded to the nearest nanosecond.
func FromFloat[F constraints.Float](jd F) (JulianDate, error) {
	x := float64(jd)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return JulianDate{}, fmt.Errorf("%w: %v", ErrNonFinite, x)
	}
	whole := math.Floor(x)
	if whole < math.MinInt64 || whole >= math.MaxInt64 {
		return JulianDate{}, fmt.Errorf("%w: %v", ErrOverflow, x)
	}
	frac := math.Round((x - whole) * float64(NanosecondsPerDay))
	return New(int64(whole), time.Duration(frac))
}

//FromCalendar returns the Julian date of timeOfDay after midnight on date.
//A timeOfDay outside [0, 24h) moves into the neighbouring days.
func FromCalendar(date calendar.Date, timeOfDay time.Duration) (JulianDate, error) {
	n, err := calendar.MidnightDay(date)
	if errors.Is(err, calendar.ErrOutOfRange) {
		return JulianDate{}, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	if err != nil {
		return JulianDate{}, err
	}
	j, err := New(n, timeOfDay)
	if err != nil {
		return JulianDate{}, err
	}
	//Midnight is half a day into Julian day n
	return j.Add(12 * time.Hour)
}

//FromTime returns the Julian date of t, counting from the Unix epoch at
//Julian date 2440587.5.
func FromTime(t time.Time) (JulianDate, error) {
	secs := t.Unix()
	day, err := addDays(UnixEpochDay, secs/86400)
	if err != nil {
		return JulianDate{}, err
	}
	rest := time.Duration(secs%86400)*time.Second + time.Duration(t.Nanosecond())
	return New(day, UnixEpochTimeOfDay+rest)
}

//Day returns the whole Julian day.
func (j JulianDate) Day() int64 {
	return j.day
}

//TimeOfDay returns the time elapsed since the start of the Julian day, in [0, 24h).
func (j JulianDate) TimeOfDay() time.Duration {
	return j.timeOfDay
}

//Float64 returns the Julian date as one number, losing precision for large days.
func (j JulianDate) Float64() float64 {
	return float64(j.day) + float64(j.timeOfDay)/float64(NanosecondsPerDay)
}

//Time returns the UTC time of j.
func (j JulianDate) Time() (time.Time, error) {
	days, err := subDays(j.day, UnixEpochDay)
	if err != nil {
		return time.Time{}, err
	}
	if days > maxTimeDays || days < -maxTimeDays {
		return time.Time{}, fmt.Errorf("%w: %d days from the Unix epoch", ErrOverflow, days)
	}
	return time.Unix(days*86400, int64(j.timeOfDay-UnixEpochTimeOfDay)).UTC(), nil
}

//Gregorian returns the proleptic Gregorian date j falls on and the time
//elapsed since its midnight. A Julian day begins at noon.
func (j JulianDate) Gregorian() (calendar.Date, time.Duration, error) {
	n, since := j.day, j.timeOfDay+12*time.Hour
	if since >= Day {
		var err error
		if n, err = addDays(n, 1); err != nil {
			return calendar.Date{}, 0, err
		}
		since -= Day
	}
	date, err := calendar.GregorianDate(n)
	if err != nil {
		return calendar.Date{}, 0, err
	}
	return date, since, nil
}

//Add returns j advanced by d. A negative d moves j back.
func (j JulianDate) Add(d time.Duration) (JulianDate, error) {
	day, rem, err := Normalize(j.day, d)
	if err != nil {
		return JulianDate{}, err
	}
	return New(day, j.timeOfDay+rem)
}

//Sub returns j moved back by d.
func (j JulianDate) Sub(d time.Duration) (JulianDate, error) {
	carry, rem, err := Normalize(0, d)
	if err != nil {
		return JulianDate{}, err
	}
	day, err := subDays(j.day, carry)
	if err != nil {
		return JulianDate{}, err
	}
	return New(day, j.timeOfDay-rem)
}

//AddDays returns j moved by n whole days, the time of day is kept.
func (j JulianDate) AddDays(n int64) (JulianDate, error) {
	day, err := addDays(j.day, n)
	if err != nil {
		return JulianDate{}, err
	}
	return JulianDate{day: day, timeOfDay: j.timeOfDay}, nil
}

//Increment moves j one day forward and returns the new value.
//On error j is not changed.
func (j *JulianDate) Increment() (JulianDate, error) {
	return j.step(1)
}

//Decrement moves j one day back and returns the new value.
//On error j is not changed.
func (j *JulianDate) Decrement() (JulianDate, error) {
	return j.step(-1)
}

//PostIncrement moves j one day forward and returns the value it had before.
func (j *JulianDate) PostIncrement() (JulianDate, error) {
	prev := *j
	_, err := j.step(1)
	return prev, err
}

//PostDecrement moves j one day back and returns the value it had before.
func (j *JulianDate) PostDecrement() (JulianDate, error) {
	prev := *j
	_, err := j.step(-1)
	return prev, err
}

func (j *JulianDate) step(n int64) (JulianDate, error) {
	next, err := j.AddDays(n)
	if err != nil {
		return *j, err
	}
	*j = next
	return next, nil
}

//Since returns the signed time from u to j.
func (j JulianDate) Since(u JulianDate) (time.Duration, error) {
	days, err := subDays(j.day, u.day)
	if err != nil {
		return 0, err
	}
	maxDays := int64(math.MaxInt64 / Day)
	if days > maxDays || days < -maxDays {
		return 0, fmt.Errorf("%w: %d days apart", ErrOverflow, days)
	}
	whole, diff := time.Duration(days)*Day, j.timeOfDay-u.timeOfDay
	if (diff > 0 && whole > math.MaxInt64-diff) || (diff < 0 && whole < math.MinInt64-diff) {
		return 0, fmt.Errorf("%w: %d days apart", ErrOverflow, days)
	}
	return whole + diff, nil
}

//Compare returns -1, 0 or +1 as j is before, equal to or after u.
//Days are compared first, then times of day.
func (j JulianDate) Compare(u JulianDate) int {
	if c := cmp.Compare(j.day, u.day); c != 0 {
		return c
	}
	return cmp.Compare(j.timeOfDay, u.timeOfDay)
}

func (j JulianDate) Equal(u JulianDate) bool {
	return j == u
}

func (j JulianDate) Before(u JulianDate) bool {
	return j.Compare(u) < 0
}

func (j JulianDate) After(u JulianDate) bool {
	return j.Compare(u) > 0
}

func (j JulianDate) String() string {
	return fmt.Sprintf("%d+%s", j.day, j.timeOfDay)
}
