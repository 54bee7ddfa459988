package supernovas

import "time"

const (
	SpeedOfLight = 299792458.0 //Speed of light in vacuum, in meters per second

	NanosecondsPerDay int64 = 86_400_000_000_000               //Length of a day, leap seconds are not counted
	Day                     = time.Duration(NanosecondsPerDay) //Length of a day as a time.Duration

	UnixEpochJulianDate               = 2440587.5      //Julian date of 1970-01-01 00:00:00 UTC
	UnixEpochDay        int64         = 2440587        //Day part of UnixEpochJulianDate
	UnixEpochTimeOfDay  time.Duration = 12 * time.Hour //Time of day part of UnixEpochJulianDate
)
