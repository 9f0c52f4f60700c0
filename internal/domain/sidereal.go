package domain

import (
	"math"
	"time"
)

// Sidereal-time reduction constants (1900-epoch formulation).
const (
	// jdEpoch1900 is the Julian date of the 1900.0 reference epoch
	// (1900 January 0.5) used by the sidereal polynomial below.
	jdEpoch1900 = 2415020.0

	// siderealRate is the ratio of a mean solar day to a mean sidereal day.
	siderealRate = 1.002738

	// dailyAccel is the sidereal advance per mean solar day, in hours
	// (about 3m56.6s). Standard constant of the 1900-epoch reduction,
	// quoted directly rather than derived from siderealRate.
	dailyAccel = 0.0657098
)

// JulianDate returns the Julian date at 0h UT of the given civil date,
// honoring the Julian/Gregorian calendar switch at 1582 October 4.
// The switch is a single chronological comparison: dates on or before
// 1582-10-04 follow the Julian rule, later dates apply the Gregorian
// century correction.
func JulianDate(year, month, day int) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}

	b := 0
	if isGregorian(year, month, day) {
		a := y / 100
		b = 2 - a + a/4
	}

	return math.Floor(365.25*float64(y)) + math.Floor(30.6001*float64(m+1)) +
		float64(day+b) + 1720994.5
}

// isGregorian reports whether the civil date falls after the calendar switch.
// Evaluated as one chronological comparison against 1582-10-04, so dates such
// as 1581-12-25 classify correctly as Julian.
func isGregorian(year, month, day int) bool {
	switch {
	case year != 1582:
		return year > 1582
	case month != 10:
		return month > 10
	default:
		return day > 4
	}
}

// LocalSiderealTime computes the local sidereal time in hours, [0, 24), for
// an observer at the given longitude (radians, east positive) at the given
// civil instant. The instant's own UTC offset is honored; the longitude is
// applied as a mean-solar time offset before the reduction.
//
// The reduction is the classic 1900-epoch formulation: the Julian date of
// "0 January" of the year anchors a polynomial baseline T0, and the elapsed
// whole days plus the time of day advance it at the sidereal/solar rate.
func LocalSiderealTime(longitude float64, instant time.Time) float64 {
	// Local mean time: UT shifted by the longitude, 15° per hour.
	lonHours := Rad2Deg(longitude) / 15.0
	lmt := instant.UTC().Add(time.Duration(lonHours * float64(time.Hour)))

	year := lmt.Year()

	// "0 January": one day before January 1 of the instant's year.
	origin := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	days := int(lmt.Sub(origin).Hours() / 24.0)

	jd := JulianDate(origin.Year(), int(origin.Month()), origin.Day())
	t := (jd - jdEpoch1900) / 36525.0
	r := 6.6460656 + 2400.051262*t + 0.00002581*t*t
	u := r - 24.0*float64(year-1900)
	t0 := float64(days)*dailyAccel - (24.0 - u)

	lst := math.Mod(siderealRate*hoursOfDay(lmt)+t0, 24.0)
	if lst < 0 {
		lst += 24.0
	}
	return lst
}

// VernalEquinoxHourAngle returns the hour angle of the vernal equinox at the
// observer's meridian in radians: the right ascension currently crossing the
// local meridian.
func VernalEquinoxHourAngle(longitude float64, instant time.Time) float64 {
	return Deg2Rad(LocalSiderealTime(longitude, instant) * 15.0)
}

// hoursOfDay converts the time of day to fractional hours.
func hoursOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60.0 +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600.0
}
