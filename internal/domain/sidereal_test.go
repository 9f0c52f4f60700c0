package domain

import (
	"math"
	"testing"
	"time"
)

// TestJulianDate_KnownDates checks the day-count formula on both sides of the
// 1582 calendar switch.
func TestJulianDate_KnownDates(t *testing.T) {
	tests := []struct {
		year, month, day int
		expected         float64
	}{
		// Gregorian era.
		{2020, 12, 31, 2459214.5},
		{2000, 1, 1, 2451544.5},
		{1900, 1, 1, 2415020.5},
		// Last Julian day and first Gregorian day.
		{1582, 10, 4, 2299159.5},
		{1582, 10, 15, 2299160.5},
	}

	for _, tt := range tests {
		jd := JulianDate(tt.year, tt.month, tt.day)
		if math.Abs(jd-tt.expected) > 1e-9 {
			t.Errorf("JulianDate(%d-%02d-%02d): expected %.1f, got %.1f",
				tt.year, tt.month, tt.day, tt.expected, jd)
		}
	}
}

// TestJulianDate_PreSwitchLateMonth exercises a date whose month and day fall
// "after" October 4 but whose year precedes the switch. A per-field
// comparison would misclassify it as Gregorian; the chronological comparison
// keeps it Julian.
func TestJulianDate_PreSwitchLateMonth(t *testing.T) {
	// 1581-12-25 is 283 days before 1582-10-04 on the Julian calendar.
	jd := JulianDate(1581, 12, 25)
	expected := 2299159.5 - 283.0
	if math.Abs(jd-expected) > 1e-9 {
		t.Errorf("JulianDate(1581-12-25): expected %.1f, got %.1f", expected, jd)
	}
}

// TestLocalSiderealTime_Greenwich checks the reduction against a known value.
func TestLocalSiderealTime_Greenwich(t *testing.T) {
	instant := time.Date(2021, 3, 1, 6, 0, 0, 0, time.UTC)

	lst := LocalSiderealTime(0, instant)

	// GMST at 2021-03-01 06:00 UT is 16h 37m 04s.
	if math.Abs(lst-16.61786) > 1e-3 {
		t.Errorf("LST at Greenwich: expected ~16.61786 h, got %.5f h", lst)
	}
	if lst < 0 || lst >= 24 {
		t.Errorf("LST outside [0, 24): %.5f", lst)
	}
}

// TestLocalSiderealTime_LongitudeOffset verifies that longitude acts as a
// mean-solar time offset: 90° east matches Greenwich six hours later.
func TestLocalSiderealTime_LongitudeOffset(t *testing.T) {
	instant := time.Date(2021, 3, 1, 6, 0, 0, 0, time.UTC)

	east := LocalSiderealTime(Deg2Rad(90), instant)
	greenwich := LocalSiderealTime(0, instant.Add(6*time.Hour))

	if math.Abs(east-greenwich) > 1e-9 {
		t.Errorf("LST(90°E, t) = %.9f, LST(0°, t+6h) = %.9f", east, greenwich)
	}
}

// TestLocalSiderealTime_UTCOffset verifies that the instant's civil offset is
// resolved before the reduction: the same absolute instant expressed in a
// different zone yields the same sidereal time.
func TestLocalSiderealTime_UTCOffset(t *testing.T) {
	utc := time.Date(2021, 3, 1, 6, 0, 0, 0, time.UTC)
	jst := utc.In(time.FixedZone("JST", 9*60*60))

	a := LocalSiderealTime(0, utc)
	b := LocalSiderealTime(0, jst)

	if math.Abs(a-b) > 1e-12 {
		t.Errorf("same instant in different zones: %.12f vs %.12f", a, b)
	}
}

// TestVernalEquinoxHourAngle_DailyDrift checks the sidereal drift across one
// civil day: the hour angle advances by ~0.9856° beyond a full turn.
func TestVernalEquinoxHourAngle_DailyDrift(t *testing.T) {
	instant := time.Date(2021, 6, 10, 22, 0, 0, 0, time.UTC)

	h0 := VernalEquinoxHourAngle(0, instant)
	h1 := VernalEquinoxHourAngle(0, instant.Add(24*time.Hour))

	drift := math.Mod(h1-h0+2*math.Pi, 2*math.Pi)
	expected := Deg2Rad(dailyAccel * 15.0) // 0.9856° in radians.

	if math.Abs(drift-expected) > 1e-6 {
		t.Errorf("daily drift: expected %.8f rad, got %.8f rad", expected, drift)
	}
}

// TestLocalSiderealTime_Deterministic verifies purity: repeated calls with
// identical inputs agree exactly.
func TestLocalSiderealTime_Deterministic(t *testing.T) {
	instant := time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC)
	lon := Deg2Rad(-77.0)

	first := LocalSiderealTime(lon, instant)
	for i := 0; i < 3; i++ {
		if got := LocalSiderealTime(lon, instant); got != first {
			t.Fatalf("call %d: got %.15f, want %.15f", i, got, first)
		}
	}
}
