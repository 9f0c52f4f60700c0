package domain

import (
	"fmt"
	"time"
)

// ObserverConfig fixes the geographic location and civil instant of one
// observation. Angles are stored in radians, converted exactly once at
// construction; the struct is immutable by value afterwards.
type ObserverConfig struct {
	Latitude  float64   // Radians, [-π/2, π/2].
	Longitude float64   // Radians, (-π, π].
	Instant   time.Time // Civil instant; carries its own UTC offset.

	// AddEcliptic is reserved for an ecliptic overlay on the rendered chart.
	// No geometry consumes it yet; it is passed through to renderers.
	AddEcliptic bool
}

// NewObserverConfig builds an ObserverConfig from degrees, validating the
// geographic ranges. Latitude must lie in [-90, 90] and longitude in
// (-180, 180]; anything else wraps ErrInvalidConfig.
func NewObserverConfig(latDeg, lonDeg float64, instant time.Time, addEcliptic bool) (ObserverConfig, error) {
	if latDeg < -90 || latDeg > 90 {
		return ObserverConfig{}, fmt.Errorf("%w: latitude %.4f outside [-90, 90]", ErrInvalidConfig, latDeg)
	}
	if lonDeg <= -180 || lonDeg > 180 {
		return ObserverConfig{}, fmt.Errorf("%w: longitude %.4f outside (-180, 180]", ErrInvalidConfig, lonDeg)
	}
	if instant.IsZero() {
		return ObserverConfig{}, fmt.Errorf("%w: observation instant is zero", ErrInvalidConfig)
	}

	return ObserverConfig{
		Latitude:    Deg2Rad(latDeg),
		Longitude:   Deg2Rad(lonDeg),
		Instant:     instant,
		AddEcliptic: addEcliptic,
	}, nil
}
