package domain

import "math"

// Star is a single catalog entry: visual magnitude plus equatorial
// coordinates in radians. Produced by a catalog loader; the core assumes
// every field is present and already validated.
type Star struct {
	HIP  int     // Hipparcos identifier (0 if the source has none).
	VMag float64 // Visual magnitude.
	RA   float64 // Right ascension in radians, [0, 2π).
	Dec  float64 // Declination in radians, [-π/2, π/2].
}

// HorizontalCoords holds observer-relative coordinates for one instant.
// Recomputed per (star, observer) pair; never cached across instants.
type HorizontalCoords struct {
	ZenithDist float64 // Zenith distance ζ in radians, [0, π].
	Azimuth    float64 // Azimuth A in radians, [0, 2π).
}

// StarView pairs a star's magnitude with its horizontal coordinates for one
// observation instant.
type StarView struct {
	VMag   float64
	Coords HorizontalCoords
}

// PointProjection is a single plotted star on the chart plane:
// marker radius plus polar-plane coordinates.
type PointProjection struct {
	Radius float64 // Marker radius, >= 0.
	Rho    float64 // Polar radius on the plane, >= 0.
	Phi    float64 // Polar angle, equal to the azimuth.
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
