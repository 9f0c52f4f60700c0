package domain

import "math"

// radiusScale converts a magnitude deficit into a marker radius.
const radiusScale = 1.5

// MagnitudeToRadius maps a star's visual magnitude to its marker radius on
// the chart: radius = 1.5 * max(criteria - magnitude, 0). Brighter stars
// (smaller magnitudes) get larger markers; stars at or beyond the criteria
// get radius 0. Never negative.
func MagnitudeToRadius(mag, magCriteria float64) float64 {
	return radiusScale * math.Max(magCriteria-mag, 0)
}

// Project maps star views to chart-plane points. Stars below the horizon
// (ζ > π/2) are dropped; the horizon itself is included. The stereographic
// radius is ρ = 2·tan(ζ/2), so the zenith maps to the plane center and the
// horizon to the outer ring at ρ = 2. The polar angle is the azimuth
// unchanged. Input order is preserved so renders are reproducible.
func Project(views []StarView, magCriteria float64) []PointProjection {
	points := make([]PointProjection, 0, len(views))
	for _, view := range views {
		if view.Coords.ZenithDist > math.Pi/2 {
			continue
		}
		points = append(points, PointProjection{
			Radius: MagnitudeToRadius(view.VMag, magCriteria),
			Rho:    2 * math.Tan(view.Coords.ZenithDist/2),
			Phi:    view.Coords.Azimuth,
		})
	}
	return points
}
