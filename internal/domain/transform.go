package domain

import (
	"fmt"
	"math"
)

// normTolerance bounds how far a unit vector's norm may drift from 1 before
// the transform treats it as corrupted input.
const normTolerance = 1e-9

// Vector3 is a cartesian vector on the celestial sphere.
type Vector3 struct {
	X, Y, Z float64
}

// Norm returns the euclidean length of the vector.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// ECIVector converts equatorial coordinates (radians) to a unit vector in
// the Earth-centered inertial frame:
// x = cos α cos δ, y = sin α cos δ, z = sin δ.
func ECIVector(ra, dec float64) Vector3 {
	cd := math.Cos(dec)
	return Vector3{
		X: math.Cos(ra) * cd,
		Y: math.Sin(ra) * cd,
		Z: math.Sin(dec),
	}
}

// RotationMatrix is a 3×3 rotation, rows applied to column vectors.
type RotationMatrix [3][3]float64

// NewHorizonRotation builds the rotation from the Earth-centered inertial
// frame to the observer's horizon frame for sidereal hour angle θ and
// latitude φ. The frame convention, fixed once for the whole pipeline:
// x′ points to the west point of the horizon, y′ to the south point,
// z′ to the zenith. The matrix depends only on (θ, φ), so callers compute it
// once per invocation and reuse it across the whole star set.
func NewHorizonRotation(hourAngle, latitude float64) RotationMatrix {
	st, ct := math.Sin(hourAngle), math.Cos(hourAngle)
	sl, cl := math.Sin(latitude), math.Cos(latitude)
	return RotationMatrix{
		{st, -ct, 0},
		{sl * ct, sl * st, -cl},
		{cl * ct, cl * st, sl},
	}
}

// Apply multiplies the matrix by v.
func (m RotationMatrix) Apply(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the transposed matrix. For an orthonormal rotation this
// is the inverse, mapping horizon-frame vectors back to the inertial frame.
func (m RotationMatrix) Transpose() RotationMatrix {
	var t RotationMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}

// ToHorizontal transforms one star into horizontal coordinates using a
// precomputed horizon rotation. Zenith distance comes from the z′ component,
// azimuth from the horizon-plane components with the chart's fixed
// convention: A = atan2(x′, y′) − π/2, wrapped to [0, 2π).
//
// The inertial and rotated vectors must both be unit length within 1e-9;
// a violation wraps ErrDataIntegrity.
func ToHorizontal(star Star, rot RotationMatrix) (HorizontalCoords, error) {
	eci := ECIVector(star.RA, star.Dec)
	if dev := math.Abs(eci.Norm() - 1.0); dev > normTolerance {
		return HorizontalCoords{}, fmt.Errorf("%w: inertial vector norm off by %.3e (HIP %d)", ErrDataIntegrity, dev, star.HIP)
	}

	h := rot.Apply(eci)
	if dev := math.Abs(h.Norm() - 1.0); dev > normTolerance {
		return HorizontalCoords{}, fmt.Errorf("%w: horizon vector norm off by %.3e (HIP %d)", ErrDataIntegrity, dev, star.HIP)
	}

	// Clamp against floating-point overshoot before arccos.
	z := h.Z
	if z > 1 {
		z = 1
	} else if z < -1 {
		z = -1
	}

	return HorizontalCoords{
		ZenithDist: math.Acos(z),
		Azimuth:    wrapTo2Pi(math.Atan2(h.X, h.Y) - math.Pi/2),
	}, nil
}

// wrapTo2Pi normalizes an angle to [0, 2π). Adding 2π to a tiny negative
// remainder can round to exactly 2π, so the result is folded back to 0.
func wrapTo2Pi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
