// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package math3

import "github.com/chewxy/math32"

// normalizeEpsilon is the magnitude below which Normalize gives up and
// returns the zero vector instead of dividing by a near-zero length.
const normalizeEpsilon = 1e-5

// Vec3 is a 3-component float32 vector.
type Vec3 struct {
	X, Y, Z float32
}

// V3 creates a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the magnitude of the vector.
func (a Vec3) Length() float32 {
	return math32.Sqrt(a.Dot(a))
}

// Normalize returns the unit vector in the direction of a.
// Vectors shorter than 1e-5 normalize to the zero vector; camera math
// treats that as "no usable direction" rather than propagating Inf/NaN.
func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l < normalizeEpsilon {
		return Vec3{}
	}
	return a.Scale(1 / l)
}
