// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package math3

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix stored as 16 float32 values in column-major order:
// element (row, col) lives at index col*4 + row. This is the layout wgpu
// uniform buffers expect, so a Mat4 can be uploaded without conversion.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a right-handed perspective projection matrix with
// depth mapped to the [0, 1] clip range (the WebGPU convention; OpenGL's
// [-1, 1] variant will not match gogpu renderers).
//
// fovY is the vertical field of view in radians.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	nf := 1 / (near - far)
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = far * nf
	m[11] = -1
	m[14] = far * near * nf
	return m
}

// LookAt returns the right-handed view matrix for a camera at eye looking
// toward center with the given up direction.
func LookAt(eye, center, up Vec3) Mat4 {
	fwd := center.Sub(eye).Normalize()
	side := fwd.Cross(up).Normalize()
	trueUp := side.Cross(fwd)

	return Mat4{
		side.X, trueUp.X, -fwd.X, 0,
		side.Y, trueUp.Y, -fwd.Y, 0,
		side.Z, trueUp.Z, -fwd.Z, 0,
		-side.Dot(eye), -trueUp.Dot(eye), fwd.Dot(eye), 1,
	}
}

// Mul returns the matrix product a * b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// Transform applies the matrix to the homogeneous point [x, y, z, 1] and
// returns the resulting clip-space coordinates.
func (m Mat4) Transform(p Vec3) (x, y, z, w float32) {
	x = m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y = m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z = m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w = m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	return x, y, z, w
}
