// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package math3

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestIdentityTransform(t *testing.T) {
	p := V3(1.5, -2, 7)
	x, y, z, w := Identity().Transform(p)
	if x != p.X || y != p.Y || z != p.Z || w != 1 {
		t.Errorf("Identity().Transform(%v) = (%v %v %v %v)", p, x, y, z, w)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	const (
		nearZ = float32(1)
		farZ  = float32(101)
	)
	m := Perspective(math.Pi/2, 1, nearZ, farZ)

	// A point on the near plane maps to depth 0.
	_, _, z, w := m.Transform(V3(0, 0, -nearZ))
	if !near(z/w, 0) {
		t.Errorf("near-plane depth = %v, want 0", z/w)
	}

	// A point on the far plane maps to depth 1.
	_, _, z, w = m.Transform(V3(0, 0, -farZ))
	if !near(z/w, 1) {
		t.Errorf("far-plane depth = %v, want 1", z/w)
	}

	// Points in front of the camera have positive w (w = -viewZ).
	_, _, _, w = m.Transform(V3(0, 0, -10))
	if !near(w, 10) {
		t.Errorf("clip w = %v, want 10", w)
	}
}

func TestPerspectiveFOV(t *testing.T) {
	// With fov 90 and aspect 1, a point on the frustum edge at distance d
	// lands exactly on ndc x = 1.
	m := Perspective(math.Pi/2, 1, 0.1, 100)
	x, _, _, w := m.Transform(V3(5, 0, -5))
	if !near(x/w, 1) {
		t.Errorf("frustum-edge ndc x = %v, want 1", x/w)
	}
}

func TestLookAt(t *testing.T) {
	eye := V3(0, 0, 5)
	view := LookAt(eye, V3(0, 0, 0), V3(0, 1, 0))

	// The look-at center lands on the view axis, 5 units ahead.
	x, y, z, w := view.Transform(V3(0, 0, 0))
	if !near(x, 0) || !near(y, 0) || !near(z, -5) || !near(w, 1) {
		t.Errorf("center transforms to (%v %v %v %v), want (0 0 -5 1)", x, y, z, w)
	}

	// World +X stays +X for a camera on the +Z axis.
	x, _, _, _ = view.Transform(V3(1, 0, 0))
	if !near(x, 1) {
		t.Errorf("view x = %v, want 1", x)
	}

	// The eye itself maps to the view-space origin.
	x, y, z, _ = view.Transform(eye)
	if !near(x, 0) || !near(y, 0) || !near(z, 0) {
		t.Errorf("eye transforms to (%v %v %v), want origin", x, y, z)
	}
}

func TestMulIdentity(t *testing.T) {
	m := Perspective(1, 1.5, 0.1, 100)
	if got := m.Mul(Identity()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
}

func TestMulComposition(t *testing.T) {
	// (proj * view).Transform must equal proj.Transform(view.Transform).
	proj := Perspective(math.Pi/3, 1.25, 0.1, 2000)
	view := LookAt(V3(3, 8, 10), V3(1, 0, -2), V3(0, 1, 0))
	p := V3(2.5, 0, -4)

	vx, vy, vz, _ := view.Transform(p)
	ex, ey, ez, ew := proj.Transform(V3(vx, vy, vz))
	gx, gy, gz, gw := proj.Mul(view).Transform(p)

	loose := func(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-4 }
	if !loose(gx, ex) || !loose(gy, ey) || !loose(gz, ez) || !loose(gw, ew) {
		t.Errorf("composed transform = (%v %v %v %v), want (%v %v %v %v)",
			gx, gy, gz, gw, ex, ey, ez, ew)
	}
}
