package lattice

import "github.com/gogpu/lattice/math3"

// Projection is the strategy that turns scene bounds into a
// view-projection matrix. It is selected once at configuration time via
// WithProjection; the engine calls ViewProj every frame with the latest
// bounds snapshot.
//
// The historical variants of this visualization (a pure 2D overlay and a
// 3D ground plane with a fitted camera) are the two stock implementations;
// custom implementations can supply any matrix that follows the math3
// clip conventions.
type Projection interface {
	// Name identifies the projection mode (e.g. "ground3d", "flat").
	Name() string

	// ViewProj computes the world-to-clip matrix framing the given bounds
	// at the given viewport aspect ratio.
	ViewProj(b Bounds, aspect float64, cam Camera) math3.Mat4
}

// groundPlane3D frames the scene with a bird's-eye perspective camera.
type groundPlane3D struct{}

// GroundPlane3D returns the default projection: a perspective camera
// placed above and behind the scene center, refitted every frame.
func GroundPlane3D() Projection {
	return groundPlane3D{}
}

func (groundPlane3D) Name() string { return "ground3d" }

func (groundPlane3D) ViewProj(b Bounds, aspect float64, cam Camera) math3.Mat4 {
	_, _, vp := planCamera(b, aspect, cam)
	return vp
}

// flatOverlay maps the ground plane straight into the viewport.
type flatOverlay struct{}

// FlatOverlay returns the 2D projection: an orthographic fit of the
// margin-padded bounds into the viewport, with no perspective. Layout +Y
// runs down the screen, matching 2D canvas conventions.
func FlatOverlay() Projection {
	return flatOverlay{}
}

func (flatOverlay) Name() string { return "flat" }

func (flatOverlay) ViewProj(b Bounds, aspect float64, cam Camera) math3.Mat4 {
	pb := b.Expand(cam.Margin)
	cx, cy := pb.Center()

	// Uniform scale fitting the larger dimension, aspect-corrected so one
	// world unit is square on screen.
	fit := pb.Width()
	if h := pb.Height() * aspect; h > fit {
		fit = h
	}
	if fit <= 0 {
		fit = 1
	}
	kx := 2 / fit
	ky := kx * aspect

	// clip.x = (x-cx)*kx, clip.y = -(z-cy)*ky, constant mid-range depth.
	var m math3.Mat4
	m[0] = float32(kx)
	m[12] = float32(-cx * kx)
	m[9] = float32(-ky)
	m[13] = float32(cy * ky)
	m[14] = 0.5
	m[15] = 1
	return m
}
