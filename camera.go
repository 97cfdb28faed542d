package lattice

import (
	"math"

	"github.com/gogpu/lattice/math3"
)

// planCamera derives the bird's-eye framing for the given scene bounds and
// viewport aspect ratio. The bounds are padded by cam.Margin first, then
// the camera backs away far enough for the larger bounds dimension to fit
// the vertical field of view, scaled by the safety factor and floored at
// cam.MinDistance so tiny scenes keep a non-degenerate frustum.
//
// The eye sits above and behind the center at fixed fractions of the
// distance, looking at the center on the ground plane with +Y up. There is
// no smoothing: the camera is replanned from scratch every frame.
func planCamera(b Bounds, aspect float64, cam Camera) (eye, center math3.Vec3, viewProj math3.Mat4) {
	pb := b.Expand(cam.Margin)
	cx, cy := pb.Center()

	dim := pb.Width()
	if h := pb.Height(); h > dim {
		dim = h
	}

	dist := (dim / 2) / math.Tan(cam.FOV/2) * cam.SafetyScale
	if dist < cam.MinDistance {
		dist = cam.MinDistance
	}

	center = math3.V3(float32(cx), 0, float32(cy))
	eye = math3.V3(
		float32(cx),
		float32(dist*cam.Elevation),
		float32(cy+dist*cam.Back),
	)

	view := math3.LookAt(eye, center, math3.V3(0, 1, 0))
	proj := math3.Perspective(float32(cam.FOV), float32(aspect), float32(cam.Near), float32(cam.Far))
	return eye, center, proj.Mul(view)
}
