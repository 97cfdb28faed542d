package lattice

import "github.com/gogpu/lattice/math3"

// Project maps a world-space point through the view-projection matrix to
// screen coordinates for a width x height viewport.
//
// Points with clip-space w <= 0 are at or behind the camera plane and
// report visible = false instead of dividing by a vanishing w. Screen Y
// grows downward, so clip-space Y is flipped during the viewport mapping.
func Project(p math3.Vec3, viewProj math3.Mat4, width, height float64) (x, y float64, visible bool) {
	cx, cy, _, cw := viewProj.Transform(p)
	if cw <= 0 {
		return 0, 0, false
	}
	ndcX := float64(cx / cw)
	ndcY := float64(cy / cw)
	return (ndcX + 1) * 0.5 * width, (1 - ndcY) * 0.5 * height, true
}

// groundPoint lifts a 2D layout point onto the Y=0 world ground plane:
// layout X is world X, layout Y is world Z.
func groundPoint(p Point) math3.Vec3 {
	return math3.V3(float32(p.X), 0, float32(p.Y))
}
