// Package lattice computes "line multiplication" scenes for the GoGPU
// ecosystem.
//
// # Overview
//
// lattice turns two non-negative integers into a geometric scene that
// visually computes their product: each decimal digit of an operand becomes
// a group of parallel diagonal lines (one line per unit of the digit's
// value), the two operands use mirrored diagonals, and every crossing
// between the two families marks one unit in a place-value zone. Counting
// the crossings zone by zone, with carries, reproduces the product.
//
// The package is the CPU side of the pipeline: it builds segments, detects
// and classifies intersections, tracks scene bounds, plans an auto-framing
// camera, and projects label anchors to screen coordinates. Drawing is left
// to an external Renderer; the engine hands it flat numeric buffers and a
// view-projection matrix.
//
// # Quick Start
//
//	import "github.com/gogpu/lattice"
//
//	eng := lattice.New()
//	eng.SetOperands(12, 23)
//
//	frame := eng.Frame(800, 600)
//	scene := eng.Scene()
//
//	// scene.SegmentBuffer(), scene.DotBuffer(), frame.ViewProj and
//	// frame.Labels go to the renderer of your choice.
//
//	product, _ := scene.DecodeProduct() // 276
//
// # Projection Modes
//
// Two projection strategies are available at configuration time:
//
//   - GroundPlane3D (default): a bird's-eye perspective camera framed from
//     the scene bounds, rebuilt every frame.
//   - FlatOverlay: a direct orthographic fit of the ground plane into the
//     viewport.
//
// Both produce a 16-value column-major view-projection matrix with depth
// mapped to [0, 1], the convention shared with gogpu/wgpu renderers.
//
// # Coordinate System
//
// Scene geometry lives on the Y=0 ground plane: layout X is world X, layout
// Y is world Z. World Y is up; the 3D camera looks down at the plane.
// Projected screen coordinates follow the usual convention with the origin
// at the top-left and Y increasing downward.
package lattice

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
