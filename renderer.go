package lattice

// Renderer consumes the engine's output and draws it somewhere: a window,
// an image, a GPU surface. The engine never draws; it only produces the
// Scene geometry and per-frame projection data.
//
// Implementations decide how to interpret the flat buffers: see
// Scene.SegmentBuffer and Scene.DotBuffer for the record layouts, and
// Frame.ViewProj for positioning geometry in 3D modes.
//
// integration/ggview provides a CPU implementation on top of gogpu/gg.
type Renderer interface {
	// RenderScene draws one frame of the given scene snapshot.
	RenderScene(s *Scene, f *Frame) error
}
