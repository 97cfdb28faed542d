package lattice

import "github.com/gogpu/lattice/math3"

// Label is a digit label resolved to screen space for one frame.
type Label struct {
	Text string
	Side Side

	// X, Y are viewport coordinates (origin top-left, Y down). They are
	// meaningful only when Visible is true.
	X, Y float64

	// Visible is false when the anchor projects at or behind the camera.
	Visible bool
}

// Frame is the per-tick output for the renderer: the current
// view-projection matrix and the projected labels. Geometry buffers live
// on the Scene, since they only change when the operands do.
type Frame struct {
	// ViewProj is the combined world-to-clip matrix, column-major,
	// [0, 1] depth. Rebuilt from the bounds snapshot every frame.
	ViewProj math3.Mat4

	// Labels holds one entry per digit group, in scene label order.
	Labels []Label

	// Width and Height are the viewport dimensions the frame was
	// projected for.
	Width, Height float64
}

// Engine owns the current scene snapshot and the configured projection
// strategy. It is single-threaded by design: operand changes and frame
// ticks are expected to run on the same goroutine, matching the
// event-loop model of the surrounding application.
type Engine struct {
	cfg   config
	scene *Scene
}

// New creates an Engine with operands 0 x 0. The default configuration
// uses the GroundPlane3D projection, the stock palette, and the stock
// layout and camera constants.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.projection == nil {
		cfg.projection = GroundPlane3D()
	}
	e := &Engine{cfg: cfg}
	e.scene = buildScene(0, 0, &e.cfg)
	return e
}

// SetOperands rebuilds the scene for a x b. The previous snapshot stays
// valid until the new one is complete, then the swap is a single pointer
// store: a reader never observes a half-built scene.
func (e *Engine) SetOperands(a, b uint64) {
	e.scene = buildScene(a, b, &e.cfg)
}

// Operands returns the operands of the current scene.
func (e *Engine) Operands() (a, b uint64) {
	return e.scene.A, e.scene.B
}

// Scene returns the current geometry snapshot.
func (e *Engine) Scene() *Scene {
	return e.scene
}

// Projection returns the configured projection strategy.
func (e *Engine) Projection() Projection {
	return e.cfg.projection
}

// Frame plans the camera for the latest bounds snapshot and projects every
// label anchor into a width x height viewport. Call once per rendered
// frame; the camera is refit from scratch each time, with no smoothing.
func (e *Engine) Frame(width, height float64) *Frame {
	aspect := 1.0
	if width > 0 && height > 0 {
		aspect = width / height
	}

	s := e.scene
	f := &Frame{
		ViewProj: e.cfg.projection.ViewProj(s.Bounds, aspect, e.cfg.camera),
		Labels:   make([]Label, len(s.Labels)),
		Width:    width,
		Height:   height,
	}
	for i, a := range s.Labels {
		x, y, ok := Project(groundPoint(a.Pos), f.ViewProj, width, height)
		f.Labels[i] = Label{Text: a.Text, Side: a.Side, X: x, Y: y, Visible: ok}
	}
	return f
}
