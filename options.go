package lattice

import "math"

// Layout holds the tuning constants for digit line placement. All values
// are world-space distances on the ground plane.
//
// HalfLengthBase and HalfLengthPerDigit define the dynamic segment
// half-length: half = HalfLengthBase + HalfLengthPerDigit * maxDigits,
// where maxDigits is the digit count of the larger operand. Growing the
// half-length with the operand size is what makes every line reach across
// the opposing family; it is a layout heuristic, not a proven geometric
// guarantee, so treat these as tuning knobs.
type Layout struct {
	// IntraSpacing is the distance between lines within one digit group.
	IntraSpacing float64

	// InterSpacing is the distance between consecutive digit groups.
	InterSpacing float64

	// HalfLengthBase is the minimum segment half-length.
	HalfLengthBase float64

	// HalfLengthPerDigit is the half-length growth per operand digit.
	HalfLengthPerDigit float64

	// LabelDistance is how far beyond the segment end a digit label sits.
	LabelDistance float64
}

// DefaultLayout returns the stock layout constants.
func DefaultLayout() Layout {
	return Layout{
		IntraSpacing:       0.6,
		InterSpacing:       2.0,
		HalfLengthBase:     3.0,
		HalfLengthPerDigit: 4.0,
		LabelDistance:      1.2,
	}
}

// Camera holds the framing constants for the GroundPlane3D projection.
type Camera struct {
	// FOV is the vertical field of view in radians.
	FOV float64

	// Margin is padding added to the scene bounds before framing.
	Margin float64

	// SafetyScale scales the fitted camera distance up so the scene does
	// not touch the viewport edges.
	SafetyScale float64

	// MinDistance floors the camera distance so single-digit scenes do not
	// degenerate into an extreme close-up.
	MinDistance float64

	// Elevation and Back position the eye relative to the scene center as
	// fractions of the camera distance: eye = center + (0, d*Elevation,
	// d*Back). Together they give the bird's-eye framing.
	Elevation float64
	Back      float64

	// Near and Far are the clip plane distances.
	Near float64
	Far  float64
}

// DefaultCamera returns the stock framing constants.
func DefaultCamera() Camera {
	return Camera{
		FOV:         45 * degToRad,
		Margin:      1.5,
		SafetyScale: 1.2,
		MinDistance: 12,
		Elevation:   0.85,
		Back:        0.55,
		Near:        0.1,
		Far:         2000,
	}
}

const degToRad = math.Pi / 180

// Option configures an Engine during creation.
//
// Example:
//
//	// Default bird's-eye 3D framing
//	eng := lattice.New()
//
//	// Flat 2D overlay with a custom palette
//	eng := lattice.New(
//	    lattice.WithProjection(lattice.FlatOverlay()),
//	    lattice.WithPalette(myPalette),
//	)
type Option func(*config)

// config holds the resolved Engine configuration.
type config struct {
	layout     Layout
	camera     Camera
	palette    Palette
	projection Projection
}

// defaultConfig returns the default engine configuration.
func defaultConfig() config {
	return config{
		layout:     DefaultLayout(),
		camera:     DefaultCamera(),
		palette:    DefaultPalette(),
		projection: nil, // resolved to GroundPlane3D in New
	}
}

// WithLayout overrides the layout tuning constants.
func WithLayout(l Layout) Option {
	return func(c *config) {
		c.layout = l
	}
}

// WithCamera overrides the camera framing constants.
func WithCamera(cam Camera) Option {
	return func(c *config) {
		c.camera = cam
	}
}

// WithPalette sets the zone palette. The palette must be non-empty;
// an empty palette is ignored and the default is kept.
func WithPalette(p Palette) Option {
	return func(c *config) {
		if len(p) > 0 {
			c.palette = p
		}
	}
}

// WithProjection selects the projection strategy. Use GroundPlane3D() or
// FlatOverlay(), or inject a custom Projection implementation.
func WithProjection(p Projection) Option {
	return func(c *config) {
		c.projection = p
	}
}
