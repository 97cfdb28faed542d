package lattice

// Bounds is the running axis-aligned extent of the scene on the ground
// plane. The zero value is empty; Add extends it point by point.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64

	set bool
}

// Add extends the bounds to include the point (x, y).
func (b *Bounds) Add(x, y float64) {
	if !b.set {
		b.MinX, b.MaxX = x, x
		b.MinY, b.MaxY = y, y
		b.set = true
		return
	}
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Empty reports whether no points have been added.
func (b Bounds) Empty() bool {
	return !b.set
}

// Width returns the X extent. Empty bounds have zero width.
func (b Bounds) Width() float64 {
	if !b.set {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the Y extent. Empty bounds have zero height.
func (b Bounds) Height() float64 {
	if !b.set {
		return 0
	}
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the bounds. Empty bounds center on the
// origin, which keeps the camera sane for scenes with no segments (0 x 0).
func (b Bounds) Center() (x, y float64) {
	if !b.set {
		return 0, 0
	}
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Expand returns the bounds grown by margin on every side. Expanding empty
// bounds yields a margin-sized box around the origin.
func (b Bounds) Expand(margin float64) Bounds {
	if !b.set {
		b.MinX, b.MinY = 0, 0
		b.MaxX, b.MaxY = 0, 0
		b.set = true
	}
	b.MinX -= margin
	b.MinY -= margin
	b.MaxX += margin
	b.MaxY += margin
	return b
}
