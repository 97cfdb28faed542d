package lattice

// Scene is one complete geometry snapshot for an operand pair: both line
// families, their intersections, the digit label anchors, and the bounds
// of everything emitted. A Scene is built in a single pass and never
// mutated afterwards; changing operands builds a fresh one.
type Scene struct {
	// A and B are the operands this scene was built from.
	A, B uint64

	// SegmentsA and SegmentsB are the two mirrored line families.
	SegmentsA []Segment
	SegmentsB []Segment

	// Dots are the classified intersections between the families.
	Dots []Dot

	// Labels are the per-digit-group label anchors, A side first.
	Labels []LabelAnchor

	// Bounds covers every segment endpoint. It is unpadded; projections
	// apply the camera margin themselves.
	Bounds Bounds
}

// buildScene lays out both operands, crosses the families, and returns the
// finished snapshot.
func buildScene(a, b uint64, cfg *config) *Scene {
	digitsA := Digits(a)
	digitsB := Digits(b)

	maxDigits := len(digitsA)
	if len(digitsB) > maxDigits {
		maxDigits = len(digitsB)
	}
	half := cfg.layout.halfLength(maxDigits)

	s := &Scene{A: a, B: b}
	var labelsB []LabelAnchor
	s.SegmentsA, s.Labels = buildSide(digitsA, SideA, half, cfg.layout, cfg.palette, &s.Bounds)
	s.SegmentsB, labelsB = buildSide(digitsB, SideB, half, cfg.layout, cfg.palette, &s.Bounds)
	s.Labels = append(s.Labels, labelsB...)

	s.Dots = intersect(s.SegmentsA, s.SegmentsB, cfg.palette)

	Logger().Debug("lattice: scene rebuilt",
		"a", a, "b", b,
		"segments", len(s.SegmentsA)+len(s.SegmentsB),
		"dots", len(s.Dots),
		"labels", len(s.Labels))
	return s
}

// Segments returns both families as one slice, A side first. The result
// is a fresh slice; the scene's own slices are not exposed to mutation.
func (s *Scene) Segments() []Segment {
	out := make([]Segment, 0, len(s.SegmentsA)+len(s.SegmentsB))
	out = append(out, s.SegmentsA...)
	return append(out, s.SegmentsB...)
}

// SegmentBuffer flattens both families into renderer-ready records of
// seven float32 values each: x1, y1, x2, y2, r, g, b.
func (s *Scene) SegmentBuffer() []float32 {
	buf := make([]float32, 0, 7*(len(s.SegmentsA)+len(s.SegmentsB)))
	for _, family := range [2][]Segment{s.SegmentsA, s.SegmentsB} {
		for _, seg := range family {
			buf = append(buf,
				float32(seg.Start.X), float32(seg.Start.Y),
				float32(seg.End.X), float32(seg.End.Y),
				float32(seg.Color.R), float32(seg.Color.G), float32(seg.Color.B))
		}
	}
	return buf
}

// DotBuffer flattens the intersection dots into records of five float32
// values each: x, y, r, g, b.
func (s *Scene) DotBuffer() []float32 {
	buf := make([]float32, 0, 5*len(s.Dots))
	for _, d := range s.Dots {
		buf = append(buf,
			float32(d.Pos.X), float32(d.Pos.Y),
			float32(d.Color.R), float32(d.Color.G), float32(d.Color.B))
	}
	return buf
}

// Counts tallies the dots per zone. Index z holds the number of
// intersections whose summed place-value power is z; the slice spans
// every possible zone for the scene's operands, including empty ones.
func (s *Scene) Counts() []int {
	maxZone := (len(Digits(s.A)) - 1) + (len(Digits(s.B)) - 1)
	counts := make([]int, maxZone+1)
	for _, d := range s.Dots {
		counts[d.Zone]++
	}
	return counts
}

// DecodeProduct reads the product back out of the picture: each zone-z dot
// contributes 10^z, and the plain integer sum performs the carries. For
// correctly laid out scenes this equals A*B.
func (s *Scene) DecodeProduct() uint64 {
	var product, base uint64 = 0, 1
	for _, n := range s.Counts() {
		product += uint64(n) * base
		base *= 10
	}
	return product
}
