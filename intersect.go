package lattice

// Dot is one intersection between an A-side and a B-side segment.
type Dot struct {
	Pos Point

	// Zone is the summed place-value power of the two crossing segments.
	// All dots in one zone count units of the same power of ten.
	Zone int

	Color RGB
}

// segmentIntersection solves the parametric system
//
//	a.Start + tA*(a.End-a.Start) = b.Start + tB*(b.End-b.Start)
//
// and returns the intersection point if both parameters lie in [0, 1].
//
// The denominator is the determinant of the two direction vectors; a
// denominator of exactly zero means parallel or collinear segments and
// yields no intersection. The zero check is an exact comparison, not an
// epsilon test: the mirrored ±45° layout makes crossing pairs meet at
// right angles, so near-singular denominators do not occur in practice.
func segmentIntersection(a, b Segment) (Point, bool) {
	dax := a.End.X - a.Start.X
	day := a.End.Y - a.Start.Y
	dbx := b.End.X - b.Start.X
	dby := b.End.Y - b.Start.Y

	den := dax*dby - day*dbx
	if den == 0 {
		return Point{}, false
	}

	dx := b.Start.X - a.Start.X
	dy := b.Start.Y - a.Start.Y
	tA := (dx*dby - dy*dbx) / den
	tB := (dx*day - dy*dax) / den

	if tA < 0 || tA > 1 || tB < 0 || tB > 1 {
		return Point{}, false
	}
	return Point{a.Start.X + tA*dax, a.Start.Y + tA*day}, true
}

// intersect crosses every A segment with every B segment and classifies
// each hit by zone. The pair loop is O(|A|*|B|), bounded by the digit sums
// of the operands (at most 9 lines per digit group).
func intersect(aSegs, bSegs []Segment, pal Palette) []Dot {
	dots := make([]Dot, 0, len(aSegs)*len(bSegs))
	for _, sa := range aSegs {
		for _, sb := range bSegs {
			p, ok := segmentIntersection(sa, sb)
			if !ok {
				continue
			}
			zone := sa.Power + sb.Power
			dots = append(dots, Dot{
				Pos:   p,
				Zone:  zone,
				Color: pal.At(zone),
			})
		}
	}
	return dots
}
