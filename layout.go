package lattice

import (
	"math"
	"strconv"
)

// Point is a position on the 2D ground plane.
type Point struct {
	X, Y float64
}

// Side identifies which operand a segment or label belongs to.
type Side uint8

const (
	// SideA is the first operand's line family (rising diagonal).
	SideA Side = iota

	// SideB is the second operand's line family (mirrored diagonal).
	SideB
)

// String returns "A" or "B".
func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// Segment is one digit line on the ground plane. Segments are immutable
// once built; a rebuild replaces the whole slice.
type Segment struct {
	Start, End Point

	// Power is the place-value power of the digit group this line belongs
	// to (0 = ones).
	Power int

	Side  Side
	Color RGB
}

// LabelAnchor is the world-space anchor for one digit group's label. The
// projector turns anchors into screen-space Labels each frame.
type LabelAnchor struct {
	Text string
	Pos  Point
	Side Side
}

// sideAxes returns the unit diagonal direction and the unit perpendicular
// layout axis for a side. SideA runs along (+1,+1), SideB mirrors it along
// (-1,+1); the two perpendicular axes are likewise swapped diagonals.
func sideAxes(s Side) (dir, perp Point) {
	const h = math.Sqrt2 / 2
	if s == SideA {
		return Point{h, h}, Point{h, -h}
	}
	return Point{-h, h}, Point{h, h}
}

// halfLength returns the dynamic segment half-length for the given maximum
// operand digit count. See Layout for why this grows with the operand.
func (l Layout) halfLength(maxDigits int) float64 {
	return l.HalfLengthBase + l.HalfLengthPerDigit*float64(maxDigits)
}

// layoutWidth returns the total perpendicular extent of a digit sequence.
// Zero digits contribute -IntraSpacing, matching the group advance rule.
func (l Layout) layoutWidth(digits []int) float64 {
	w := float64(len(digits)-1) * l.InterSpacing
	for _, d := range digits {
		w += float64(d-1) * l.IntraSpacing
	}
	return w
}

// buildSide lays out one operand's digit groups along the side's
// perpendicular axis, centered on the origin. Each digit d emits d parallel
// segments tagged with the group's place-value power, plus exactly one
// label anchor pushed outward past the segment ends. All endpoints feed the
// bounds tracker as they are generated.
//
// The running offset advances by (d-1)*IntraSpacing + InterSpacing after
// every group, including d = 0: a zero digit emits nothing but still shifts
// the next group back by one intra spacing. That shift is intentional
// layout behavior inherited from the reference visualization.
func buildSide(digits []int, side Side, half float64, l Layout, pal Palette, bounds *Bounds) ([]Segment, []LabelAnchor) {
	dir, perp := sideAxes(side)
	groups := len(digits)

	segs := make([]Segment, 0, digitSliceSum(digits))
	labels := make([]LabelAnchor, 0, groups)

	offset := -l.layoutWidth(digits) / 2
	for gi, d := range digits {
		power := groups - 1 - gi

		for i := 0; i < d; i++ {
			p := offset + float64(i)*l.IntraSpacing
			cx, cy := perp.X*p, perp.Y*p
			seg := Segment{
				Start: Point{cx - dir.X*half, cy - dir.Y*half},
				End:   Point{cx + dir.X*half, cy + dir.Y*half},
				Power: power,
				Side:  side,
				Color: pal.At(power),
			}
			bounds.Add(seg.Start.X, seg.Start.Y)
			bounds.Add(seg.End.X, seg.End.Y)
			segs = append(segs, seg)
		}

		avg := offset + float64(d-1)/2*l.IntraSpacing
		reach := half + l.LabelDistance
		labels = append(labels, LabelAnchor{
			Text: strconv.Itoa(d),
			Pos:  Point{perp.X*avg + dir.X*reach, perp.Y*avg + dir.Y*reach},
			Side: side,
		})

		offset += float64(d-1)*l.IntraSpacing + l.InterSpacing
	}
	return segs, labels
}

func digitSliceSum(digits []int) int {
	sum := 0
	for _, d := range digits {
		sum += d
	}
	return sum
}
