package lattice

import (
	"math"
	"testing"
)

func seg(x1, y1, x2, y2 float64, power int, side Side) Segment {
	return Segment{Start: Point{x1, y1}, End: Point{x2, y2}, Power: power, Side: side}
}

func TestSegmentIntersection(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Segment
		want   Point
		wantOK bool
	}{
		{
			name:   "perpendicular cross at origin",
			a:      seg(-1, -1, 1, 1, 0, SideA),
			b:      seg(-1, 1, 1, -1, 0, SideB),
			want:   Point{0, 0},
			wantOK: true,
		},
		{
			name:   "axis-aligned cross",
			a:      seg(0, -2, 0, 2, 0, SideA),
			b:      seg(-2, 1, 2, 1, 0, SideB),
			want:   Point{0, 1},
			wantOK: true,
		},
		{
			name:   "touching at endpoint",
			a:      seg(0, 0, 1, 1, 0, SideA),
			b:      seg(1, 1, 2, 0, 0, SideB),
			want:   Point{1, 1},
			wantOK: true,
		},
		{
			name:   "parallel",
			a:      seg(0, 0, 1, 1, 0, SideA),
			b:      seg(0, 1, 1, 2, 0, SideB),
			wantOK: false,
		},
		{
			name:   "collinear overlap",
			a:      seg(0, 0, 2, 2, 0, SideA),
			b:      seg(1, 1, 3, 3, 0, SideB),
			wantOK: false,
		},
		{
			name:   "zero-length segment",
			a:      seg(1, 1, 1, 1, 0, SideA),
			b:      seg(0, 0, 2, 2, 0, SideB),
			wantOK: false,
		},
		{
			name:   "lines cross beyond segment A",
			a:      seg(0, 0, 1, 1, 0, SideA),
			b:      seg(4, 0, 0, 4, 0, SideB),
			wantOK: false,
		},
		{
			name:   "lines cross before segment B",
			a:      seg(-1, -1, 1, 1, 0, SideA),
			b:      seg(1, -1, 5, -5, 0, SideB),
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := segmentIntersection(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("point = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersectZones(t *testing.T) {
	pal := DefaultPalette()
	a := []Segment{
		seg(-10, -10, 10, 10, 1, SideA), // power 1
		seg(-10, -9, 10, 11, 0, SideA),  // power 0, parallel to the first
	}
	b := []Segment{
		seg(-10, 10, 10, -10, 2, SideB), // power 2
	}

	dots := intersect(a, b, pal)
	if len(dots) != 2 {
		t.Fatalf("got %d dots, want 2", len(dots))
	}
	wantZones := []int{3, 2}
	for i, d := range dots {
		if d.Zone != wantZones[i] {
			t.Errorf("dot %d zone = %d, want %d", i, d.Zone, wantZones[i])
		}
		if d.Color != pal.At(d.Zone) {
			t.Errorf("dot %d color not from palette zone %d", i, d.Zone)
		}
	}
}

func TestIntersectCountIsDigitSumProduct(t *testing.T) {
	tests := []struct {
		a, b uint64
	}{
		{1, 1},
		{12, 23},
		{99, 99},
		{305, 27},
		{999, 999},
	}
	cfg := defaultConfig()
	for _, tt := range tests {
		s := buildScene(tt.a, tt.b, &cfg)
		want := DigitSum(tt.a) * DigitSum(tt.b)
		if len(s.Dots) != want {
			t.Errorf("%d x %d: %d intersections, want %d (digit-sum product)",
				tt.a, tt.b, len(s.Dots), want)
		}
	}
}

func TestPaletteSaturation(t *testing.T) {
	pal := Palette{{1, 0, 0}, {0, 1, 0}}
	tests := []struct {
		power int
		want  RGB
	}{
		{0, RGB{1, 0, 0}},
		{1, RGB{0, 1, 0}},
		{2, RGB{0, 1, 0}}, // beyond the palette saturates
		{99, RGB{0, 1, 0}},
		{-1, RGB{1, 0, 0}},
	}
	for _, tt := range tests {
		if got := pal.At(tt.power); got != tt.want {
			t.Errorf("At(%d) = %v, want %v", tt.power, got, tt.want)
		}
	}
	if got := (Palette{}).At(3); got != (RGB{}) {
		t.Errorf("empty palette At = %v, want zero RGB", got)
	}
}
