package stroke

import (
	"math"
	"testing"
)

// signedArea returns twice the shoelace area of p.
func signedArea(p Polygon) float64 {
	var a float64
	for i := range p {
		j := (i + 1) % len(p)
		a += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return a / 2
}

func TestOutlineEmpty(t *testing.T) {
	if got := Outline(nil, Style{Width: 5, Cap: LineCapRound}); got != nil {
		t.Errorf("Outline(nil) = %v, want nil", got)
	}
	if got := Outline([]Point{{1, 1}, {2, 2}}, Style{Width: 0}); got != nil {
		t.Errorf("zero width: got %d polygons, want none", len(got))
	}
}

func TestOutlineDot(t *testing.T) {
	tests := []struct {
		name  string
		cap   LineCap
		count int
		area  float64
	}{
		{"round", LineCapRound, 1, math.Pi * 2.5 * 2.5},
		{"square", LineCapSquare, 1, 25},
		{"butt", LineCapButt, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			polys := Outline([]Point{{10, 10}, {10, 10}}, Style{Width: 5, Cap: tt.cap})
			if len(polys) != tt.count {
				t.Fatalf("got %d polygons, want %d", len(polys), tt.count)
			}
			if tt.count == 0 {
				return
			}
			if a := math.Abs(signedArea(polys[0])); math.Abs(a-tt.area) > 0.1*tt.area {
				t.Errorf("area = %.3f, want ~%.3f", a, tt.area)
			}
		})
	}
}

func TestOutlineSegmentArea(t *testing.T) {
	polys := Outline([]Point{{0, 0}, {10, 0}}, Style{Width: 4, Cap: LineCapButt})
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if a := math.Abs(signedArea(polys[0])); math.Abs(a-40) > 1e-9 {
		t.Errorf("butt segment area = %v, want 40", a)
	}

	polys = Outline([]Point{{0, 0}, {10, 0}}, Style{Width: 4, Cap: LineCapSquare})
	if a := math.Abs(signedArea(polys[0])); math.Abs(a-56) > 1e-9 {
		t.Errorf("square segment area = %v, want 56", a)
	}
}

// TestOutlineWinding checks every emitted polygon shares one winding
// direction, whatever the segment direction.
func TestOutlineWinding(t *testing.T) {
	pts := []Point{{5, 5}, {20, 5}, {20, 20}, {3, 12}, {30, 1}}
	polys := Outline(pts, Style{Width: 5, Cap: LineCapRound})

	if want := 2*len(pts) - 3; len(polys) != want {
		t.Fatalf("got %d polygons, want %d", len(polys), want)
	}
	sign := math.Signbit(signedArea(polys[0]))
	for i, p := range polys {
		if math.Signbit(signedArea(p)) != sign {
			t.Errorf("polygon %d has opposite winding", i)
		}
	}
}

func TestOutlineRoundJoin(t *testing.T) {
	corner := Point{X: 10, Y: 0}
	pts := []Point{{X: 0, Y: 0}, corner, {X: 10, Y: 10}}
	polys := Outline(pts, Style{Width: 4, Cap: LineCapButt})
	if len(polys) != 3 {
		t.Fatalf("got %d polygons, want 2 segments and 1 join", len(polys))
	}

	join := polys[1]
	for i, p := range join {
		if d := p.Sub(corner).Length(); math.Abs(d-2) > 1e-9 {
			t.Errorf("join point %d at distance %v from the corner, want 2", i, d)
		}
	}
	if area := math.Abs(signedArea(join)); area < 0.9*math.Pi*4 {
		t.Errorf("join area = %v, want close to %v", area, math.Pi*4)
	}
}

func TestArcSegments(t *testing.T) {
	if n := arcSegments(1, math.Pi, 5); n != 4 {
		t.Errorf("coarse tolerance: got %d segments, want minimum 4", n)
	}
	if fine, coarse := arcSegments(50, math.Pi, 0.01), arcSegments(50, math.Pi, 1); fine <= coarse {
		t.Errorf("finer tolerance should need more segments: %d <= %d", fine, coarse)
	}
}
