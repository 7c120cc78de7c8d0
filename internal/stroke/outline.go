package stroke

import "math"

// Point represents a 2D point in canvas pixel coordinates.
type Point struct {
	X, Y float64
}

// Sub returns the difference between two points as a vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the point translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the angle of the vector in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// Style defines the pen used for outline expansion.
type Style struct {
	Width float64
	Cap   LineCap

	// Tolerance is the maximum distance between a flattened arc and the
	// true circle. Zero selects DefaultTolerance.
	Tolerance float64
}

// DefaultTolerance is the arc flattening tolerance in pixels.
const DefaultTolerance = 0.1

// Polygon is a closed outline; the closing edge is implicit.
type Polygon []Point

// Outline expands the polyline pts into closed polygons that together
// cover the stroked area. Joins are round: every interior vertex gets a
// disc of the pen radius. Consecutive duplicate points are ignored.
// A polyline that collapses to a single point yields a dot for round and
// square caps and nothing for butt caps.
func Outline(pts []Point, style Style) []Polygon {
	if style.Width <= 0 || len(pts) == 0 {
		return nil
	}
	pts = dedupe(pts)
	r := style.Width / 2
	tol := style.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	if len(pts) == 1 {
		switch style.Cap {
		case LineCapRound:
			return []Polygon{disc(pts[0], r, tol)}
		case LineCapSquare:
			p := pts[0]
			return []Polygon{{
				{X: p.X + r, Y: p.Y + r},
				{X: p.X - r, Y: p.Y + r},
				{X: p.X - r, Y: p.Y - r},
				{X: p.X + r, Y: p.Y - r},
			}}
		default:
			return nil
		}
	}

	out := make([]Polygon, 0, 2*len(pts)-3)
	last := len(pts) - 2
	for i := 0; i <= last; i++ {
		startCap, endCap := LineCapButt, LineCapButt
		if i == 0 {
			startCap = style.Cap
		}
		if i == last {
			endCap = style.Cap
		}
		out = append(out, segment(pts[i], pts[i+1], r, startCap, endCap, tol))
		if i > 0 {
			out = append(out, disc(pts[i], r, tol))
		}
	}
	return out
}

// segment builds the outline of one pen segment from p0 to p1. The outline
// runs along the +normal side first and turns clockwise around each end.
func segment(p0, p1 Point, r float64, startCap, endCap LineCap, tol float64) Polygon {
	d := p1.Sub(p0)
	unit := d.Scale(1 / d.Length())
	n := unit.Perp().Scale(r)
	along := unit.Scale(r)
	theta := d.Angle()

	poly := Polygon{p0.Add(n), p1.Add(n)}
	poly = appendCap(poly, p1, n, along, theta+math.Pi/2, r, endCap, tol)
	poly = append(poly, p0.Add(n.Scale(-1)))
	poly = appendCap(poly, p0, n.Scale(-1), along.Scale(-1), theta-math.Pi/2, r, startCap, tol)
	return poly
}

// appendCap appends the cap at center, going from center+n to center-n.
// out is the outward direction of the cap scaled to the radius and start
// is the angle of n.
func appendCap(poly Polygon, center Point, n, out Vec2, start, r float64, lineCap LineCap, tol float64) Polygon {
	neg := n.Scale(-1)
	switch lineCap {
	case LineCapRound:
		poly = appendArc(poly, center, r, start, -math.Pi, tol)
	case LineCapSquare:
		poly = append(poly,
			center.Add(n).Add(out),
			center.Add(neg).Add(out))
	}
	return append(poly, center.Add(neg))
}

// disc returns a circle traversed with the same winding as segment.
func disc(c Point, r, tol float64) Polygon {
	return appendArc(nil, c, r, 0, -2*math.Pi, tol)
}

// appendArc appends the interior points of an arc around c, excluding the
// start point and including the end point.
func appendArc(poly Polygon, c Point, r, start, sweep, tol float64) Polygon {
	n := arcSegments(r, math.Abs(sweep), tol)
	step := sweep / float64(n)
	for i := 1; i <= n; i++ {
		a := start + step*float64(i)
		poly = append(poly, Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)})
	}
	return poly
}

// arcSegments returns how many chords approximate an arc of the given sweep
// within tol.
func arcSegments(r, sweep, tol float64) int {
	n := 4
	if tol < r {
		maxStep := 2 * math.Acos(1-tol/r)
		if k := int(math.Ceil(sweep / maxStep)); k > n {
			n = k
		}
	}
	return n
}

func dedupe(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
