package advanced

import "math"

const Tolerance = 1e-9

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func Midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) * 0.5, Y: (p.Y + q.Y) * 0.5}
}

// Implicit line a*x + b*y + c = 0.
type Line struct {
	A, B, C float64
}

// The line through p and q. Its positive side is to the left of p->q.
func LineThrough(p, q Point) Line {
	return Line{
		A: p.Y - q.Y,
		B: q.X - p.X,
		C: p.X*q.Y - p.Y*q.X,
	}
}

// Signed evaluation of the line equation at p. Only the sign is meaningful.
func (l Line) Eval(p Point) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

func (l Line) Side(p Point) int {
	v := l.Eval(p)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// The point at parameter t along p->q.
func Lerp(p, q Point, t float64) Point {
	return Point{X: p.X + t*(q.X-p.X), Y: p.Y + t*(q.Y-p.Y)}
}

func cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

func sub(a, b Point) Point {
	return Point{X: a.X - b.X, Y: a.Y - b.Y}
}

// Where segment p->q meets segment a->b, as parameters along each. Both are in
// [0, 1] when the segments intersect. Parallel segments never intersect.
func segmentIntersection(p, q, a, b Point) (t, u float64, ok bool) {
	r, s := sub(q, p), sub(b, a)
	denom := cross(r, s)
	if denom == 0 {
		return 0, 0, false
	}
	ap := sub(a, p)
	t = cross(ap, s) / denom
	u = cross(ap, r) / denom
	if math.IsNaN(t) || math.IsNaN(u) {
		return 0, 0, false
	}
	return t, u, t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// Distance from p to the segment a-b.
func segmentDistance(p, a, b Point) float64 {
	ab := sub(b, a)
	lengthSquared := ab.X*ab.X + ab.Y*ab.Y
	if lengthSquared == 0 {
		return p.Distance(a)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / lengthSquared
	t = math.Max(0, math.Min(1, t))
	return p.Distance(Lerp(a, b, t))
}
