package advanced

// Center of the circle through the triangle's three points, which is the
// triangle's vertex in the Voronoi diagram.
//
// The sums are accumulated over the three rotations of the corner indices, so
// the result does not depend on winding. Collinear points make the denominator
// zero, and the result is non-finite. Callers decide what to do with that.
func Circumcenter(points []Point, tri Triangle) Point {
	i, j, k := tri.A, tri.B, tri.C
	var d, cx, cy float64
	py := 1.0
	for rotation := 0; rotation < 3; rotation++ {
		a, b, c := points[i], points[j], points[k]

		dy := a.Y - b.Y
		dl := dy * c.X

		py *= dy
		d += dl
		cx += dl * c.X
		cy += (a.X*a.X + a.Y*a.Y) * (c.X - b.X)

		i, j, k = j, k, i
	}
	d *= 2
	return Point{
		X: (cx - py) / d,
		Y: cy / d,
	}
}

// Edges of a triangle, each paired with the corner opposite to it.
func (tri Triangle) Edges() [3]TriangleEdge {
	return [3]TriangleEdge{
		{MakeEdgeKey(tri.A, tri.B), tri.C},
		{MakeEdgeKey(tri.B, tri.C), tri.A},
		{MakeEdgeKey(tri.C, tri.A), tri.B},
	}
}
