package advanced

type Point struct {
	X float64
	Y float64
}

// Triangles refer to their corners by index into the point list. The position
// of a triangle in its list is also the index of its circumcenter in the
// vertex arena.
type Triangle struct {
	A, B, C int
}

type TriangleEdge struct {
	Key      EdgeKey
	Opposite int
}

// Canonical key for an undirected triangle edge. Both triangles sharing an
// edge produce the same key, since A is always the smaller index. Stitched keys
// belong to synthetic edges created during boundary resolution, and never
// collide with the canonical key of the same pair.
type EdgeKey struct {
	A, B     int
	Stitched bool
}

func MakeEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}
}

// Ordering only affects iteration and output order, never identity.
func (k EdgeKey) Less(other EdgeKey) bool {
	if k.A != other.A {
		return k.A < other.A
	}
	if k.B != other.B {
		return k.B < other.B
	}
	return !k.Stitched && other.Stitched
}

func (k EdgeKey) stitched() EdgeKey {
	k.Stitched = true
	return k
}

// What lies across a triangle edge from its first circumcenter. Until a second
// triangle claims the edge, all we know is the point opposite the edge in the
// first triangle, which the boundary side test needs.
type Across interface {
	isAcross()
}

type Unresolved struct {
	Opposite int
}

type Resolved struct {
	Vertex int
}

func (Unresolved) isAcross() {}
func (Resolved) isAcross()   {}

type VoronoiEdge struct {
	First  int
	Second Across
}

// Returns the second vertex index, and whether there is one yet.
func (e VoronoiEdge) SecondVertex() (int, bool) {
	if r, ok := e.Second.(Resolved); ok {
		return r.Vertex, true
	}
	return 0, false
}

func (e VoronoiEdge) IsResolved() bool {
	_, ok := e.SecondVertex()
	return ok
}

type Edge struct {
	Start Point
	End   Point
}
