package advanced

import (
	"go.uber.org/zap"
)

// Closes the Voronoi edges of hull triangle edges, which only have one
// circumcenter, and keeps the diagram inside the triangulated region.
//
// When the circumcenter lies on the triangle's side of the hull edge (or on the
// edge itself), the ray from it heads out across the edge, and the edge is
// closed at the hull edge's midpoint.
//
// Otherwise the ray runs away from the triangulation, and the hull entry is
// dropped. Its circumcenter is outside the region, and is stitched: it is
// removed, and each Voronoi edge reaching it is cut where the edge crosses the
// region's outline. The cut edges replace the originals under stitched keys.
// Circumcenters that are outside the region without being beyond their own hull
// edge (a neighbor's hull edge cuts them off) are stitched the same way. An
// edge with both ends outside keeps the part between its first two crossings,
// or is dropped when it never enters the region.
//
// Resolution happens in two phases. Plan only reads the edge map, and Apply
// performs all of the insertions and deletions afterwards.
type BoundaryResolver struct {
	points    []Point
	triangles []Triangle
	vertices  *VertexArena
	edges     *DualEdgeMap
	logger    *zap.Logger
}

func NewBoundaryResolver(
	points []Point,
	triangles []Triangle,
	vertices *VertexArena,
	edges *DualEdgeMap,
	logger *zap.Logger,
) *BoundaryResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BoundaryResolver{
		points:    points,
		triangles: triangles,
		vertices:  vertices,
		edges:     edges,
		logger:    logger,
	}
}

type closure struct {
	key   EdgeKey
	point Point
}

// The actions decided by a read-only scan of the hull entries.
type Resolution struct {
	boundary *Boundary
	closures []closure
	// Hull entries whose circumcenter is beyond them
	dropped []EdgeKey
	// Triangles whose circumcenter is outside the region, ascending
	stitches []int
}

func (res Resolution) ClosureCount() int {
	return len(res.closures)
}

// Indexes of the triangles whose circumcenters get stitched, in the order they
// will be processed.
func (res Resolution) StitchedTriangles() []int {
	return append([]int(nil), res.stitches...)
}

func (r *BoundaryResolver) Plan() Resolution {
	hull := r.edges.Unresolved()
	res := Resolution{boundary: NewBoundary(r.points, hull)}

	outside := make(map[int]struct{})
	for t := range r.triangles {
		center := r.vertices.At(t)
		// Degenerate centers stay put. There is nothing to cut them against.
		if center.IsFinite() && !res.boundary.Contains(center) {
			outside[t] = struct{}{}
			res.stitches = append(res.stitches, t)
		}
	}

	for _, key := range hull {
		entry, _ := r.edges.Get(key)
		opposite := entry.Second.(Unresolved).Opposite

		p1, p2 := r.points[key.A], r.points[key.B]
		line := LineThrough(p1, p2)
		vertexSide := line.Side(r.vertices.At(entry.First))
		oppositeSide := line.Side(r.points[opposite])

		// A non-finite circumcenter has no side, and neither does the opposite
		// point of a flat triangle. Both get closed at the midpoint.
		beyond := vertexSide != 0 && oppositeSide != 0 && vertexSide != oppositeSide
		if beyond {
			if _, ok := outside[entry.First]; ok {
				res.dropped = append(res.dropped, key)
				continue
			}
			// Only possible when the region is not convex
			r.logger.Debug("circumcenter is beyond its hull edge but inside the triangulation",
				zap.Int("triangle", entry.First),
				zap.Int("a", key.A),
				zap.Int("b", key.B),
			)
		}
		res.closures = append(res.closures, closure{key, Midpoint(p1, p2)})
	}
	return res
}

// Apply the resolution, and return the number of edges that were dropped
// because they lie entirely outside the region.
func (r *BoundaryResolver) Apply(res Resolution) int {
	// Midpoints go in first, so every remaining entry is resolved except the
	// dropped hull entries.
	for _, c := range res.closures {
		entry, ok := r.edges.Get(c.key)
		if !ok {
			fatalf("closed edge %v is missing from the edge map", c.key)
		}
		entry.Second = Resolved{Vertex: r.vertices.Append(c.point)}
		r.edges.Insert(c.key, entry)
	}

	stitched := make(map[int]struct{}, len(res.stitches))
	for _, t := range res.stitches {
		stitched[t] = struct{}{}
	}
	dropped := make(map[EdgeKey]struct{}, len(res.dropped))
	for _, key := range res.dropped {
		dropped[key] = struct{}{}
	}

	type insertion struct {
		key  EdgeKey
		edge VoronoiEdge
	}
	var (
		deletions  = append([]EdgeKey(nil), res.dropped...)
		insertions []insertion
		cut        = make(map[EdgeKey]struct{})
		discarded  int
	)

	for _, t := range res.stitches {
		for _, key := range sortKeys(triangleKeys(r.triangles[t])) {
			if _, ok := dropped[key]; ok {
				continue
			}
			if _, ok := cut[key]; ok {
				// Already cut from the triangle on the other side
				continue
			}
			cut[key] = struct{}{}

			entry, ok := r.edges.Get(key)
			if !ok {
				fatalf("edge %v of triangle %d is missing from the edge map", key, t)
			}
			second, ok := entry.SecondVertex()
			if !ok {
				fatalf("edge %v of stitched triangle %d was never resolved", key, t)
			}
			deletions = append(deletions, key)

			first, second, ok := r.clip(res.boundary, key, entry.First, second, stitched)
			if !ok {
				discarded++
				r.logger.Debug("dropped Voronoi edge outside the triangulation",
					zap.Int("a", key.A),
					zap.Int("b", key.B),
				)
				continue
			}
			insertions = append(insertions, insertion{
				key:  key.stitched(),
				edge: VoronoiEdge{First: first, Second: Resolved{Vertex: second}},
			})
		}
		r.vertices.Remove(t)
		r.logger.Debug("stitched circumcenter outside the triangulation", zap.Int("triangle", t))
	}

	for _, key := range deletions {
		r.edges.Delete(key)
	}
	for _, ins := range insertions {
		r.edges.Insert(ins.key, ins.edge)
	}
	return discarded
}

// Cut the edge u-w down to its part inside the region, replacing each stitched
// end with a new vertex on the outline. Cut points always lie on the original
// segment. Returns false if nothing of the edge is inside.
func (r *BoundaryResolver) clip(
	boundary *Boundary,
	key EdgeKey,
	u, w int,
	stitched map[int]struct{},
) (int, int, bool) {
	from, to := r.vertices.At(u), r.vertices.At(w)
	if !from.IsFinite() || !to.IsFinite() {
		return 0, 0, false
	}
	_, uOut := stitched[u]
	_, wOut := stitched[w]
	crossings := boundary.Crossings(from, to, key)

	switch {
	case uOut && wOut:
		if len(crossings) < 2 {
			return 0, 0, false
		}
		u = r.appendCut(key, from, to, crossings[0])
		w = r.appendCut(key, from, to, crossings[1])
	case uOut:
		t, ok := exitCrossing(reversed(crossings))
		if !ok {
			return 0, 0, false
		}
		u = r.appendCut(key, to, from, t)
	case wOut:
		t, ok := exitCrossing(crossings)
		if !ok {
			return 0, 0, false
		}
		w = r.appendCut(key, from, to, t)
	}
	return u, w, true
}

func (r *BoundaryResolver) appendCut(key EdgeKey, from, to Point, t float64) int {
	crossing := Lerp(from, to, t)
	r.logger.Debug("cut Voronoi edge at the triangulation's outline",
		zap.Int("a", key.A),
		zap.Int("b", key.B),
		zap.Float64("x", crossing.X),
		zap.Float64("y", crossing.Y),
	)
	return r.vertices.Append(crossing)
}

// Given crossings measured from an inside end of an edge toward an outside
// end, the one where the edge leaves the region. A crossing right at the start
// only means the inside end sits on the outline, so a later one is preferred.
func exitCrossing(crossings []float64) (float64, bool) {
	for _, t := range crossings {
		if t > Tolerance {
			return t, true
		}
	}
	if len(crossings) > 0 {
		return crossings[len(crossings)-1], true
	}
	return 0, false
}

// Crossings measured from the other end.
func reversed(crossings []float64) []float64 {
	result := make([]float64, len(crossings))
	for i, t := range crossings {
		result[len(crossings)-1-i] = 1 - t
	}
	return result
}

func triangleKeys(tri Triangle) []EdgeKey {
	keys := make([]EdgeKey, 0, 3)
	for _, edge := range tri.Edges() {
		keys = append(keys, edge.Key)
	}
	return keys
}
