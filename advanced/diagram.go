package advanced

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Options struct {
	// Reject collinear triangles and edges claimed by more than two triangles,
	// instead of letting them corrupt the output.
	Strict bool
	// Receives debug events. Nil means no logging.
	Logger *zap.Logger
}

// A Voronoi diagram bounded by the triangulation's hull.
type Diagram struct {
	// Surviving circumcenters in triangle order, followed by the vertices
	// created on the boundary.
	Vertices []Point
	// Edges as literal coordinates, in key order.
	Edges []Edge
	// The same edges as index pairs into Vertices.
	EdgeIndices [][2]int
	// Triangles whose circumcenter is not finite.
	Degenerate []int
	// Triangles whose circumcenter lay outside the triangulation and was
	// removed. Every finite vertex that remains is inside the triangulation or
	// on its outline.
	Stitched []int
}

// Build the Voronoi diagram dual to a triangulation. Triangles must be wound
// consistently and form a valid triangulation; this is not checked, except for
// what Options.Strict covers.
func Build(points []Point, triangles []Triangle, options Options) (*Diagram, error) {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	for t, tri := range triangles {
		for _, index := range []int{tri.A, tri.B, tri.C} {
			if index < 0 || index >= len(points) {
				return nil, errors.WithStack(&TriangleIndexError{Triangle: t, Index: index, PointCount: len(points)})
			}
		}
	}

	vertices := NewVertexArena(len(triangles))
	edges := NewDualEdgeMap(len(triangles))
	var degenerate []int

	for t, tri := range triangles {
		center := Circumcenter(points, tri)
		if !center.IsFinite() {
			if options.Strict {
				return nil, errors.WithStack(&DegenerateGeometryError{Triangle: t, Corners: tri})
			}
			logger.Debug("degenerate triangle",
				zap.Int("triangle", t),
				zap.Float64("x", center.X),
				zap.Float64("y", center.Y),
			)
			degenerate = append(degenerate, t)
		}
		vertices.Set(t, center)

		for _, edge := range tri.Edges() {
			edges.RecordEdge(edge.Key, t, edge.Opposite)
		}
	}

	if overfull := edges.Overfull(); len(overfull) > 0 {
		if options.Strict {
			key := overfull[0]
			return nil, errors.WithStack(&MalformedTopologyError{Edge: key, Claims: edges.Claims(key)})
		}
		for _, key := range overfull {
			logger.Debug("edge claimed by more than two triangles",
				zap.Int("a", key.A),
				zap.Int("b", key.B),
				zap.Int("claims", edges.Claims(key)),
			)
		}
	}

	resolver := NewBoundaryResolver(points, triangles, vertices, edges, logger)
	resolution := resolver.Plan()
	discarded := resolver.Apply(resolution)

	diagram := newDiagram(vertices, edges)
	diagram.Degenerate = degenerate
	diagram.Stitched = resolution.StitchedTriangles()
	logger.Debug("built Voronoi diagram",
		zap.Int("triangles", len(triangles)),
		zap.Int("vertices", len(diagram.Vertices)),
		zap.Int("edges", len(diagram.Edges)),
		zap.Int("closed", resolution.ClosureCount()),
		zap.Int("stitched", len(diagram.Stitched)),
		zap.Int("discarded", discarded),
	)
	return diagram, nil
}

func newDiagram(vertices *VertexArena, edges *DualEdgeMap) *Diagram {
	live, positions := vertices.Live()
	diagram := &Diagram{Vertices: live}
	for _, key := range edges.Keys() {
		entry, _ := edges.Get(key)
		second, ok := entry.SecondVertex()
		if !ok {
			fatalf("edge (%d, %d) is still unresolved", key.A, key.B)
		}
		start, ok := positions[entry.First]
		if !ok {
			fatalf("edge (%d, %d) starts at removed vertex %d", key.A, key.B, entry.First)
		}
		end, ok := positions[second]
		if !ok {
			fatalf("edge (%d, %d) ends at removed vertex %d", key.A, key.B, second)
		}
		diagram.Edges = append(diagram.Edges, Edge{Start: live[start], End: live[end]})
		diagram.EdgeIndices = append(diagram.EdgeIndices, [2]int{start, end})
	}
	return diagram
}

// Number of edges touching each vertex, indexed like Vertices.
func (d *Diagram) Degrees() []int {
	degrees := make([]int, len(d.Vertices))
	for _, pair := range d.EdgeIndices {
		degrees[pair[0]]++
		degrees[pair[1]]++
	}
	return degrees
}
