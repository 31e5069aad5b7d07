package advanced

import "sort"

// The outline of the triangulated region: every triangle edge that only one
// triangle claims. For a valid triangulation the segments form closed loops,
// and the region may be non-convex or have holes.
type Boundary struct {
	segments []boundarySegment
}

type boundarySegment struct {
	key  EdgeKey
	a, b Point
}

func NewBoundary(points []Point, keys []EdgeKey) *Boundary {
	segments := make([]boundarySegment, len(keys))
	for i, key := range keys {
		segments[i] = boundarySegment{key: key, a: points[key.A], b: points[key.B]}
	}
	return &Boundary{segments: segments}
}

// Whether p is inside the region or on its outline, by even-odd crossings of a
// ray toward +x. Non-finite points are never contained.
func (b *Boundary) Contains(p Point) bool {
	if !p.IsFinite() {
		return false
	}
	inside := false
	for _, s := range b.segments {
		if segmentDistance(p, s.a, s.b) < Tolerance {
			return true
		}
		if (s.a.Y > p.Y) != (s.b.Y > p.Y) {
			x := s.a.X + (p.Y-s.a.Y)*(s.b.X-s.a.X)/(s.b.Y-s.a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Parameters along p->q at which the segment meets the outline, ascending. The
// outline segment with the given key is ignored, so that an edge ending at the
// midpoint of a hull edge doesn't meet that hull edge. Hits at the same
// parameter, from passing through a corner, count once.
func (b *Boundary) Crossings(p, q Point, skip EdgeKey) []float64 {
	var result []float64
	for _, s := range b.segments {
		if s.key == skip {
			continue
		}
		if t, _, ok := segmentIntersection(p, q, s.a, s.b); ok {
			result = append(result, t)
		}
	}
	sort.Float64s(result)

	deduped := result[:0]
	for _, t := range result {
		if len(deduped) > 0 && t-deduped[len(deduped)-1] < Tolerance {
			continue
		}
		deduped = append(deduped, t)
	}
	return deduped
}
