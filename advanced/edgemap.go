package advanced

import (
	"sort"

	"github.com/samber/lo"
)

// Accumulates, per undirected triangle edge, the circumcenters on either side
// of it. After every triangle has been recorded, keys whose second slot is
// still Unresolved are hull edges.
type DualEdgeMap struct {
	entries map[EdgeKey]VoronoiEdge
	writes  map[EdgeKey]int
}

func NewDualEdgeMap(triangleCount int) *DualEdgeMap {
	// Each interior edge is shared, so the key count is between 1.5 and 3 per
	// triangle.
	capacity := triangleCount * 2
	return &DualEdgeMap{
		entries: make(map[EdgeKey]VoronoiEdge, capacity),
		writes:  make(map[EdgeKey]int, capacity),
	}
}

// Record that the triangle with index owner has the given edge, with opposite
// being the index of its corner not on the edge. The first write sets the first
// vertex and remembers the opposite corner; later writes set the second vertex.
// A third write overwrites the second, and is only noticed through Overfull.
func (m *DualEdgeMap) RecordEdge(key EdgeKey, owner, opposite int) {
	m.writes[key]++
	entry, ok := m.entries[key]
	if !ok {
		m.entries[key] = VoronoiEdge{First: owner, Second: Unresolved{Opposite: opposite}}
		return
	}
	entry.Second = Resolved{Vertex: owner}
	m.entries[key] = entry
}

// How many triangles recorded the key.
func (m *DualEdgeMap) Claims(key EdgeKey) int {
	return m.writes[key]
}

func (m *DualEdgeMap) Get(key EdgeKey) (VoronoiEdge, bool) {
	entry, ok := m.entries[key]
	return entry, ok
}

func (m *DualEdgeMap) Insert(key EdgeKey, edge VoronoiEdge) {
	m.entries[key] = edge
}

func (m *DualEdgeMap) Delete(key EdgeKey) {
	delete(m.entries, key)
}

func (m *DualEdgeMap) Len() int {
	return len(m.entries)
}

// All keys in ascending order.
func (m *DualEdgeMap) Keys() []EdgeKey {
	return sortKeys(lo.Keys(m.entries))
}

// Keys of hull edges, in ascending order.
func (m *DualEdgeMap) Unresolved() []EdgeKey {
	keys := lo.Filter(lo.Keys(m.entries), func(key EdgeKey, _ int) bool {
		return !m.entries[key].IsResolved()
	})
	return sortKeys(keys)
}

// Keys that were claimed by more than two triangles, in ascending order.
func (m *DualEdgeMap) Overfull() []EdgeKey {
	keys := lo.Filter(lo.Keys(m.writes), func(key EdgeKey, _ int) bool {
		return m.writes[key] > 2
	})
	return sortKeys(keys)
}

func sortKeys(keys []EdgeKey) []EdgeKey {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
	return keys
}
