package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeEdgeKey(t *testing.T) {
	assert.Equal(t, EdgeKey{A: 2, B: 9}, MakeEdgeKey(2, 9))
	assert.Equal(t, EdgeKey{A: 2, B: 9}, MakeEdgeKey(9, 2))
	assert.False(t, MakeEdgeKey(9, 2).Stitched)
}

func TestEdgeKeyLess(t *testing.T) {
	assert.True(t, MakeEdgeKey(0, 5).Less(MakeEdgeKey(1, 2)))
	assert.True(t, MakeEdgeKey(1, 2).Less(MakeEdgeKey(1, 3)))
	assert.False(t, MakeEdgeKey(1, 3).Less(MakeEdgeKey(1, 3)))

	// A stitched key sorts right after the canonical key it replaced
	stitched := MakeEdgeKey(1, 3).stitched()
	assert.True(t, MakeEdgeKey(1, 3).Less(stitched))
	assert.False(t, stitched.Less(MakeEdgeKey(1, 3)))
	assert.True(t, stitched.Less(MakeEdgeKey(1, 4)))
	assert.NotEqual(t, MakeEdgeKey(1, 3), stitched)
}

func TestDualEdgeMap(t *testing.T) {
	t.Run("first sight leaves the edge unresolved", func(t *testing.T) {
		m := NewDualEdgeMap(1)
		m.RecordEdge(MakeEdgeKey(0, 1), 0, 2)
		entry, ok := m.Get(MakeEdgeKey(1, 0))
		require.True(t, ok)
		assert.Equal(t, 0, entry.First)
		assert.Equal(t, Unresolved{Opposite: 2}, entry.Second)
		assert.False(t, entry.IsResolved())
		_, ok = entry.SecondVertex()
		assert.False(t, ok)
	})

	t.Run("second sight resolves the edge", func(t *testing.T) {
		m := NewDualEdgeMap(2)
		m.RecordEdge(MakeEdgeKey(0, 2), 0, 1)
		m.RecordEdge(MakeEdgeKey(2, 0), 1, 3)
		entry, ok := m.Get(MakeEdgeKey(0, 2))
		require.True(t, ok)
		assert.Equal(t, 0, entry.First)
		second, ok := entry.SecondVertex()
		assert.True(t, ok)
		assert.Equal(t, 1, second)
		assert.Equal(t, 2, m.Claims(MakeEdgeKey(0, 2)))
		assert.Empty(t, m.Unresolved())
		assert.Empty(t, m.Overfull())
	})

	t.Run("third sight overwrites and is reported", func(t *testing.T) {
		m := NewDualEdgeMap(3)
		key := MakeEdgeKey(4, 5)
		m.RecordEdge(key, 0, 1)
		m.RecordEdge(key, 1, 2)
		m.RecordEdge(key, 2, 3)
		entry, _ := m.Get(key)
		second, _ := entry.SecondVertex()
		assert.Equal(t, 2, second)
		assert.Equal(t, []EdgeKey{key}, m.Overfull())
		assert.Equal(t, 3, m.Claims(key))
	})

	t.Run("keys are sorted", func(t *testing.T) {
		fixture := UnitSquare()
		m := NewDualEdgeMap(len(fixture.Triangles))
		for i, tri := range fixture.Triangles {
			for _, edge := range tri.Edges() {
				m.RecordEdge(edge.Key, i, edge.Opposite)
			}
		}
		assert.Equal(t, 5, m.Len())
		assert.Equal(t, []EdgeKey{
			MakeEdgeKey(0, 1),
			MakeEdgeKey(0, 2),
			MakeEdgeKey(0, 3),
			MakeEdgeKey(1, 2),
			MakeEdgeKey(2, 3),
		}, m.Keys())
		assert.Equal(t, []EdgeKey{
			MakeEdgeKey(0, 1),
			MakeEdgeKey(0, 3),
			MakeEdgeKey(1, 2),
			MakeEdgeKey(2, 3),
		}, m.Unresolved())

		// The hull edges remember the corner across from them
		entry, _ := m.Get(MakeEdgeKey(0, 3))
		assert.Equal(t, Unresolved{Opposite: 2}, entry.Second)
		entry, _ = m.Get(MakeEdgeKey(1, 2))
		assert.Equal(t, Unresolved{Opposite: 0}, entry.Second)
	})

	t.Run("insert and delete", func(t *testing.T) {
		m := NewDualEdgeMap(1)
		key := MakeEdgeKey(0, 1)
		m.RecordEdge(key, 0, 2)
		m.Delete(key)
		_, ok := m.Get(key)
		assert.False(t, ok)
		m.Insert(key.stitched(), VoronoiEdge{First: 3, Second: Resolved{Vertex: 4}})
		assert.Equal(t, []EdgeKey{key.stitched()}, m.Keys())
	})
}

func TestVertexArena(t *testing.T) {
	arena := NewVertexArena(2)
	arena.Set(0, Point{1, 1})
	arena.Set(1, Point{2, 2})
	assert.Equal(t, 2, arena.Append(Point{3, 3}))
	assert.Equal(t, 3, arena.Append(Point{4, 4}))
	assert.Equal(t, 4, arena.Len())

	arena.Remove(1)
	assert.True(t, arena.IsRemoved(1))
	assert.False(t, arena.IsRemoved(2))
	assert.Equal(t, 1, arena.RemovedCount())
	// Removal keeps the slot
	assert.Equal(t, Point{2, 2}, arena.At(1))
	assert.Equal(t, 4, arena.Len())

	live, positions := arena.Live()
	assert.Equal(t, []Point{{1, 1}, {3, 3}, {4, 4}}, live)
	assert.Equal(t, map[int]int{0: 0, 2: 1, 3: 2}, positions)
}
