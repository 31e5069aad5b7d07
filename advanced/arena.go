package advanced

import "github.com/samber/lo"

// Append-only vertex storage. Vertices are referred to by index everywhere, so
// growing the arena never invalidates anything. Removing a vertex only marks
// it; the slot stays so that later indexes keep their meaning.
type VertexArena struct {
	points  []Point
	removed map[int]struct{}
}

// Create an arena with the first n slots reserved, one per triangle.
func NewVertexArena(n int) *VertexArena {
	return &VertexArena{
		points:  make([]Point, n, n*2),
		removed: make(map[int]struct{}),
	}
}

func (a *VertexArena) Set(i int, p Point) {
	a.points[i] = p
}

func (a *VertexArena) Append(p Point) int {
	a.points = append(a.points, p)
	return len(a.points) - 1
}

func (a *VertexArena) At(i int) Point {
	return a.points[i]
}

func (a *VertexArena) Len() int {
	return len(a.points)
}

func (a *VertexArena) Remove(i int) {
	a.removed[i] = struct{}{}
}

func (a *VertexArena) IsRemoved(i int) bool {
	_, ok := a.removed[i]
	return ok
}

func (a *VertexArena) RemovedCount() int {
	return len(a.removed)
}

// The vertices that were not removed, in arena order, along with a map from
// arena index to position in the returned slice.
func (a *VertexArena) Live() ([]Point, map[int]int) {
	positions := make(map[int]int, len(a.points)-len(a.removed))
	live := lo.Filter(a.points, func(_ Point, i int) bool {
		if a.IsRemoved(i) {
			return false
		}
		positions[i] = len(positions)
		return true
	})
	return live, positions
}
