package advanced

import "fmt"

// A triangle refers to a point that doesn't exist.
type TriangleIndexError struct {
	Triangle   int
	Index      int
	PointCount int
}

func (e *TriangleIndexError) Error() string {
	return fmt.Sprintf("triangle %d refers to point %d, but there are only %d points", e.Triangle, e.Index, e.PointCount)
}

// A triangle whose points are collinear has no circumcenter. This is only
// reported in strict mode; otherwise the non-finite vertex goes into the
// output, and the triangle is listed in Diagram.Degenerate.
type DegenerateGeometryError struct {
	Triangle int
	Corners  Triangle
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("triangle %d (%d, %d, %d) is degenerate and has no circumcenter",
		e.Triangle, e.Corners.A, e.Corners.B, e.Corners.C)
}

// More than two triangles claim the same edge. Only reported in strict mode;
// otherwise the last triangle to claim the edge wins.
type MalformedTopologyError struct {
	Edge   EdgeKey
	Claims int
}

func (e *MalformedTopologyError) Error() string {
	return fmt.Sprintf("edge (%d, %d) is shared by %d triangles", e.Edge.A, e.Edge.B, e.Claims)
}
