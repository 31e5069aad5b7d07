// Voronoi diagrams from triangulations.
//
// This package takes a triangulation of a point set (typically a Delaunay
// triangulation) and builds the dual Voronoi diagram: one vertex per triangle
// at its circumcenter, one edge per shared triangle edge, and closing edges at
// the hull. Circumcenters that fall outside the triangulation are removed, and
// the edges reaching them are cut where they cross its outline, so every finite
// vertex of the result lies inside the triangulation or on its outline.
package voronoi

import "github.com/osuushi/voronoi/advanced"

type Point = advanced.Point
type Triangle = advanced.Triangle
type Edge = advanced.Edge
type Diagram = advanced.Diagram
type Options = advanced.Options

// Build the Voronoi diagram dual to the triangulation.
//
// Triangles give indexes into points, and must be wound consistently. Nothing
// checks that the triangulation is valid or Delaunay. Collinear triangles
// produce non-finite vertices, unless options.Strict is set, in which case they
// produce an error. See the advanced package for the details.
func Compute(points []Point, triangles []Triangle, options Options) (result *Diagram, err error) {
	defer func() {
		recoveredErr := advanced.HandleVoronoiPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Build(points, triangles, options)
}
