// Debug rendering of Voronoi diagrams. This is for looking at results, and
// makes no attempt to be pretty.
package draw

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/voronoi/advanced"
	"github.com/osuushi/voronoi/dbg"
	"github.com/pkg/errors"
)

// Padding around the drawing so that points on the bounds are visible
const padding = 20

type Options struct {
	// Pixels per unit
	Scale float64
	// Label Voronoi vertices with readable names
	Labels bool
}

// Render the triangulation's points and the diagram on a black background,
// with the origin at the bottom left. Non-finite vertices are left out.
func Render(sites []advanced.Point, diagram *advanced.Diagram, options Options) *gg.Context {
	scale := options.Scale
	if scale <= 0 {
		scale = 100
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p advanced.Point) {
		if !p.IsFinite() {
			return
		}
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range sites {
		grow(p)
	}
	for _, p := range diagram.Vertices {
		grow(p)
	}
	if math.IsInf(minX, 1) {
		// Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(padding, padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.SetRGB(1, 0.5, 0)
	for _, edge := range diagram.Edges {
		if !edge.Start.IsFinite() || !edge.End.IsFinite() {
			continue
		}
		c.DrawLine(edge.Start.X, edge.Start.Y, edge.End.X, edge.End.Y)
		c.Stroke()
	}

	c.SetRGB(0, 1, 0)
	for _, p := range sites {
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.Fill()
	}

	c.SetRGB(1, 0, 0)
	for i, p := range diagram.Vertices {
		if !p.IsFinite() {
			continue
		}
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
		if options.Labels {
			// Text has to be drawn in device space, or it comes out upside down
			x, y := c.TransformPoint(p.X, p.Y)
			c.Push()
			c.Identity()
			c.SetRGB(1, 1, 1)
			c.DrawStringAnchored(dbg.Name(i), x, y, 0.5, -0.5)
			c.Pop()
		}
	}
	return c
}

func SavePNG(c *gg.Context, path string) error {
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Print a saved image to the terminal (iTerm only).
func Preview(path string, out io.Writer) {
	imgcat.CatFile(path, out)
}
