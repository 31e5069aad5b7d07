package textformat

import (
	"bufio"
	"io"
	"strconv"

	"github.com/osuushi/voronoi/advanced"
	"github.com/pkg/errors"
)

// Write the diagram as
//
//	{"vertices":[[x,y],...],"edges":[[[x1,y1],[x2,y2]],...]}
//
// with one vertex or edge per line. Finite coordinates are written in their
// shortest exact form, so the output is valid JSON unless the diagram holds
// non-finite vertices from degenerate triangles, which are written as NaN or
// +Inf/-Inf.
func Write(out io.Writer, diagram *advanced.Diagram) error {
	w := bufio.NewWriter(out)

	w.WriteString("{\n\"vertices\":[\n")
	for i, vertex := range diagram.Vertices {
		if i > 0 {
			w.WriteString(",\n")
		}
		writePoint(w, vertex)
	}
	w.WriteString("\n],\n\"edges\":[\n")
	for i, edge := range diagram.Edges {
		if i > 0 {
			w.WriteString(",\n")
		}
		w.WriteByte('[')
		writePoint(w, edge.Start)
		w.WriteByte(',')
		writePoint(w, edge.End)
		w.WriteByte(']')
	}
	w.WriteString("\n]\n}\n")

	return errors.Wrap(w.Flush(), "writing diagram")
}

func writePoint(w *bufio.Writer, p advanced.Point) {
	w.WriteByte('[')
	w.WriteString(formatCoordinate(p.X))
	w.WriteByte(',')
	w.WriteString(formatCoordinate(p.Y))
	w.WriteByte(']')
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
