// Reading triangulations from sectioned text, and writing Voronoi diagrams as
// nested arrays.
//
// The input format is line based. A header line selects a section:
//
//	# Points
//	0 0
//	1 0
//	0 1
//
//	# Triangles
//	0 1 2
//
// Point lines hold two floats, and triangle lines three point indexes. Blank
// lines are ignored anywhere. A "# Neighbors" section is accepted and skipped.
package textformat

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/voronoi/advanced"
	"github.com/pkg/errors"
)

type Triangulation struct {
	Points    []advanced.Point
	Triangles []advanced.Triangle
}

type section int

const (
	sectionNone section = iota
	sectionPoints
	sectionTriangles
	sectionNeighbors
)

var headers = map[string]section{
	"# Points":    sectionPoints,
	"# Triangles": sectionTriangles,
	"# Neighbors": sectionNeighbors,
}

// Parser state, threaded through the lines of one input.
type reader struct {
	section section
	line    int
	result  *Triangulation
}

func ReadFile(path string) (*Triangulation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(&InputAccessError{Path: path, Err: err})
	}
	defer file.Close()

	triangulation, err := Read(file)
	var accessErr *InputAccessError
	if errors.As(err, &accessErr) {
		accessErr.Path = path
	}
	return triangulation, err
}

// Parse a whole triangulation. Any error aborts the read, and no partial
// result is returned.
func Read(in io.Reader) (*Triangulation, error) {
	r := &reader{result: &Triangulation{}}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		r.line++
		if err := r.readLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(&InputAccessError{Err: err})
	}
	return r.result, nil
}

func (r *reader) readLine(line string) error {
	line = strings.TrimRight(line, " \t\r")
	if line == "" {
		return nil
	}

	if strings.HasPrefix(line, "#") {
		section, ok := headers[line]
		if !ok {
			return errors.WithStack(&MalformedSectionError{Line: r.line, Text: line, Reason: "unexpected section label"})
		}
		r.section = section
		return nil
	}

	switch r.section {
	case sectionPoints:
		point, err := r.parsePoint(line)
		if err != nil {
			return err
		}
		r.result.Points = append(r.result.Points, point)
	case sectionTriangles:
		triangle, err := r.parseTriangle(line)
		if err != nil {
			return err
		}
		r.result.Triangles = append(r.result.Triangles, triangle)
	case sectionNeighbors:
		// Not used for building the diagram
	default:
		return errors.WithStack(&MalformedSectionError{Line: r.line, Text: line, Reason: "missing section label"})
	}
	return nil
}

func (r *reader) fields(line string, count int) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields) != count {
		return nil, errors.WithStack(&MalformedRecordError{
			Line:   r.line,
			Text:   line,
			Reason: "expected " + strconv.Itoa(count) + " fields, found " + strconv.Itoa(len(fields)),
		})
	}
	return fields, nil
}

func (r *reader) parsePoint(line string) (advanced.Point, error) {
	fields, err := r.fields(line, 2)
	if err != nil {
		return advanced.Point{}, err
	}
	var coords [2]float64
	for i, field := range fields {
		coords[i], err = strconv.ParseFloat(field, 64)
		if err != nil {
			return advanced.Point{}, errors.WithStack(&MalformedRecordError{
				Line:   r.line,
				Text:   line,
				Reason: "invalid coordinate " + strconv.Quote(field),
			})
		}
	}
	return advanced.Point{X: coords[0], Y: coords[1]}, nil
}

func (r *reader) parseTriangle(line string) (advanced.Triangle, error) {
	fields, err := r.fields(line, 3)
	if err != nil {
		return advanced.Triangle{}, err
	}
	var corners [3]int
	for i, field := range fields {
		index, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return advanced.Triangle{}, errors.WithStack(&MalformedRecordError{
				Line:   r.line,
				Text:   line,
				Reason: "invalid point index " + strconv.Quote(field),
			})
		}
		corners[i] = int(index)
	}
	return advanced.Triangle{A: corners[0], B: corners[1], C: corners[2]}, nil
}
