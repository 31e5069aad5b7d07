package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into triangulations. This is not a full
// (or even correct) svg parser. Every polygon in the file is taken to be one
// triangle, in document order, and points are shared between triangles by
// exact coordinate equality. If anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type Fixture struct {
	Points    []Point
	Triangles []Triangle
}

func LoadFixture(name string) *Fixture {
	file, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer file.Close()
	rootEl, err := svgparser.Parse(file, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}

	result := &Fixture{}
	pointIndex := make(map[Point]int)
	for _, polygonEl := range polygons {
		var corners []int
		for _, pointString := range strings.Split(polygonEl.Attributes["points"], " ") {
			if pointString == "" {
				continue
			}
			point := parseFixturePoint(pointString)
			index, ok := pointIndex[point]
			if !ok {
				index = len(result.Points)
				pointIndex[point] = index
				result.Points = append(result.Points, point)
			}
			corners = append(corners, index)
		}
		if len(corners) != 3 {
			log.Fatalf("Polygon in fixture %q has %d points, expected a triangle", name, len(corners))
		}
		result.Triangles = append(result.Triangles, Triangle{corners[0], corners[1], corners[2]})
	}
	return result
}

func parseFixturePoint(pointString string) Point {
	pointStrings := strings.Split(pointString, ",")
	if len(pointStrings) != 2 {
		log.Fatalf("Invalid point string %q", pointString)
	}
	x, err := strconv.ParseFloat(pointStrings[0], 64)
	if err != nil {
		log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
	}
	y, err := strconv.ParseFloat(pointStrings[1], 64)
	if err != nil {
		log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
	}
	return Point{x, y}
}

// Some ad hoc fixtures

func SingleRightTriangle() *Fixture {
	return &Fixture{
		Points:    []Point{{0, 0}, {1, 0}, {0, 1}},
		Triangles: []Triangle{{0, 1, 2}},
	}
}

func UnitSquare() *Fixture {
	return &Fixture{
		Points:    []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Triangles: []Triangle{{0, 1, 2}, {0, 2, 3}},
	}
}

// A jittered n by n grid, with each cell split along a random diagonal. The
// result is a valid triangulation, but not a Delaunay one, so it exercises
// stitching a lot more than realistic input would.
func JitteredGrid(n int, jitter float64, random func() float64) *Fixture {
	result := &Fixture{}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			result.Points = append(result.Points, Point{
				X: float64(x) + jitter*(2*random()-1),
				Y: float64(y) + jitter*(2*random()-1),
			})
		}
	}
	for y := 0; y < n-1; y++ {
		for x := 0; x < n-1; x++ {
			a := y*n + x
			b := a + 1
			c := a + n + 1
			d := a + n
			if random() < 0.5 {
				result.Triangles = append(result.Triangles, Triangle{a, b, c}, Triangle{a, c, d})
			} else {
				result.Triangles = append(result.Triangles, Triangle{a, b, d}, Triangle{b, c, d})
			}
		}
	}
	return result
}

// n points scattered uniformly over a size by size square.
func RandomPoints(n int, size float64, random func() float64) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{size * random(), size * random()}
	}
	return points
}

// Brute force Delaunay triangulation, with every triangle wound
// counterclockwise. Only usable for small point sets in general position.
func Delaunay(points []Point) *Fixture {
	result := &Fixture{Points: points}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			for k := j + 1; k < len(points); k++ {
				a, b, c := points[i], points[j], points[k]
				orientation := cross(sub(b, a), sub(c, a))
				if orientation == 0 {
					continue
				}
				tri := Triangle{i, j, k}
				if orientation < 0 {
					tri = Triangle{i, k, j}
				}
				empty := true
				for m, d := range points {
					if m == i || m == j || m == k {
						continue
					}
					if inCircumcircle(points[tri.A], points[tri.B], points[tri.C], d) {
						empty = false
						break
					}
				}
				if empty {
					result.Triangles = append(result.Triangles, tri)
				}
			}
		}
	}
	return result
}

// Whether d is strictly inside the circle through the counterclockwise
// triangle a, b, c.
func inCircumcircle(a, b, c, d Point) bool {
	ad, bd, cd := sub(a, d), sub(b, d), sub(c, d)
	return (ad.X*ad.X+ad.Y*ad.Y)*cross(bd, cd)-
		(bd.X*bd.X+bd.Y*bd.Y)*cross(ad, cd)+
		(cd.X*cd.X+cd.Y*cd.Y)*cross(ad, bd) > 0
}
