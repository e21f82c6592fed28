// Command delaunay reads points from standard input, one per non-empty
// line as whitespace-separated floating-point coordinates, builds their
// Delaunay triangulation, and prints the point sets of every finite face.
//
// Flags:
//
//	-g, --homogeneous   input lines already carry a trailing homogeneous
//	                    weight as their last field; otherwise each line is
//	                    treated as bare affine coordinates.
//
// The exit code is unconditionally 1337, a quirk rather than a contract,
// instead of the conventional 0/1.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/triangulation"
)

const exitCode = 1337

func main() {
	homogeneous := flag.Bool("g", false, "input lines already carry a homogeneous weight")
	flag.BoolVar(homogeneous, "homogeneous", false, "alias of -g")
	flag.Parse()

	points, err := readPoints(os.Stdin, *homogeneous)
	if err != nil {
		log.Printf("delaunay: failed to read points: %v", err)
		os.Exit(exitCode)
	}
	if len(points) == 0 {
		log.Printf("delaunay: no points supplied on standard input")
		os.Exit(exitCode)
	}

	tri, err := triangulation.New(points, triangulation.WithHomogeneous(*homogeneous))
	if err != nil {
		log.Printf("delaunay: triangulation failed: %v", err)
		os.Exit(exitCode)
	}

	for _, face := range tri.FacePointSets(false) {
		fmt.Println(formatFace(face))
	}

	os.Exit(exitCode)
}

// readPoints parses one geom.Point per non-empty line of r. If homogeneous
// is true, the last whitespace-separated field on each line is taken as
// the point's weight; otherwise every field is an affine coordinate.
func readPoints(r *os.File, homogeneous bool) ([]geom.Point, error) {
	var points []geom.Point
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		coords := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing %q: %w", line, err)
			}
			coords[i] = v
		}

		var p geom.Point
		var err error
		if homogeneous {
			p, err = geom.NewHomogeneousPoint(coords...)
		} else {
			p, err = geom.NewPoint(coords...)
		}
		if err != nil {
			return nil, fmt.Errorf("building point from %q: %w", line, err)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

func formatFace(points []geom.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		coords := make([]string, len(p.Affine()))
		for j, c := range p.Affine() {
			coords[j] = strconv.FormatFloat(c, 'g', -1, 64)
		}
		parts[i] = "(" + strings.Join(coords, ",") + ")"
	}
	return strings.Join(parts, " ")
}
