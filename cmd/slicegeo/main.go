// Command slicegeo slices a binary STL mesh into per-height holed polygons,
// optionally insetting each by a tool radius and writing a debug SVG per
// slice. It is a thin wrapper over the geom/stl pipeline.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wrthold/slicegeo/geom"
	"github.com/wrthold/slicegeo/stl"
	"github.com/wrthold/slicegeo/svgsink"
)

func main() {
	inPath := flag.String("in", "", "path to a binary STL file (required)")
	thickness := flag.Float64("thickness", 0.2, "slice thickness")
	radius := flag.Float64("radius", 0, "tool radius to inset by; 0 skips offsetting")
	svgDir := flag.String("svg", "", "if set, write one debug SVG per slice into this directory")
	debug := flag.Bool("debug", false, "enable verbose pipeline tracing")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "slicegeo: -in is required")
		flag.Usage()
		os.Exit(1)
	}
	if *thickness <= 0 {
		fmt.Fprintln(os.Stderr, "slicegeo: -thickness must be positive")
		os.Exit(1)
	}

	geom.Debug = *debug
	stl.Debug = *debug

	if err := run(*inPath, *thickness, *radius, *svgDir); err != nil {
		fmt.Fprintf(os.Stderr, "slicegeo: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath string, thickness, radius float64, svgDir string) error {
	mesh, err := stl.Load(inPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inPath, err)
	}

	points := geom.NewPointsHash(1e-6)
	slices := stl.CutEventSweep(mesh.Facets, thickness, points)

	if svgDir != "" {
		if err := os.MkdirAll(svgDir, 0o755); err != nil {
			return fmt.Errorf("creating svg dir: %w", err)
		}
	}
	viewer := svgsink.NewViewer()

	for _, slice := range slices {
		merged := geom.ResolveOverlapsCounting(slice.Segments)
		polygons := geom.BuildPolygons(merged)
		shapes := make([]geom.Shape, len(polygons))
		for i, p := range polygons {
			shapes[i] = p
		}
		forest := geom.Classify(shapes)
		holedPolygons := geom.BuildHoledPolygons(polygons, forest)

		fmt.Printf("z=%.4f: %d holed polygon(s)\n", slice.Height, len(holedPolygons))

		var colored []svgsink.Colored
		for _, hp := range holedPolygons {
			colored = append(colored, svgsink.Colored{Color: "black", Shape: svgsink.PolygonShape{Polygon: hp.Outer}})
			for _, h := range hp.Holes {
				colored = append(colored, svgsink.Colored{Color: "red", Shape: svgsink.PolygonShape{Polygon: h}})
			}

			if radius > 0 {
				pockets := geom.OffsetHoledPolygon(hp, radius, points)
				for _, hpk := range pockets {
					colored = append(colored, svgsink.Colored{Color: "blue", Shape: svgsink.PocketShape{Pocket: hpk.Outer}})
					for _, h := range hpk.Holes {
						colored = append(colored, svgsink.Colored{Color: "green", Shape: svgsink.PocketShape{Pocket: h}})
					}
				}
			}
		}

		if svgDir != "" && len(colored) > 0 {
			doc := viewer.Render(colored)
			name := filepath.Join(svgDir, viewer.NextName())
			if err := os.WriteFile(name, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", name, err)
			}
		}
	}
	return nil
}
