// Command latticedemo computes a line-multiplication scene and reports how
// the picture encodes the product. With -output it also renders the scene
// to a PNG using the gg software rasterizer.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gogpu/lattice"
	"github.com/gogpu/lattice/integration/ggview"
)

func main() {
	var (
		a      = flag.Uint64("a", 12, "first operand")
		b      = flag.Uint64("b", 23, "second operand")
		width  = flag.Int("width", 800, "viewport width")
		height = flag.Int("height", 600, "viewport height")
		flat   = flag.Bool("flat", false, "use the flat 2D overlay projection")
		output = flag.String("output", "", "render the scene to this PNG file")
	)
	flag.Parse()

	opts := []lattice.Option{}
	if *flat {
		opts = append(opts, lattice.WithProjection(lattice.FlatOverlay()))
	}

	eng := lattice.New(opts...)
	eng.SetOperands(*a, *b)

	scene := eng.Scene()
	fmt.Printf("%d x %d: %d segments, %d intersections\n",
		*a, *b, len(scene.SegmentsA)+len(scene.SegmentsB), len(scene.Dots))
	for zone, n := range scene.Counts() {
		fmt.Printf("  zone %d (10^%d): %d\n", zone, zone, n)
	}
	fmt.Printf("decoded product: %d\n", scene.DecodeProduct())

	if *output == "" {
		return
	}

	view, err := ggview.New(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create view: %v", err)
	}
	frame := eng.Frame(float64(*width), float64(*height))
	if err := view.RenderScene(scene, frame); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := view.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Scene saved to %s (%dx%d)\n", *output, *width, *height)
}
