// Command extraptest runs radial extrapolation on an image and writes the
// expanded canvas, for checking the edge-fill behavior in isolation.
package main

import (
	"flag"
	"fmt"
	"os"

	"tunnelscan/internal/extrapolate"
	"tunnelscan/internal/imageio"
	"tunnelscan/pkg/geometry"
)

func main() {
	imagePath := flag.String("image", "", "Path to input image")
	outPath := flag.String("out", "extrapolated.png", "Output path")
	cx := flag.Int("cx", -1, "Center column (default: image midline)")
	cy := flag.Int("cy", -1, "Center row (default: image midline)")
	radius := flag.Int("radius", 0, "Target radius in pixels (required)")
	flag.Parse()

	if *imagePath == "" || *radius < 1 {
		fmt.Println("Usage: extraptest -image <path> -radius <px> [-cx N] [-cy N] [-out path]")
		os.Exit(1)
	}

	img, err := imageio.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded image: %dx%d pixels\n", img.Width, img.Height)

	center := geometry.PointInt{X: *cx, Y: *cy}
	if center.X < 0 {
		center.X = img.Width / 2
	}
	if center.Y < 0 {
		center.Y = img.Height / 2
	}

	canvas, canvasCenter, err := extrapolate.Radial(img, center, *radius)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Extrapolation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Canvas: %dx%d, center (%d,%d)\n", canvas.Width, canvas.Height, canvasCenter.X, canvasCenter.Y)

	if err := imageio.Save(*outPath, canvas); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPath)
}
