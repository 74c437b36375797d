package sector

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"

	"tunnelscan/internal/imageio"
	"tunnelscan/pkg/colorutil"
	"tunnelscan/pkg/geometry"
)

// OverlayOptions controls sector overlay rendering.
type OverlayOptions struct {
	Color     color.RGBA
	Thickness int
	// Labels draws the 1-based sector index at each sector's midpoint.
	Labels bool
}

// DrawSectors draws the ring circles and wedge boundary lines of the sector
// partition onto a copy of the image.
func DrawSectors(img *imageio.BGRImage, center geometry.PointInt, radii []int, wedges int, opts OverlayOptions) (*imageio.BGRImage, error) {
	if wedges < 1 {
		return nil, fmt.Errorf("wedge count must be >= 1, got %d", wedges)
	}
	mat, err := img.ToMat()
	if err != nil {
		return nil, fmt.Errorf("draw sectors: %w", err)
	}
	defer mat.Close()

	c := image.Pt(center.X, center.Y)
	for _, r := range radii {
		gocv.Circle(&mat, c, r, opts.Color, opts.Thickness)
	}

	outer := 0
	if len(radii) > 0 {
		outer = radii[len(radii)-1]
	}
	for j := 0; j < wedges; j++ {
		ang := 2 * math.Pi * float64(j) / float64(wedges)
		end := image.Pt(
			center.X+int(float64(outer)*math.Cos(ang)),
			center.Y+int(float64(outer)*math.Sin(ang)),
		)
		gocv.Line(&mat, c, end, opts.Color, opts.Thickness)
	}

	if opts.Labels {
		drawSectorLabels(&mat, center, radii, wedges, opts.Color)
	}
	return imageio.FromMat(mat)
}

// drawSectorLabels puts the 1-based sector id at each sector's radial
// midpoint, white underlay first for contrast.
func drawSectorLabels(mat *gocv.Mat, center geometry.PointInt, radii []int, wedges int, c color.RGBA) {
	white := colorutil.White
	rIn := 0
	for ring, rOut := range radii {
		rMid := (rIn + rOut) / 2
		for j := 0; j < wedges; j++ {
			ang := 2 * math.Pi * (float64(j) + 0.5) / float64(wedges)
			org := image.Pt(
				center.X+int(float64(rMid)*math.Cos(ang))-8,
				center.Y+int(float64(rMid)*math.Sin(ang))+6,
			)
			id := fmt.Sprintf("%d", ring*wedges+j+1)
			gocv.PutText(mat, id, org, gocv.FontHersheySimplex, 0.4, white, 1)
			gocv.PutText(mat, id, org, gocv.FontHersheySimplex, 0.4, c, 1)
		}
		rIn = rOut
	}
}

// DrawCalibrationLines draws the ground and top rows across a copy of the
// image so the operator can verify the vertical calibration.
func DrawCalibrationLines(img *imageio.BGRImage, groundRow, topRow int, c color.RGBA) (*imageio.BGRImage, error) {
	mat, err := img.ToMat()
	if err != nil {
		return nil, fmt.Errorf("draw calibration lines: %w", err)
	}
	defer mat.Close()

	gocv.Line(&mat, image.Pt(0, groundRow), image.Pt(img.Width, groundRow), c, 1)
	gocv.Line(&mat, image.Pt(0, topRow), image.Pt(img.Width, topRow), c, 1)
	return imageio.FromMat(mat)
}
