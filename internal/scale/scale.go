// Package scale converts the surveyor's real-world calibration into pixel
// units: ring radii for the sector partition and the analysis center row.
package scale

import (
	"math"
)

// LookdownAngles are the fixed look-down angles, in degrees, that define the
// concentric ring boundaries. Tangent is monotonic over this range, so the
// derived radii are non-decreasing.
var LookdownAngles = []float64{2.0, 3.0, 4.0, 5.8, 8.0, 11.6, 16.6, 24.0, 36.0, 56.8}

// DefaultReferenceDistance is the horizontal reference distance in meters.
const DefaultReferenceDistance = 90.0

// Params holds the camera calibration for one image: the pixel rows of the
// ground and structure-top lines, the camera and structure heights in
// meters, and the horizontal reference distance in meters.
type Params struct {
	GroundRow       int
	TopRow          int
	CameraHeight    float64
	StructureHeight float64
	RefDistance     float64
}

// PixelsPerMeter returns the vertical scale factor derived from the span
// between the ground and top rows. A zero structure height degenerates to
// 1.0 rather than dividing by zero.
func (p Params) PixelsPerMeter() float64 {
	if p.StructureHeight == 0 {
		return 1.0
	}
	span := math.Abs(float64(p.TopRow - p.GroundRow))
	return span / p.StructureHeight
}

// RingRadii converts look-down angles (degrees) into ring boundary radii in
// pixels: radius = refDistance * tan(angle) meters, scaled by PixelsPerMeter
// and truncated, with a floor of 1 pixel.
func (p Params) RingRadii(anglesDeg []float64) []int {
	ppm := p.PixelsPerMeter()
	radii := make([]int, len(anglesDeg))
	for i, deg := range anglesDeg {
		meters := p.RefDistance * math.Tan(deg*math.Pi/180)
		px := int(meters * ppm)
		if px < 1 {
			px = 1
		}
		radii[i] = px
	}
	return radii
}

// MaxRadius returns the largest radius of the list, or 1 for an empty list.
func MaxRadius(radii []int) int {
	max := 1
	for _, r := range radii {
		if r > max {
			max = r
		}
	}
	return max
}

// CenterY derives the analysis center row from the calibration: the camera
// sits CameraHeight meters above the ground line, so the center is lifted a
// proportional fraction of the ground-to-top pixel span. A zero structure
// height leaves the center on the ground row.
func (p Params) CenterY() int {
	if p.StructureHeight == 0 {
		return p.GroundRow
	}
	span := math.Abs(float64(p.TopRow - p.GroundRow))
	return int(float64(p.GroundRow) - p.CameraHeight/p.StructureHeight*span)
}
