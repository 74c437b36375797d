// Package colorutil provides shared color utilities for the sector analyzer.
package colorutil

import (
	"image/color"
	"math"
)

// Common overlay colors used throughout the application.
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// RGBToHSV converts RGB (0-255) to HSV (OpenCV convention: H 0-180, S 0-255, V 0-255).
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	r /= 255.0
	g /= 255.0
	b /= 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	diff := maxC - minC

	v = maxC * 255.0 // V in 0-255

	if maxC == 0 {
		s = 0
	} else {
		s = (diff / maxC) * 255.0 // S in 0-255
	}

	if diff == 0 {
		h = 0
	} else if maxC == r {
		h = 60 * math.Mod((g-b)/diff, 6)
	} else if maxC == g {
		h = 60 * ((b-r)/diff + 2)
	} else {
		h = 60 * ((r-g)/diff + 4)
	}

	if h < 0 {
		h += 360
	}

	h = h / 2 // Convert to OpenCV's 0-180 range

	return h, s, v
}

// BGRToHSVDegrees converts BGR (0-255) to HSV with hue in full degrees (0-358).
// OpenCV stores hue halved to fit a byte; classification rules are written
// against full degrees, so the doubled value is returned here.
func BGRToHSVDegrees(b, g, r uint8) (hDeg, s, v float64) {
	h, s, v := RGBToHSV(float64(r), float64(g), float64(b))
	return h * 2, s, v
}

// BGRDistance returns the Euclidean distance between two BGR colors.
func BGRDistance(b1, g1, r1, b2, g2, r2 uint8) float64 {
	db := float64(b1) - float64(b2)
	dg := float64(g1) - float64(g2)
	dr := float64(r1) - float64(r2)
	return math.Sqrt(db*db + dg*dg + dr*dr)
}
