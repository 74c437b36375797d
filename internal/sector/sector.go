// Package sector partitions an image plane into concentric-ring by
// angular-wedge sectors around a center point and renders sector overlays.
package sector

import (
	"fmt"
	"math"

	"tunnelscan/pkg/geometry"
)

// Mask is a boolean grid marking the pixels of one sector. A sector is
// identified by its ring index (0 = innermost) and wedge index (0 at angle
// zero, sweeping ascending to 2π).
type Mask struct {
	Width  int
	Height int
	Ring   int
	Wedge  int
	Bits   []bool // row-major, len == Width*Height
}

// In reports whether (x, y) belongs to the sector.
func (m *Mask) In(x, y int) bool {
	return m.Bits[y*m.Width+x]
}

// Count returns the number of pixels inside the sector.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}

// Generate builds one mask per (ring, wedge) sector over an h-by-w image.
// Ring k covers radii in (radii[k-1], radii[k]] with radii[-1] = 0; wedge j
// covers angles in [2πj/n, 2π(j+1)/n). Masks come back ring-major then
// wedge-minor, exactly len(radii)*wedges of them; an empty radius list
// yields none. The center may lie outside the image bounds.
func Generate(h, w int, center geometry.PointInt, radii []int, wedges int) ([]*Mask, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("invalid image extent %dx%d", w, h)
	}
	if wedges < 1 {
		return nil, fmt.Errorf("wedge count must be >= 1, got %d", wedges)
	}

	// Radius and angle are computed once per pixel and reused for every
	// sector; the per-sector work is then pure range tests.
	n := h * w
	radius := make([]float64, n)
	angle := make([]float64, n)
	for y := 0; y < h; y++ {
		dy := float64(y - center.Y)
		for x := 0; x < w; x++ {
			dx := float64(x - center.X)
			r, th := geometry.Polar(dx, dy)
			i := y*w + x
			radius[i] = r
			angle[i] = th
		}
	}

	masks := make([]*Mask, 0, len(radii)*wedges)
	rIn := 0.0
	for ring, rOutPx := range radii {
		rOut := float64(rOutPx)
		for j := 0; j < wedges; j++ {
			angIn := 2 * math.Pi * float64(j) / float64(wedges)
			angOut := 2 * math.Pi * float64(j+1) / float64(wedges)

			m := &Mask{Width: w, Height: h, Ring: ring, Wedge: j, Bits: make([]bool, n)}
			for i := 0; i < n; i++ {
				m.Bits[i] = radius[i] > rIn && radius[i] <= rOut &&
					angle[i] >= angIn && angle[i] < angOut
			}
			masks = append(masks, m)
		}
		rIn = rOut
	}
	return masks, nil
}
