// Package extrapolate grows an image radially beyond its bounds by repeating
// border-adjacent content along each angular ray.
package extrapolate

import (
	"fmt"
	"math"

	"tunnelscan/internal/imageio"
	"tunnelscan/pkg/geometry"
)

// Radial expands the source image onto a square canvas of side 2*maxRadius
// whose center replaces the given source center. Every destination pixel is
// filled with the nearest available source pixel along the same angular ray:
// the sampling radius is clamped to the farthest corner-bounding extent from
// the source center and the resulting coordinates are clamped into bounds.
//
// The reachable-radius clamp is a coarse corner-distance approximation, not
// an exact ray-rectangle intersection. It over-reaches near the edges and
// smears edge pixels outward; downstream sector percentages depend on this
// exact behavior, so it is kept as-is.
func Radial(img *imageio.BGRImage, center geometry.PointInt, maxRadius int) (*imageio.BGRImage, geometry.PointInt, error) {
	if err := img.Validate(); err != nil {
		return nil, geometry.PointInt{}, fmt.Errorf("radial extrapolation: %w", err)
	}
	if maxRadius < 1 {
		return nil, geometry.PointInt{}, fmt.Errorf("radial extrapolation: target radius must be >= 1, got %d", maxRadius)
	}

	w, h := img.Width, img.Height
	side := 2 * maxRadius
	out := imageio.NewBGRImage(side, side)
	cx, cy := side/2, side/2

	// Farthest corner-bounding extent reachable from the source center.
	reach := float64(int(math.Hypot(
		math.Max(float64(center.X), float64(w-center.X)),
		math.Max(float64(center.Y), float64(h-center.Y)),
	)))

	for y := 0; y < side; y++ {
		dy := float64(y - cy)
		for x := 0; x < side; x++ {
			dx := float64(x - cx)
			r, theta := geometry.Polar(dx, dy)

			var src geometry.PointInt
			if r == 0 {
				src = center
			} else {
				src = geometry.RayPoint(center.X, center.Y, theta, math.Min(r, reach))
			}

			src.X = clamp(src.X, 0, w-1)
			src.Y = clamp(src.Y, 0, h-1)
			out.Set(x, y, img.At(src.X, src.Y))
		}
	}

	return out, geometry.PointInt{X: cx, Y: cy}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
