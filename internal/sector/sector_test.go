package sector

import (
	"math"
	"testing"

	"tunnelscan/pkg/geometry"
)

func TestGenerateMaskCountAndOrder(t *testing.T) {
	radii := []int{5, 10, 15}
	wedges := 4
	masks, err := Generate(40, 40, geometry.PointInt{X: 20, Y: 20}, radii, wedges)
	if err != nil {
		t.Fatal(err)
	}
	if len(masks) != len(radii)*wedges {
		t.Fatalf("got %d masks, want %d", len(masks), len(radii)*wedges)
	}
	// Ring-major, wedge-minor ordering.
	for i, m := range masks {
		if m.Ring != i/wedges || m.Wedge != i%wedges {
			t.Errorf("mask %d has (ring,wedge)=(%d,%d), want (%d,%d)",
				i, m.Ring, m.Wedge, i/wedges, i%wedges)
		}
	}
}

func TestGenerateDisjointAndCovering(t *testing.T) {
	h, w := 30, 50
	center := geometry.PointInt{X: 25, Y: 15}
	radii := []int{4, 9, 14}
	wedges := 6
	masks, err := Generate(h, w, center, radii, wedges)
	if err != nil {
		t.Fatal(err)
	}

	outer := float64(radii[len(radii)-1])
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			members := 0
			for _, m := range masks {
				if m.In(x, y) {
					members++
				}
			}
			r := math.Hypot(float64(x-center.X), float64(y-center.Y))
			switch {
			case r == 0:
				// Rings are half-open (rIn, rOut], so the exact center
				// belongs to no ring.
				if members != 0 {
					t.Fatalf("center pixel claimed by %d sectors", members)
				}
			case r <= outer:
				if members != 1 {
					t.Fatalf("pixel (%d,%d) r=%.2f in %d sectors, want exactly 1", x, y, r, members)
				}
			default:
				if members != 0 {
					t.Fatalf("pixel (%d,%d) beyond outer radius in %d sectors", x, y, members)
				}
			}
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	if _, err := Generate(10, 10, geometry.PointInt{}, []int{5}, 0); err == nil {
		t.Error("wedge count 0 must be rejected")
	}
	if _, err := Generate(0, 10, geometry.PointInt{}, []int{5}, 1); err == nil {
		t.Error("zero height must be rejected")
	}

	masks, err := Generate(10, 10, geometry.PointInt{}, nil, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(masks) != 0 {
		t.Errorf("empty radius list must yield zero masks, got %d", len(masks))
	}
}

func TestGenerateEqualRadiiYieldEmptyRing(t *testing.T) {
	masks, err := Generate(20, 20, geometry.PointInt{X: 10, Y: 10}, []int{6, 6}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(masks) != 6 {
		t.Fatalf("got %d masks, want 6", len(masks))
	}
	for _, m := range masks[3:] {
		if m.Count() != 0 {
			t.Errorf("zero-width ring sector (%d,%d) has %d pixels", m.Ring, m.Wedge, m.Count())
		}
	}
}

func TestGenerateCenterOutsideBounds(t *testing.T) {
	masks, err := Generate(10, 10, geometry.PointInt{X: -5, Y: -5}, []int{8}, 4)
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, m := range masks {
		total += m.Count()
	}
	// Only the wedge sweeping toward the image can hold pixels.
	if total == 0 {
		t.Error("expected some pixels within radius 8 of (-5,-5)")
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			r := math.Hypot(float64(x+5), float64(y+5))
			in := 0
			for _, m := range masks {
				if m.In(x, y) {
					in++
				}
			}
			if r <= 8 && in != 1 {
				t.Fatalf("pixel (%d,%d) r=%.2f in %d sectors", x, y, r, in)
			}
		}
	}
}
