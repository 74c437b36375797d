package extrapolate

import (
	"testing"

	"tunnelscan/internal/category"
	"tunnelscan/internal/imageio"
	"tunnelscan/pkg/geometry"
)

func TestRadialCanvasShape(t *testing.T) {
	img := imageio.NewBGRImage(10, 8)
	canvas, center, err := Radial(img, geometry.PointInt{X: 5, Y: 4}, 20)
	if err != nil {
		t.Fatal(err)
	}
	if canvas.Width != 40 || canvas.Height != 40 {
		t.Errorf("canvas is %dx%d, want 40x40", canvas.Width, canvas.Height)
	}
	if center.X != 20 || center.Y != 20 {
		t.Errorf("canvas center = %+v, want (20,20)", center)
	}
}

func TestRadialCenterPixelSampled(t *testing.T) {
	img := imageio.NewBGRImage(9, 9)
	marker := category.BGR{B: 11, G: 22, R: 33}
	img.Set(4, 4, marker)

	for _, radius := range []int{1, 5, 30} {
		canvas, center, err := Radial(img, geometry.PointInt{X: 4, Y: 4}, radius)
		if err != nil {
			t.Fatal(err)
		}
		if got := canvas.At(center.X, center.Y); got != marker {
			t.Errorf("radius %d: canvas center = %+v, want source center %+v", radius, got, marker)
		}
	}
}

func TestRadialUniformImageStaysUniform(t *testing.T) {
	img := imageio.NewBGRImage(6, 6)
	fill := category.BGR{B: 9, G: 8, R: 7}
	img.Fill(fill)

	canvas, _, err := Radial(img, geometry.PointInt{X: 3, Y: 3}, 15)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < canvas.Height; y++ {
		for x := 0; x < canvas.Width; x++ {
			if canvas.At(x, y) != fill {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, canvas.At(x, y), fill)
			}
		}
	}
}

func TestRadialSmearsEdges(t *testing.T) {
	// Right half red, left half blue: far to the right of the canvas the
	// fill must repeat the right edge, far left the left edge.
	img := imageio.NewBGRImage(8, 8)
	red := category.BGR{R: 255}
	blue := category.BGR{B: 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x >= 4 {
				img.Set(x, y, red)
			} else {
				img.Set(x, y, blue)
			}
		}
	}

	canvas, center, err := Radial(img, geometry.PointInt{X: 4, Y: 4}, 25)
	if err != nil {
		t.Fatal(err)
	}
	if got := canvas.At(canvas.Width-1, center.Y); got != red {
		t.Errorf("rightmost canvas pixel = %+v, want red edge fill", got)
	}
	if got := canvas.At(0, center.Y); got != blue {
		t.Errorf("leftmost canvas pixel = %+v, want blue edge fill", got)
	}
}

func TestRadialValidation(t *testing.T) {
	img := imageio.NewBGRImage(4, 4)
	if _, _, err := Radial(img, geometry.PointInt{X: 2, Y: 2}, 0); err == nil {
		t.Error("radius 0 must be rejected")
	}
	bad := &imageio.BGRImage{Width: 2, Height: 2, Pix: []uint8{1}}
	if _, _, err := Radial(bad, geometry.PointInt{}, 5); err == nil {
		t.Error("malformed buffer must be rejected")
	}
}
