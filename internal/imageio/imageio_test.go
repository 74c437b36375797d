package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"tunnelscan/internal/category"
)

func TestValidate(t *testing.T) {
	if err := NewBGRImage(4, 3).Validate(); err != nil {
		t.Errorf("fresh image must validate: %v", err)
	}

	bad := []*BGRImage{
		nil,
		{Width: 0, Height: 3, Pix: nil},
		{Width: 2, Height: 2, Pix: make([]uint8, 11)},
		{Width: -1, Height: 2, Pix: nil},
	}
	for i, img := range bad {
		if err := img.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestSetAtFill(t *testing.T) {
	img := NewBGRImage(3, 2)
	c := category.BGR{B: 1, G: 2, R: 3}
	img.Set(2, 1, c)
	if got := img.At(2, 1); got != c {
		t.Errorf("At(2,1) = %+v, want %+v", got, c)
	}
	if got := img.At(0, 0); got != (category.BGR{}) {
		t.Errorf("untouched pixel = %+v, want zero", got)
	}

	img.Fill(c)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if img.At(x, y) != c {
				t.Fatalf("Fill missed (%d,%d)", x, y)
			}
		}
	}
}

func TestFromImageToImageRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{R: uint8(x * 50), G: uint8(y * 70), B: uint8(x + y), A: 255})
		}
	}

	bgr := FromImage(src)
	if bgr.Width != 4 || bgr.Height != 3 {
		t.Fatalf("converted extent %dx%d", bgr.Width, bgr.Height)
	}
	if got := bgr.At(2, 1); got != (category.BGR{B: 3, G: 70, R: 100}) {
		t.Errorf("channel order wrong: %+v", got)
	}

	back := bgr.ToImage()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if back.RGBAAt(x, y) != src.RGBAAt(x, y) {
				t.Fatalf("round trip changed pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestFromImageNonRGBA(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(1, 0, color.Gray{Y: 200})
	bgr := FromImage(src)
	if got := bgr.At(1, 0); got != (category.BGR{B: 200, G: 200, R: 200}) {
		t.Errorf("gray pixel = %+v", got)
	}
}

func TestClone(t *testing.T) {
	img := NewBGRImage(2, 2)
	img.Set(0, 0, category.BGR{B: 5, G: 6, R: 7})
	dup := img.Clone()
	dup.Set(0, 0, category.BGR{})
	if img.At(0, 0) == (category.BGR{}) {
		t.Error("Clone must not share the pixel buffer")
	}
}

func TestLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetRGBA(1, 0, color.RGBA{R: 40, G: 50, B: 60, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.At(0, 0); got != (category.BGR{B: 30, G: 20, R: 10}) {
		t.Errorf("loaded pixel = %+v", got)
	}
}

func TestIsSupportedFormat(t *testing.T) {
	for _, path := range []string{"a.png", "b.JPG", "c.tiff", "d.bmp"} {
		if !IsSupportedFormat(path) {
			t.Errorf("%s should be supported", path)
		}
	}
	if IsSupportedFormat("notes.txt") {
		t.Error("txt should not be supported")
	}
}
