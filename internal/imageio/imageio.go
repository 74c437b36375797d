// Package imageio provides the raw pixel buffer the analyzer works on and
// conversions between it, the standard library image types, and OpenCV mats.
package imageio

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"tunnelscan/internal/category"
)

// BGRImage is an 8-bit, 3-channel raster in blue-green-red channel order,
// row-major with a stride of 3*Width. BGR matches what OpenCV's imread
// produces and is the channel order every function in this module assumes.
type BGRImage struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBGRImage allocates a zeroed (black) image.
func NewBGRImage(width, height int) *BGRImage {
	return &BGRImage{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Validate fails fast on malformed buffers rather than letting a bad shape
// propagate into the pixel loops.
func (img *BGRImage) Validate() error {
	if img == nil {
		return fmt.Errorf("nil image")
	}
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("image has invalid extent %dx%d", img.Width, img.Height)
	}
	if len(img.Pix) != img.Width*img.Height*3 {
		return fmt.Errorf("image buffer has %d bytes, want %d (%dx%dx3)",
			len(img.Pix), img.Width*img.Height*3, img.Width, img.Height)
	}
	return nil
}

// At returns the BGR color at (x, y).
func (img *BGRImage) At(x, y int) category.BGR {
	i := (y*img.Width + x) * 3
	return category.BGR{B: img.Pix[i], G: img.Pix[i+1], R: img.Pix[i+2]}
}

// Set assigns the BGR color at (x, y).
func (img *BGRImage) Set(x, y int, c category.BGR) {
	i := (y*img.Width + x) * 3
	img.Pix[i] = c.B
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.R
}

// Fill sets every pixel to the given color.
func (img *BGRImage) Fill(c category.BGR) {
	for i := 0; i < len(img.Pix); i += 3 {
		img.Pix[i] = c.B
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.R
	}
}

// Clone returns a deep copy.
func (img *BGRImage) Clone() *BGRImage {
	out := &BGRImage{Width: img.Width, Height: img.Height, Pix: make([]uint8, len(img.Pix))}
	copy(out.Pix, img.Pix)
	return out
}

// FromImage converts a decoded standard-library image into a BGR buffer.
func FromImage(src image.Image) *BGRImage {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := NewBGRImage(w, h)

	if rgba, ok := src.(*image.RGBA); ok {
		for y := 0; y < h; y++ {
			si := rgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			di := y * w * 3
			for x := 0; x < w; x++ {
				out.Pix[di] = rgba.Pix[si+2]
				out.Pix[di+1] = rgba.Pix[si+1]
				out.Pix[di+2] = rgba.Pix[si]
				si += 4
				di += 3
			}
		}
		return out
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out.Set(x, y, category.BGR{B: uint8(b >> 8), G: uint8(g >> 8), R: uint8(r >> 8)})
		}
	}
	return out
}

// ToImage converts the buffer to an RGBA image for the standard encoders.
func (img *BGRImage) ToImage() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		si := y * img.Width * 3
		di := out.PixOffset(0, y)
		for x := 0; x < img.Width; x++ {
			out.Pix[di] = img.Pix[si+2]
			out.Pix[di+1] = img.Pix[si+1]
			out.Pix[di+2] = img.Pix[si]
			out.Pix[di+3] = 255
			si += 3
			di += 4
		}
	}
	return out
}

// Load decodes an image file (TIFF, BMP, PNG, or JPEG) into a BGR buffer.
func Load(path string) (*BGRImage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// SupportedFormats returns the list of supported image formats.
func SupportedFormats() []string {
	return []string{".tiff", ".tif", ".bmp", ".png", ".jpg", ".jpeg"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
