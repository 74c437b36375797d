package imageio

import (
	"fmt"

	"gocv.io/x/gocv"
)

// DecodeBytes decodes raw image bytes (an upload or file read) into a BGR
// buffer using OpenCV, mirroring imdecode with IMREAD_COLOR.
func DecodeBytes(data []byte) (*BGRImage, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image bytes: %w", err)
	}
	defer mat.Close()
	return FromMat(mat)
}

// FromMat copies an 8-bit 3-channel OpenCV mat into a BGR buffer.
func FromMat(mat gocv.Mat) (*BGRImage, error) {
	if mat.Empty() {
		return nil, fmt.Errorf("empty mat")
	}
	if mat.Channels() != 3 || mat.Type() != gocv.MatTypeCV8UC3 {
		return nil, fmt.Errorf("unsupported mat type %v with %d channels, want CV8UC3", mat.Type(), mat.Channels())
	}

	data, err := mat.DataPtrUint8()
	if err != nil {
		return nil, fmt.Errorf("failed to access mat data: %w", err)
	}

	img := NewBGRImage(mat.Cols(), mat.Rows())
	copy(img.Pix, data)
	return img, nil
}

// ToMat copies the buffer into a new CV8UC3 mat. The caller owns the mat and
// must Close it.
func (img *BGRImage) ToMat() (gocv.Mat, error) {
	if err := img.Validate(); err != nil {
		return gocv.NewMat(), err
	}
	mat, err := gocv.NewMatFromBytes(img.Height, img.Width, gocv.MatTypeCV8UC3, img.Pix)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("failed to build mat: %w", err)
	}
	return mat, nil
}

// Save writes the buffer to disk using OpenCV; the format follows the file
// extension, as with imwrite.
func Save(path string, img *BGRImage) error {
	mat, err := img.ToMat()
	if err != nil {
		return err
	}
	defer mat.Close()

	if ok := gocv.IMWrite(path, mat); !ok {
		return fmt.Errorf("failed to write image %s", path)
	}
	return nil
}
