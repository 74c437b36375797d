package classify

import (
	"fmt"

	"tunnelscan/internal/category"
	"tunnelscan/internal/imageio"
)

// Render substitutes each pixel's label with its category's display color,
// producing a BGR image. Pure lookup, no interpolation; labels missing from
// the mapping render as Unknown.
func Render(labels *category.LabelMap, mapping category.Mapping, pal category.Palette) (*imageio.BGRImage, error) {
	if err := labels.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	// Label values are small integers, so resolve the display colors once
	// into a dense label-indexed table instead of consulting the map per
	// pixel. Unbound slots keep the Unknown color.
	var colors [category.Count]category.BGR
	for i := range colors {
		colors[i] = pal.DisplayBGR(category.Unknown)
	}
	for label, cat := range mapping {
		if label >= 0 && label < category.Count {
			colors[label] = pal.DisplayBGR(cat)
		}
	}

	out := imageio.NewBGRImage(labels.Width, labels.Height)
	for i, label := range labels.Labels {
		c := colors[label]
		o := i * 3
		out.Pix[o] = c.B
		out.Pix[o+1] = c.G
		out.Pix[o+2] = c.R
	}
	return out, nil
}
