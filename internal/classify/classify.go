// Package classify assigns a surface category to every pixel of a BGR image.
//
// Two strategies are provided. The distance strategy matches each pixel to
// the nearest reference color within a threshold. The heuristic strategy
// applies hue/saturation/value range rules in a fixed priority order and is
// the default; if it fails on malformed input the caller-facing Classify
// falls back to the distance strategy as part of its contract.
package classify

import (
	"fmt"

	"tunnelscan/internal/category"
	"tunnelscan/internal/imageio"
	"tunnelscan/pkg/colorutil"
)

// DefaultThreshold is the default color-distance threshold for the distance
// strategy.
const DefaultThreshold = 60.0

// Result is the output of a classification call.
type Result struct {
	Labels  *category.LabelMap
	Mapping category.Mapping
	// FellBack is true when the heuristic strategy failed and the distance
	// strategy produced the result instead.
	FellBack bool
}

// Classify runs the default heuristic strategy with an explicit fallback to
// the distance strategy. The fallback is part of the contract: a heuristic
// failure is recovered here and never surfaces to the caller.
func Classify(img *imageio.BGRImage, pal category.Palette, threshold float64) (*Result, error) {
	labels, mapping, err := ClassifyHeuristic(img)
	if err == nil {
		return &Result{Labels: labels, Mapping: mapping}, nil
	}

	labels, mapping, err = ClassifyDistance(img, pal, threshold)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	return &Result{Labels: labels, Mapping: mapping, FellBack: true}, nil
}

// NearestReference returns the index of the reference color nearest to c and
// whether the match is accepted under the threshold rule: a positive
// threshold accepts the nearest reference within that distance, while a
// threshold <= 0 degenerates to exact matching (distance 0 required). The
// first reference wins distance ties, so callers must pass references in
// canonical category order.
func NearestReference(c category.BGR, refs []category.BGR, threshold float64) (int, bool) {
	best := -1
	bestDist := 0.0
	for i, ref := range refs {
		d := colorutil.BGRDistance(c.B, c.G, c.R, ref.B, ref.G, ref.R)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return -1, false
	}

	// Exact-match-only when the threshold is not positive. This is the
	// documented degenerate case, not an accident of the comparison.
	limit := threshold
	if limit < 0 {
		limit = 0
	}
	return best, bestDist <= limit
}

// ClassifyDistance labels every pixel with the nearest reference color of the
// palette, or Unknown when no reference is within the threshold.
func ClassifyDistance(img *imageio.BGRImage, pal category.Palette, threshold float64) (*category.LabelMap, category.Mapping, error) {
	if err := img.Validate(); err != nil {
		return nil, nil, fmt.Errorf("distance classification: %w", err)
	}

	refs := make([]category.BGR, 0, category.NumAssignable)
	for _, c := range category.Assignable {
		refs = append(refs, pal.Reference[c])
	}

	labels := category.NewLabelMap(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			idx, ok := NearestReference(img.At(x, y), refs, threshold)
			if ok {
				labels.Set(x, y, category.Assignable[idx])
			}
		}
	}
	return labels, category.DefaultMapping(), nil
}

// ClassifyHeuristic labels every pixel using HSV range rules evaluated in
// priority order; a pixel keeps the first matching category and pixels
// matching no rule stay Unknown.
func ClassifyHeuristic(img *imageio.BGRImage) (*category.LabelMap, category.Mapping, error) {
	if err := img.Validate(); err != nil {
		return nil, nil, fmt.Errorf("heuristic classification: %w", err)
	}

	labels := category.NewLabelMap(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			h, s, v := colorutil.BGRToHSVDegrees(c.B, c.G, c.R)
			labels.Set(x, y, classifyHSV(h, s, v))
		}
	}
	return labels, category.DefaultMapping(), nil
}

// classifyHSV applies the heuristic rules in priority order. The order is a
// design decision: later rules never override earlier assignments, so the
// overlapping pavement and building value bands resolve deterministically.
func classifyHSV(h, s, v float64) category.Category {
	for _, rule := range heuristicRules {
		if rule.match(h, s, v) {
			return rule.cat
		}
	}
	return category.Unknown
}

// heuristicRules in priority order: tunnel, sky, vegetation, rock, pavement,
// building. Hue is in degrees 0-358 (OpenCV hue doubled), S and V in 0-255.
var heuristicRules = []struct {
	cat   category.Category
	match func(h, s, v float64) bool
}{
	// tunnel: very dark
	{category.Tunnel, func(h, s, v float64) bool {
		return v < 50
	}},
	// sky: blue/cyan band, bright, weakly saturated
	{category.Sky, func(h, s, v float64) bool {
		return h >= 90 && h <= 210 && v > 150 && s < 90
	}},
	// vegetation: green band, moderately saturated
	{category.Vegetation, func(h, s, v float64) bool {
		return h >= 60 && h <= 150 && s > 50 && v > 40
	}},
	// rock: brown/beige low-hue band, mid saturation, value above floor
	{category.Rock, func(h, s, v float64) bool {
		return h <= 40 && s > 25 && v > 70
	}},
	// pavement: light grays, low saturation, mid value band
	{category.Pavement, func(h, s, v float64) bool {
		return s < 50 && v >= 60 && v < 200
	}},
	// building: slightly more saturation allowed, darker floor than pavement
	{category.Building, func(h, s, v float64) bool {
		return s < 70 && v > 40 && v <= 200
	}},
}
