package category

import (
	"fmt"
)

// Mapping binds integer labels to categories. A LabelMap is only meaningful
// together with the Mapping that produced it, so the two always travel as a
// pair through the pipeline.
type Mapping map[int]Category

// DefaultMapping returns the identity mapping over the canonical enumeration,
// including the Unknown sentinel. Both classification strategies produce it.
func DefaultMapping() Mapping {
	m := make(Mapping, Count)
	for _, c := range All {
		m[int(c)] = c
	}
	return m
}

// LabelMap is a per-pixel category assignment grid with the same extent as
// the image it was classified from. It is written once by a classifier and
// read-only afterward.
type LabelMap struct {
	Width  int
	Height int
	Labels []Category // row-major, len == Width*Height
}

// NewLabelMap allocates a label map with every pixel set to Unknown.
func NewLabelMap(width, height int) *LabelMap {
	labels := make([]Category, width*height)
	for i := range labels {
		labels[i] = Unknown
	}
	return &LabelMap{Width: width, Height: height, Labels: labels}
}

// At returns the label at (x, y).
func (lm *LabelMap) At(x, y int) Category {
	return lm.Labels[y*lm.Width+x]
}

// Set assigns the label at (x, y).
func (lm *LabelMap) Set(x, y int, c Category) {
	lm.Labels[y*lm.Width+x] = c
}

// Validate checks the grid shape and that every label is a defined category.
func (lm *LabelMap) Validate() error {
	if lm.Width <= 0 || lm.Height <= 0 {
		return fmt.Errorf("label map has invalid extent %dx%d", lm.Width, lm.Height)
	}
	if len(lm.Labels) != lm.Width*lm.Height {
		return fmt.Errorf("label map has %d labels, want %d", len(lm.Labels), lm.Width*lm.Height)
	}
	for i, c := range lm.Labels {
		if !c.Valid() {
			return fmt.Errorf("label map has undefined label %d at index %d", int(c), i)
		}
	}
	return nil
}
