// Package analyze aggregates per-sector category statistics from either a
// label map or a categorized color image.
package analyze

import (
	"fmt"

	"tunnelscan/internal/category"
	"tunnelscan/internal/classify"
	"tunnelscan/internal/imageio"
	"tunnelscan/internal/sector"
)

// SectorRecord holds the aggregated statistics of one sector. Counts and
// Percentages are indexed by category, Unknown included. Percentages of an
// empty sector are all zero; no division happens for a zero total.
type SectorRecord struct {
	SectorID    int // 1-based, in sector-generation order
	TotalPixels int
	Counts      [category.Count]int
	Percentages [category.Count]float64
}

// FromLabelMap counts, for every sector mask, the pixels of each mapped
// category and derives percentages of the sector total.
func FromLabelMap(labels *category.LabelMap, mapping category.Mapping, masks []*sector.Mask) ([]SectorRecord, error) {
	if err := labels.Validate(); err != nil {
		return nil, fmt.Errorf("sector analysis: %w", err)
	}

	records := make([]SectorRecord, 0, len(masks))
	for i, m := range masks {
		if m.Width != labels.Width || m.Height != labels.Height {
			return nil, fmt.Errorf("sector analysis: mask %d extent %dx%d does not match label map %dx%d",
				i, m.Width, m.Height, labels.Width, labels.Height)
		}

		rec := SectorRecord{SectorID: i + 1}
		for pix, in := range m.Bits {
			if !in {
				continue
			}
			rec.TotalPixels++
			cat, ok := mapping[int(labels.Labels[pix])]
			if !ok {
				cat = category.Unknown
			}
			rec.Counts[cat]++
		}
		rec.fillPercentages()
		records = append(records, rec)
	}
	return records, nil
}

// FromColorImage re-derives the classification per pixel from a categorized
// BGR image and a category reference-color table, then aggregates per sector.
// A threshold <= 0 requires exact color equality; a positive threshold
// accepts the nearest reference within that distance, with the same
// tie-break semantics as the distance classification strategy. Pixels no
// reference claims count as Unknown.
func FromColorImage(img *imageio.BGRImage, table map[category.Category]category.BGR, masks []*sector.Mask, threshold float64) ([]SectorRecord, error) {
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("sector analysis: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("sector analysis: empty reference color table")
	}

	// Fix the match order to the canonical enumeration so ties resolve the
	// same way the distance strategy resolves them.
	cats := make([]category.Category, 0, len(table))
	refs := make([]category.BGR, 0, len(table))
	for _, c := range category.All {
		if ref, ok := table[c]; ok {
			cats = append(cats, c)
			refs = append(refs, ref)
		}
	}

	records := make([]SectorRecord, 0, len(masks))
	for i, m := range masks {
		if m.Width != img.Width || m.Height != img.Height {
			return nil, fmt.Errorf("sector analysis: mask %d extent %dx%d does not match image %dx%d",
				i, m.Width, m.Height, img.Width, img.Height)
		}

		rec := SectorRecord{SectorID: i + 1}
		for pix, in := range m.Bits {
			if !in {
				continue
			}
			rec.TotalPixels++
			o := pix * 3
			c := category.BGR{B: img.Pix[o], G: img.Pix[o+1], R: img.Pix[o+2]}
			idx, ok := classify.NearestReference(c, refs, threshold)
			if ok {
				rec.Counts[cats[idx]]++
			} else {
				rec.Counts[category.Unknown]++
			}
		}
		rec.fillPercentages()
		records = append(records, rec)
	}
	return records, nil
}

func (r *SectorRecord) fillPercentages() {
	if r.TotalPixels == 0 {
		return
	}
	for c, n := range r.Counts {
		r.Percentages[c] = float64(n) / float64(r.TotalPixels) * 100
	}
}
