// Package report summarizes sector records across the whole partition and
// renders the summary as an HTML chart.
package report

import (
	"gonum.org/v1/gonum/stat"

	"tunnelscan/internal/analyze"
	"tunnelscan/internal/category"
)

// CategorySummary aggregates one category's share over all sectors.
type CategorySummary struct {
	Category  category.Category
	MeanPct   float64
	StdDevPct float64
}

// Summarize returns, per category, the mean and population standard
// deviation of its percentage across sectors. An empty record set yields
// all-zero summaries.
func Summarize(records []analyze.SectorRecord) []CategorySummary {
	summaries := make([]CategorySummary, 0, category.Count)
	for _, c := range category.All {
		s := CategorySummary{Category: c}
		if len(records) > 0 {
			pcts := make([]float64, len(records))
			for i, rec := range records {
				pcts[i] = rec.Percentages[c]
			}
			s.MeanPct = stat.Mean(pcts, nil)
			s.StdDevPct = stat.PopStdDev(pcts, nil)
		}
		summaries = append(summaries, s)
	}
	return summaries
}
