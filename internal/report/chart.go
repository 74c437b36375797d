package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"tunnelscan/internal/category"
)

// RenderChart writes an HTML bar chart of the per-category mean percentages,
// each bar tinted with the category's display color.
func RenderChart(w io.Writer, summaries []CategorySummary, pal category.Palette) error {
	names := make([]string, 0, len(summaries))
	data := make([]opts.BarData, 0, len(summaries))
	for _, s := range summaries {
		rgb := pal.Display[s.Category]
		names = append(names, s.Category.String())
		data = append(data, opts.BarData{
			Value: s.MeanPct,
			ItemStyle: &opts.ItemStyle{
				Color: fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B),
			},
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Sector analysis summary", Width: "900px", Height: "520px"}),
		charts.WithTitleOpts(opts.Title{Title: "Mean category share", Subtitle: "average percentage per sector"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 100, Name: "%"}),
	)
	bar.SetXAxis(names).AddSeries("mean %", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render summary chart: %w", err)
	}
	return nil
}
