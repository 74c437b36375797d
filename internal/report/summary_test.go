package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tunnelscan/internal/analyze"
	"tunnelscan/internal/category"
)

func TestSummarize(t *testing.T) {
	records := make([]analyze.SectorRecord, 2)
	records[0].Percentages[category.Sky] = 80
	records[1].Percentages[category.Sky] = 40
	records[0].Percentages[category.Rock] = 20
	records[1].Percentages[category.Rock] = 60

	summaries := Summarize(records)
	require.Len(t, summaries, category.Count)

	byCat := map[category.Category]CategorySummary{}
	for _, s := range summaries {
		byCat[s.Category] = s
	}

	require.InDelta(t, 60.0, byCat[category.Sky].MeanPct, 1e-9)
	require.InDelta(t, 20.0, byCat[category.Sky].StdDevPct, 1e-9)
	require.InDelta(t, 40.0, byCat[category.Rock].MeanPct, 1e-9)
	require.Zero(t, byCat[category.Tunnel].MeanPct)
}

func TestSummarizeEmpty(t *testing.T) {
	summaries := Summarize(nil)
	require.Len(t, summaries, category.Count)
	for _, s := range summaries {
		require.Zero(t, s.MeanPct)
		require.Zero(t, s.StdDevPct)
	}
}

func TestSummarizeSingleSectorNoNaN(t *testing.T) {
	records := make([]analyze.SectorRecord, 1)
	records[0].Percentages[category.Vegetation] = 100
	summaries := Summarize(records)
	for _, s := range summaries {
		require.False(t, s.StdDevPct != s.StdDevPct, "std dev is NaN for %s", s.Category)
	}
}

func TestRenderChart(t *testing.T) {
	var buf bytes.Buffer
	summaries := Summarize(make([]analyze.SectorRecord, 3))
	require.NoError(t, RenderChart(&buf, summaries, category.DefaultPalette()))

	html := buf.String()
	require.Contains(t, html, "echarts")
	for _, c := range category.All {
		require.True(t, strings.Contains(html, c.String()), "chart must name category %s", c)
	}
}
