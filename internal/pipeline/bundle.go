package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"tunnelscan/internal/analyze"
	"tunnelscan/internal/imageio"
	"tunnelscan/internal/report"
)

// SaveBundle writes a timestamped results directory under the configured
// output dir: the classified or extrapolated image, the sector overlay, the
// per-sector CSV table, and an HTML summary chart. It returns the directory
// path.
func (p *Pipeline) SaveBundle(res *Result) (string, error) {
	dir := filepath.Join(p.cfg.Output.Dir,
		fmt.Sprintf("results_%s_%s", res.Started.Format("20060102_150405"), shortID(res.RunID)))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	if res.Classified != nil {
		if err := imageio.Save(filepath.Join(dir, "classified.png"), res.Classified); err != nil {
			return "", err
		}
	}
	if res.Extrapolated != nil {
		if err := imageio.Save(filepath.Join(dir, "extrapolated.png"), res.Extrapolated); err != nil {
			return "", err
		}
	}
	if res.Overlay != nil {
		if err := imageio.Save(filepath.Join(dir, "overlay.png"), res.Overlay); err != nil {
			return "", err
		}
	}

	csvFile, err := os.Create(filepath.Join(dir, "counts.csv"))
	if err != nil {
		return "", fmt.Errorf("create counts.csv: %w", err)
	}
	defer csvFile.Close()
	if err := analyze.WriteCSV(csvFile, res.Records, res.WithCounts); err != nil {
		return "", err
	}

	chartFile, err := os.Create(filepath.Join(dir, "summary.html"))
	if err != nil {
		return "", fmt.Errorf("create summary.html: %w", err)
	}
	defer chartFile.Close()
	if err := report.RenderChart(chartFile, report.Summarize(res.Records), p.pal); err != nil {
		return "", err
	}

	p.logger.WithField("run", res.RunID).WithField("dir", dir).Info("results saved")
	return dir, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
