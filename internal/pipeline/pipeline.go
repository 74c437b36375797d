// Package pipeline wires the analysis stages together: classification,
// calibration, sector generation, aggregation, and result persistence. The
// algorithm packages stay pure; everything long-running or I/O-bound is
// invoked from here so callers can run it off their interactive thread.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tunnelscan/internal/analyze"
	"tunnelscan/internal/category"
	"tunnelscan/internal/classify"
	"tunnelscan/internal/config"
	"tunnelscan/internal/extrapolate"
	"tunnelscan/internal/imageio"
	"tunnelscan/internal/scale"
	"tunnelscan/internal/sector"
	"tunnelscan/pkg/colorutil"
	"tunnelscan/pkg/geometry"
)

// Pipeline runs full analyses against one configuration and palette.
type Pipeline struct {
	cfg    *config.Config
	pal    category.Palette
	logger *logrus.Logger
}

// New creates a pipeline. A nil logger falls back to the logrus standard
// logger.
func New(cfg *config.Config, logger *logrus.Logger) *Pipeline {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Pipeline{cfg: cfg, pal: category.DefaultPalette(), logger: logger}
}

// Palette returns the palette the pipeline classifies with.
func (p *Pipeline) Palette() category.Palette {
	return p.pal
}

// Result carries everything a caller (UI, exporter) needs to display or
// persist one analysis run.
type Result struct {
	RunID   string
	Started time.Time

	Labels  *category.LabelMap
	Mapping category.Mapping
	// Classified is the display rendering of the label map (nil for the
	// extrapolation flow, which starts from an already-colorized image).
	Classified *imageio.BGRImage
	// Extrapolated is the expanded canvas (nil for the direct flow).
	Extrapolated *imageio.BGRImage
	Overlay      *imageio.BGRImage

	Center  geometry.PointInt
	Radii   []int
	Masks   []*sector.Mask
	Records []analyze.SectorRecord

	// WithCounts is true when Records carry absolute counts (label-map
	// aggregation); the color re-derivation flow reports percentages only.
	WithCounts bool
	// FellBack is true when the heuristic classifier failed and the
	// distance strategy produced the labels.
	FellBack bool
}

// calibration derives the scale parameters for an image of height h from the
// configured row fractions.
func (p *Pipeline) calibration(h int) scale.Params {
	return scale.Params{
		GroundRow:       int(float64(h) * p.cfg.Calibration.GroundFraction),
		TopRow:          int(float64(h) * p.cfg.Calibration.TopFraction),
		CameraHeight:    p.cfg.Calibration.CameraHeight,
		StructureHeight: p.cfg.Calibration.StructureHeight,
		RefDistance:     p.cfg.Calibration.ReferenceDistance,
	}
}

// Analyze classifies the image, partitions it into sectors sized by the
// configured calibration, and aggregates per-sector statistics from the
// label map.
func (p *Pipeline) Analyze(img *imageio.BGRImage) (*Result, error) {
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	res := &Result{RunID: uuid.NewString(), Started: time.Now(), WithCounts: true}
	log := p.logger.WithFields(logrus.Fields{
		"run":    res.RunID,
		"width":  img.Width,
		"height": img.Height,
	})

	cls, err := classify.Classify(img, p.pal, p.cfg.Classifier.DistanceThreshold)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	res.Labels = cls.Labels
	res.Mapping = cls.Mapping
	res.FellBack = cls.FellBack
	if cls.FellBack {
		log.Warn("heuristic classification failed, used distance strategy")
	}

	res.Classified, err = classify.Render(cls.Labels, cls.Mapping, p.pal)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	params := p.calibration(img.Height)
	res.Radii = params.RingRadii(scale.LookdownAngles)
	res.Center = geometry.PointInt{X: img.Width / 2, Y: params.CenterY()}
	log.WithFields(logrus.Fields{
		"rings":  len(res.Radii),
		"wedges": p.cfg.Sectors.Wedges,
		"center": res.Center,
	}).Info("generating sectors")

	res.Masks, err = sector.Generate(img.Height, img.Width, res.Center, res.Radii, p.cfg.Sectors.Wedges)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	res.Records, err = analyze.FromLabelMap(res.Labels, res.Mapping, res.Masks)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	res.Overlay, err = p.drawOverlay(img, res.Center, res.Radii, params)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	log.WithField("sectors", len(res.Records)).
		WithField("elapsed", time.Since(res.Started)).
		Info("analysis complete")
	return res, nil
}

// ExtrapolateAndAnalyze expands an already-categorized image radially to the
// outermost ring radius, partitions the canvas around its own center, and
// aggregates per-sector statistics by re-deriving categories from the
// display colors.
func (p *Pipeline) ExtrapolateAndAnalyze(categorized *imageio.BGRImage, centerX int) (*Result, error) {
	if err := categorized.Validate(); err != nil {
		return nil, fmt.Errorf("extrapolate: %w", err)
	}

	res := &Result{RunID: uuid.NewString(), Started: time.Now()}
	log := p.logger.WithFields(logrus.Fields{
		"run":    res.RunID,
		"width":  categorized.Width,
		"height": categorized.Height,
	})

	params := p.calibration(categorized.Height)
	res.Radii = params.RingRadii(scale.LookdownAngles)
	maxRadius := scale.MaxRadius(res.Radii)
	srcCenter := geometry.PointInt{X: centerX, Y: params.GroundRow}

	log.WithFields(logrus.Fields{
		"maxRadius": maxRadius,
		"center":    srcCenter,
	}).Info("extrapolating image")

	canvas, canvasCenter, err := extrapolate.Radial(categorized, srcCenter, maxRadius)
	if err != nil {
		return nil, fmt.Errorf("extrapolate: %w", err)
	}
	res.Extrapolated = canvas
	res.Center = canvasCenter

	res.Masks, err = sector.Generate(canvas.Height, canvas.Width, canvasCenter, res.Radii, p.cfg.Sectors.Wedges)
	if err != nil {
		return nil, fmt.Errorf("extrapolate: %w", err)
	}

	res.Records, err = analyze.FromColorImage(canvas, p.pal.DisplayTable(), res.Masks, p.cfg.Classifier.MatchThreshold)
	if err != nil {
		return nil, fmt.Errorf("extrapolate: %w", err)
	}

	res.Overlay, err = p.drawOverlay(canvas, canvasCenter, res.Radii, scale.Params{})
	if err != nil {
		return nil, fmt.Errorf("extrapolate: %w", err)
	}

	log.WithField("sectors", len(res.Records)).
		WithField("elapsed", time.Since(res.Started)).
		Info("extrapolation analysis complete")
	return res, nil
}

// drawOverlay renders the sector partition (and, when the calibration is
// meaningful, the ground/top rows) onto a copy of the image.
func (p *Pipeline) drawOverlay(img *imageio.BGRImage, center geometry.PointInt, radii []int, params scale.Params) (*imageio.BGRImage, error) {
	overlayColor, err := p.cfg.OverlayColor()
	if err != nil {
		return nil, err
	}
	opts := sector.OverlayOptions{
		Color:     overlayColor,
		Thickness: p.cfg.Sectors.OverlayThickness,
		Labels:    p.cfg.Sectors.DrawLabels,
	}
	overlay, err := sector.DrawSectors(img, center, radii, p.cfg.Sectors.Wedges, opts)
	if err != nil {
		return nil, err
	}
	if params.GroundRow != params.TopRow {
		overlay, err = sector.DrawCalibrationLines(overlay, params.GroundRow, params.TopRow, colorutil.Green)
		if err != nil {
			return nil, err
		}
	}
	return overlay, nil
}
