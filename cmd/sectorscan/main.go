// Command sectorscan runs the full sector analysis on an image and writes a
// results bundle (classified image, overlay, CSV table, summary chart).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"tunnelscan/internal/analyze"
	"tunnelscan/internal/category"
	"tunnelscan/internal/config"
	"tunnelscan/internal/imageio"
	"tunnelscan/internal/pipeline"
	"tunnelscan/internal/version"
)

func main() {
	imagePath := flag.String("image", "", "Path to input image (TIFF, BMP, PNG, or JPEG)")
	configPath := flag.String("config", "", "Path to YAML config (defaults used when empty)")
	extrap := flag.Bool("extrapolate", false, "Extrapolate the classified image to the outermost ring before analyzing")
	centerX := flag.Int("centerx", -1, "Extrapolation center column (default: image midline)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *imagePath == "" {
		fmt.Println("Usage: sectorscan -image <path> [-config cfg.yaml] [-extrapolate] [-centerx N]")
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}

	img, err := imageio.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded image: %dx%d pixels\n", img.Width, img.Height)

	p := pipeline.New(cfg, logger)
	res, err := p.Analyze(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}
	if res.FellBack {
		fmt.Println("Note: heuristic classification failed, distance strategy used")
	}

	if *extrap {
		cx := *centerX
		if cx < 0 {
			cx = img.Width / 2
		}
		res, err = p.ExtrapolateAndAnalyze(res.Classified, cx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Extrapolation failed: %v\n", err)
			os.Exit(1)
		}
	}

	printRecords(res.Records)

	dir, err := p.SaveBundle(res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nResults saved to %s\n", dir)
}

func printRecords(records []analyze.SectorRecord) {
	fmt.Printf("\n%-8s %12s", "Sector", "Pixels")
	for _, c := range category.All {
		fmt.Printf(" %10s", c)
	}
	fmt.Println()

	for _, rec := range records {
		fmt.Printf("%-8d %12d", rec.SectorID, rec.TotalPixels)
		for _, c := range category.All {
			fmt.Printf(" %9.1f%%", rec.Percentages[c])
		}
		fmt.Println()
	}
	fmt.Printf("\nTotal: %d sectors\n", len(records))
}
