package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"rasterhull/internal/models"
	"rasterhull/internal/monitoring"
	"rasterhull/pkg/config"
	"rasterhull/pkg/imageio"
	"rasterhull/pkg/task"
	"rasterhull/pkg/visualization"
)

func main() {
	// Parse command line arguments
	inputFile := flag.String("input", "", "Image file to compute the foreground hull of (PNG, JPEG, GIF, BMP, TIFF)")
	configFile := flag.String("config", "", "YAML configuration file")
	strategy := flag.String("strategy", "", "Extraction strategy: seq, threads or tasks")
	workers := flag.Int("workers", 0, "Number of extraction workers (default: all CPUs)")
	grain := flag.Int("grain", 0, "Rows per task for the tasks strategy (default: automatic)")
	threshold := flag.Int("threshold", 128, "Luminance at or above which a pixel is foreground")
	invert := flag.Bool("invert", false, "Treat dark pixels as foreground")
	capacity := flag.Int("capacity", 0, "Maximum number of hull vertices to report (0 = all)")
	overlay := flag.String("overlay", "", "Write an image of the raster with its hull to this file")
	runs := flag.Int("runs", 1, "Time this many pipeline runs and print statistics")
	verbose := flag.Bool("verbose", false, "Log pipeline progress")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Explicit flags override the configuration file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strategy":
			cfg.Processing.Strategy = *strategy
		case "workers":
			cfg.Processing.NumWorkers = *workers
		case "grain":
			cfg.Processing.Grain = *grain
		case "threshold":
			cfg.Input.Threshold = *threshold
		case "invert":
			cfg.Input.Invert = *invert
		case "capacity":
			cfg.Output.Capacity = *capacity
		case "overlay":
			cfg.Output.OverlayFile = *overlay
		case "verbose":
			cfg.Output.Verbose = *verbose
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	monitoring.SetVerbose(cfg.Output.Verbose)

	raster, err := imageio.LoadRaster(*inputFile, uint8(cfg.Input.Threshold), cfg.Input.Invert)
	if err != nil {
		log.Fatalf("Failed to load raster: %v", err)
	}

	params, err := taskParams(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// One buffer is shared by every perf run
	out := make([]models.Point, outputLimit(raster.Width, raster.Height, cfg.Output.Capacity))

	var data *task.TaskData
	var hullTask *task.ConvexHull
	newTask := func() *task.ConvexHull {
		data = task.NewTaskData(raster, out)
		hullTask = task.New(data, params)
		return hullTask
	}

	ctx := context.Background()
	start := time.Now()
	if *runs > 1 {
		perf := &task.Perf{Runs: *runs}
		results, err := perf.PipelineRun(ctx, newTask)
		if err != nil {
			log.Fatalf("Hull computation failed: %v", err)
		}
		fmt.Printf("Perf: %v\n", results)
	} else if err := newTask().Process(ctx); err != nil {
		log.Fatalf("Hull computation failed: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("Raster: %dx%d (%s)\n", raster.Width, raster.Height, *inputFile)
	fmt.Printf("Strategy: %v, workers: %d\n", params.Strategy, params.NumWorkers)
	fmt.Printf("Hull vertices (%d of %d):\n", data.OutputCount, len(hullTask.Hull()))
	for _, p := range data.Output[:data.OutputCount] {
		fmt.Printf("  %d %d\n", p.X, p.Y)
	}
	fmt.Printf("Summary: %v\n", hullTask.Summary())
	fmt.Printf("Completed in %v\n", elapsed)

	if cfg.Output.OverlayFile != "" {
		if err := visualization.NewOverlay(raster, hullTask.Hull()).Save(cfg.Output.OverlayFile); err != nil {
			log.Printf("Warning: Failed to save overlay: %v", err)
		} else {
			fmt.Printf("Overlay saved to: %s\n", cfg.Output.OverlayFile)
		}
	}
}

// outputLimit sizes the hull buffer. A convex lattice polygon inside a
// width x height box has at most 2*(width+height) vertices; a positive
// capacity lowers that bound further.
func outputLimit(width, height, capacity int) int {
	limit := 2 * (width + height)
	if capacity > 0 {
		return min(capacity, limit)
	}
	return limit
}

// taskParams converts the processing section of cfg into task parameters
func taskParams(cfg *config.Config) (*task.Params, error) {
	s, err := cfg.Strategy()
	if err != nil {
		return nil, err
	}
	return &task.Params{
		Strategy:   s,
		NumWorkers: cfg.Processing.NumWorkers,
		Grain:      cfg.Processing.Grain,
	}, nil
}
