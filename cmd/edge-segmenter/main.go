// Command edge-segmenter runs edge-oriented image segmentation over
// one or more raster images and writes binary PNG masks.
//
// Usage:
//
//	edge-segmenter [-variant edge-mode|edge-percentile] [-out mask.png] input.png [input2.jpg ...]
//
// Without -out, the i-th input is written to output_<i>.png in the
// working directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"sort"

	"edge-segmenter/internal/logger"
	"edge-segmenter/internal/pipeline"
)

var (
	variantFlag  = flag.String("variant", "edge-mode", "segmentation variant (see -list)")
	outFlag      = flag.String("out", "", "output path (single input only; default output_<n>.png)")
	logLevelFlag = flag.String("log-level", "", "log level: debug, info, warn, error (LOG_LEVEL env is the fallback)")
	listFlag     = flag.Bool("list", false, "list available variants and exit")
)

func main() {
	flag.Parse()

	configureRuntime()

	level := *logLevelFlag
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	log := logger.NewConsoleLogger(logger.ParseLevel(level))

	coordinator := pipeline.NewCoordinator(log)

	if *listFlag {
		variants := coordinator.Variants().GetAvailableVariants()
		sort.Strings(variants)
		for _, name := range variants {
			fmt.Println(name)
		}
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input files provided")
		flag.Usage()
		os.Exit(1)
	}
	if *outFlag != "" && len(files) > 1 {
		fmt.Fprintln(os.Stderr, "error: -out is only valid with a single input file")
		os.Exit(1)
	}

	log.Info("main", "starting run", map[string]interface{}{
		"variant":    *variantFlag,
		"files":      len(files),
		"go_version": runtime.Version(),
		"num_cpu":    runtime.NumCPU(),
	})

	failures := 0
	for i, inputPath := range files {
		outputPath := *outFlag
		if outputPath == "" {
			outputPath = fmt.Sprintf("output_%d.png", i+1)
		}

		if err := coordinator.Run(inputPath, outputPath, *variantFlag, nil); err != nil {
			log.Error("main", err, map[string]interface{}{"input": inputPath})
			failures++
		}
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "error: %d of %d file(s) failed\n", failures, len(files))
		os.Exit(1)
	}
}

// configureRuntime tunes the runtime for short-lived, allocation-heavy
// filter passes.
func configureRuntime() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	// Each convolution pass allocates a full output field; a higher GC
	// target keeps the collector out of the fork-join hot path.
	debug.SetGCPercent(200)
}
