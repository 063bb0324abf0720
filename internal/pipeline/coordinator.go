package pipeline

import (
	"fmt"
	"sync"
	"time"

	"edge-segmenter/internal/field"
	"edge-segmenter/internal/logger"
	"edge-segmenter/internal/segment"
)

// ImageData carries a decoded input through the pipeline.
type ImageData struct {
	Path     string
	Width    int
	Height   int
	Channels int
	Format   string
	Gray     *field.Field
}

// Coordinator wires the loader, variant registry, and saver into the
// load → segment → save sequence for one file at a time.
type Coordinator struct {
	mu       sync.Mutex
	loader   *Loader
	saver    *Saver
	variants *segment.Manager
	logger   logger.Logger
}

func NewCoordinator(log logger.Logger) *Coordinator {
	return &Coordinator{
		loader:   NewLoader(log),
		saver:    NewSaver(log),
		variants: segment.NewManager(),
		logger:   log,
	}
}

func (c *Coordinator) Variants() *segment.Manager {
	return c.variants
}

// Run processes inputPath with the named variant and writes the mask
// to outputPath. Overrides layer on top of the variant's stored
// parameters for this run only.
func (c *Coordinator) Run(inputPath, outputPath, variant string, overrides map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	segmenter, err := c.variants.GetSegmenter(variant)
	if err != nil {
		return err
	}

	params := c.variants.GetParameters(variant)
	for k, v := range overrides {
		params[k] = v
	}

	metrics := RunMetrics{Path: inputPath, Variant: variant}

	start := time.Now()
	imageData, err := c.loader.Load(inputPath)
	if err != nil {
		return err
	}
	metrics.AddStage("load", time.Since(start))

	start = time.Now()
	mask, err := segmenter.Process(imageData.Gray, params)
	if err != nil {
		return fmt.Errorf("variant %s on %s: %w", variant, inputPath, err)
	}
	metrics.AddStage("segment", time.Since(start))

	start = time.Now()
	if err := c.saver.Save(outputPath, mask); err != nil {
		return err
	}
	metrics.AddStage("save", time.Since(start))

	metrics.Mask = CalculateMaskMetrics(imageData.Gray, mask)
	c.logger.Info("coordinator", "pipeline complete", metrics.Fields())

	return nil
}
