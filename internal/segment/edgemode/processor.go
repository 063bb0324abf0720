package edgemode

import (
	"fmt"

	"edge-segmenter/internal/convolve"
	"edge-segmenter/internal/field"
	"edge-segmenter/internal/morphology"
	"edge-segmenter/internal/threshold"
)

// Name identifies the variant in the registry.
const Name = "edge-mode"

// Processor runs the histogram-mode pipeline: pre-blur, Sobel
// gradient, heavy blur, dominant-mid-tone threshold, then iterative
// dilation cleanup. Foreground is 255, background 0.
type Processor struct {
	name   string
	engine *convolve.Engine
}

func NewProcessor() *Processor {
	return &Processor{
		name:   Name,
		engine: convolve.NewEngine(0),
	}
}

func (p *Processor) GetName() string {
	return p.name
}

func (p *Processor) GetDefaultParameters() map[string]interface{} {
	return map[string]interface{}{
		"blur_radius":     3,
		"pre_blur_passes": 1,
		"blur_passes":     20,
		"band_low":        0,
		"band_high":       51,
		"certainty":       5,
		"cleanup_radius":  9,
		"cleanup_passes":  8,
		"workers":         0,
	}
}

func (p *Processor) ValidateParameters(params map[string]interface{}) error {
	if radius, ok := params["blur_radius"].(int); ok {
		if radius < 0 || radius > 64 {
			return fmt.Errorf("blur_radius must be between 0 and 64, got: %d", radius)
		}
	}

	for _, key := range []string{"pre_blur_passes", "blur_passes", "cleanup_passes"} {
		if passes, ok := params[key].(int); ok {
			if passes < 0 || passes > 128 {
				return fmt.Errorf("%s must be between 0 and 128, got: %d", key, passes)
			}
		}
	}

	low, lowOK := params["band_low"].(int)
	high, highOK := params["band_high"].(int)
	if lowOK && (low < 0 || low > 255) {
		return fmt.Errorf("band_low must be between 0 and 255, got: %d", low)
	}
	if highOK && (high < 1 || high > 256) {
		return fmt.Errorf("band_high must be between 1 and 256, got: %d", high)
	}
	if lowOK && highOK && low >= high {
		return fmt.Errorf("band_low must be below band_high, got: %d >= %d", low, high)
	}

	if certainty, ok := params["certainty"].(int); ok {
		if certainty < 1 || certainty > 255 {
			return fmt.Errorf("certainty must be between 1 and 255, got: %d", certainty)
		}
	}

	if radius, ok := params["cleanup_radius"].(int); ok {
		if radius < 0 || radius > 64 {
			return fmt.Errorf("cleanup_radius must be between 0 and 64, got: %d", radius)
		}
	}

	if workers, ok := params["workers"].(int); ok {
		if workers < 0 || workers > 256 {
			return fmt.Errorf("workers must be between 0 and 256, got: %d", workers)
		}
	}

	return nil
}

func (p *Processor) Process(input *field.Field, params map[string]interface{}) (*field.Mask, error) {
	if err := p.ValidateParameters(params); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}

	engine := p.engine
	if workers := intParam(params, "workers", 0); workers > 0 {
		engine = convolve.NewEngine(workers)
	}

	blur := convolve.Mean{Radius: intParam(params, "blur_radius", 3)}

	f := input
	for i := 0; i < intParam(params, "pre_blur_passes", 1); i++ {
		f = engine.Apply(f, blur)
	}

	f = engine.Apply(f, convolve.Gradient{})

	for i := 0; i < intParam(params, "blur_passes", 20); i++ {
		f = engine.Apply(f, blur)
	}

	selector := threshold.Mode{
		Low:       intParam(params, "band_low", 0),
		High:      intParam(params, "band_high", 51),
		Certainty: intParam(params, "certainty", 5),
	}
	mask, _ := selector.Classify(f)

	if passes := intParam(params, "cleanup_passes", 8); passes > 0 {
		cleanup := morphology.Cleanup{
			Radius:     intParam(params, "cleanup_radius", 9),
			Iterations: passes,
		}
		mask = cleanup.Run(engine, mask)
	}

	return mask, nil
}

func intParam(params map[string]interface{}, key string, fallback int) int {
	if v, ok := params[key].(int); ok {
		return v
	}
	return fallback
}
