package edgepercentile

import (
	"fmt"

	"edge-segmenter/internal/convolve"
	"edge-segmenter/internal/field"
	"edge-segmenter/internal/threshold"
)

// Name identifies the variant in the registry.
const Name = "edge-percentile"

// Processor runs the rank-threshold pipeline: pre-blur, Sobel
// gradient, wide-radius denoise, then a percentile cut on the
// normalized field. Output polarity is inverted relative to the
// edge-mode variant: foreground is 0, background 255, so no dilation
// cleanup follows.
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
		"denoise_radius":  9,
		"denoise_passes":  2,
		"rank_divisor":    2,
		"workers":         0,
	}
}

func (p *Processor) ValidateParameters(params map[string]interface{}) error {
	for _, key := range []string{"blur_radius", "denoise_radius"} {
		if radius, ok := params[key].(int); ok {
			if radius < 0 || radius > 64 {
				return fmt.Errorf("%s must be between 0 and 64, got: %d", key, radius)
			}
		}
	}

	for _, key := range []string{"pre_blur_passes", "denoise_passes"} {
		if passes, ok := params[key].(int); ok {
			if passes < 0 || passes > 128 {
				return fmt.Errorf("%s must be between 0 and 128, got: %d", key, passes)
			}
		}
	}

	if divisor, ok := params["rank_divisor"].(int); ok {
		if divisor < 1 || divisor > 100 {
			return fmt.Errorf("rank_divisor must be between 1 and 100, got: %d", divisor)
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

	f := input
	blur := convolve.Mean{Radius: intParam(params, "blur_radius", 3)}
	for i := 0; i < intParam(params, "pre_blur_passes", 1); i++ {
		f = engine.Apply(f, blur)
	}

	f = engine.Apply(f, convolve.Gradient{})

	denoise := convolve.Mean{Radius: intParam(params, "denoise_radius", 9)}
	for i := 0; i < intParam(params, "denoise_passes", 2); i++ {
		f = engine.Apply(f, denoise)
	}

	selector := threshold.Percentile{
		RankDivisor: intParam(params, "rank_divisor", 2),
	}
	mask, _ := selector.Classify(f)

	return mask, nil
}

func intParam(params map[string]interface{}, key string, fallback int) int {
	if v, ok := params[key].(int); ok {
		return v
	}
	return fallback
}
