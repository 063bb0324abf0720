package morphology

import (
	"edge-segmenter/internal/convolve"
	"edge-segmenter/internal/field"
)

// quantizeSplit is the fixed re-quantization point between iterations:
// averaged samples above it saturate to 255, the rest snap to 0.
const quantizeSplit = 127

// Cleanup refines a binary mask by repeated zero-aware dilation.
// Isolated foreground specks average low inside their window and snap
// to background, while solid regions stay saturated; a cheap iterative
// substitute for connected-component analysis.
type Cleanup struct {
	Radius     int
	Iterations int
}

// Run applies Iterations dilation passes through the engine, snapping
// every sample back to {0, 255} after each pass. The input mask is not
// modified.
func (c Cleanup) Run(engine *convolve.Engine, m *field.Mask) *field.Mask {
	f := m.Field()
	op := convolve.Dilation{Radius: c.Radius}

	for i := 0; i < c.Iterations; i++ {
		f = engine.Apply(f, op)
		for j, v := range f.Samples {
			if v > quantizeSplit {
				f.Samples[j] = 255
			} else {
				f.Samples[j] = 0
			}
		}
	}

	return f.Quantize(quantizeSplit)
}
