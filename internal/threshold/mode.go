package threshold

import "edge-segmenter/internal/field"

// Mode selects the dominant mid-tone: the most frequent quantized
// sample value inside the interest band (Low, High), both bounds
// exclusive. Classification marks samples within Certainty of the
// selected value as foreground (255), everything else background (0).
type Mode struct {
	Low       int
	High      int
	Certainty int
}

// Select returns the cut-point for f.
func (s Mode) Select(f *field.Field) byte {
	h := BuildHistogram(f, s.Low, s.High)
	return h.Mode()
}

// Apply classifies f against a previously selected cut-point.
func (s Mode) Apply(f *field.Field, cut byte) *field.Mask {
	m := field.NewMask(f.Width, f.Height)
	t := int(cut)
	for i, v := range f.Samples {
		dist := int(Quantize(v)) - t
		if dist < 0 {
			dist = -dist
		}
		if dist < s.Certainty {
			m.Pix[i] = 255
		}
	}
	return m
}

// Classify selects the cut-point and applies it in one step.
func (s Mode) Classify(f *field.Field) (*field.Mask, byte) {
	cut := s.Select(f)
	return s.Apply(f, cut), cut
}
