package threshold

import "edge-segmenter/internal/field"

// Histogram counts byte-quantized sample values. It is an explicit
// value passed between functions, never shared state.
type Histogram [256]uint32

// BuildHistogram counts the quantized samples of f that fall strictly
// between low and high (both bounds exclusive). The usual band
// excludes 0 (background) and the high outliers.
func BuildHistogram(f *field.Field, low, high int) Histogram {
	var h Histogram
	for _, v := range f.Samples {
		b := int(Quantize(v))
		if b <= low || b >= high {
			continue
		}
		h[b]++
	}
	return h
}

// Mode returns the most frequent value; ties break toward the smaller
// value so selection stays deterministic. An empty histogram yields 0.
func (h Histogram) Mode() byte {
	best := 0
	for v := 1; v < len(h); v++ {
		if h[v] > h[best] {
			best = v
		}
	}
	return byte(best)
}

// Quantize clamps a sample into the byte range.
func Quantize(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}
