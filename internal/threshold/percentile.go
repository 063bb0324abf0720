package threshold

import "edge-segmenter/internal/field"

// Percentile selects a cut-point at a fixed rank of the nonzero
// samples after normalizing the field to [0, 255]. Output polarity is
// inverted relative to Mode and is kept that way deliberately:
// foreground is 0, background is 255.
type Percentile struct {
	// RankDivisor picks rank = nonzeroCount / RankDivisor; 2 selects
	// the median of the nonzero samples.
	RankDivisor int
}

// Classify normalizes f by 255/max, picks the rank-th smallest nonzero
// sample as the cut-point, and marks samples whose normalized value
// exceeds it as foreground (0). A field with max == 0 has no
// well-defined normalization; it is guarded and classifies as fully
// background rather than propagating NaN into the mask.
func (s Percentile) Classify(f *field.Field) (*field.Mask, float64) {
	m := field.NewMask(f.Width, f.Height)

	maxv := f.Max()
	if maxv == 0 {
		for i := range m.Pix {
			m.Pix[i] = 255
		}
		return m, 0
	}
	scale := 255.0 / maxv

	nonzero := make([]float64, 0, len(f.Samples))
	for _, v := range f.Samples {
		if v != 0 {
			nonzero = append(nonzero, v)
		}
	}

	divisor := s.RankDivisor
	if divisor < 1 {
		divisor = 2
	}
	rank := len(nonzero) / divisor
	if rank >= len(nonzero) {
		rank = len(nonzero) - 1
	}
	cut := quickselect(nonzero, rank) * scale

	for i, v := range f.Samples {
		if v*scale > cut {
			m.Pix[i] = 0
		} else {
			m.Pix[i] = 255
		}
	}
	return m, cut
}

// quickselect returns the k-th smallest element, reordering vals in
// place. Partial ordering only; a full sort is deliberately avoided.
func quickselect(vals []float64, k int) float64 {
	lo, hi := 0, len(vals)-1
	for lo < hi {
		p := partition(vals, lo, hi)
		switch {
		case k == p:
			return vals[k]
		case k < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
	return vals[k]
}

func partition(vals []float64, lo, hi int) int {
	mid := lo + (hi-lo)/2
	vals[mid], vals[hi] = vals[hi], vals[mid]
	pivot := vals[hi]

	i := lo
	for j := lo; j < hi; j++ {
		if vals[j] < pivot {
			vals[i], vals[j] = vals[j], vals[i]
			i++
		}
	}
	vals[i], vals[hi] = vals[hi], vals[i]
	return i
}
