package pipeline

import (
	"time"

	"edge-segmenter/internal/field"
)

// StageTiming records how long one pipeline stage took.
type StageTiming struct {
	Name     string
	Duration time.Duration
}

// RunMetrics accumulates per-stage timings and mask statistics for a
// single file.
type RunMetrics struct {
	Path    string
	Variant string
	Stages  []StageTiming
	Mask    MaskMetrics
}

func (m *RunMetrics) AddStage(name string, d time.Duration) {
	m.Stages = append(m.Stages, StageTiming{Name: name, Duration: d})
}

func (m *RunMetrics) Total() time.Duration {
	var total time.Duration
	for _, s := range m.Stages {
		total += s.Duration
	}
	return total
}

// Fields flattens the metrics for structured logging.
func (m *RunMetrics) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"path":              m.Path,
		"variant":           m.Variant,
		"total":             m.Total().String(),
		"white_ratio":       m.Mask.WhiteRatio,
		"region_uniformity": m.Mask.RegionUniformity,
	}
	for _, s := range m.Stages {
		fields["stage_"+s.Name] = s.Duration.String()
	}
	return fields
}

// MaskMetrics summarizes segmentation quality for a produced mask.
type MaskMetrics struct {
	// WhiteRatio is the fraction of 255-valued samples. Which class
	// that is depends on the variant's polarity.
	WhiteRatio float64
	// RegionUniformity measures how uniform the source intensities are
	// within each mask class, 1.0 meaning perfectly flat regions.
	RegionUniformity float64
}

// CalculateMaskMetrics evaluates the final mask against the intensity
// field it was derived from. Zero-area inputs yield zeroed metrics
// rather than dividing by zero.
func CalculateMaskMetrics(gray *field.Field, mask *field.Mask) MaskMetrics {
	total := len(mask.Pix)
	if total == 0 || gray.Width != mask.Width || gray.Height != mask.Height {
		return MaskMetrics{}
	}

	var whiteCount int
	var sum, sqSum [2]float64
	var count [2]int
	for i, p := range mask.Pix {
		class := 0
		if p == 255 {
			class = 1
			whiteCount++
		}
		v := gray.Samples[i]
		sum[class] += v
		sqSum[class] += v * v
		count[class]++
	}

	// Weighted intra-class variance, normalized by the worst case of a
	// {0,255} split.
	const maxVariance = 127.5 * 127.5
	var weighted float64
	for class := 0; class < 2; class++ {
		if count[class] == 0 {
			continue
		}
		n := float64(count[class])
		mean := sum[class] / n
		variance := sqSum[class]/n - mean*mean
		weighted += variance * n / float64(total)
	}

	uniformity := 1.0 - weighted/maxVariance
	if uniformity < 0 {
		uniformity = 0
	}

	return MaskMetrics{
		WhiteRatio:       float64(whiteCount) / float64(total),
		RegionUniformity: uniformity,
	}
}
