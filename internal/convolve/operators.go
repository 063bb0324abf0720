package convolve

import (
	"math"

	"edge-segmenter/internal/field"
)

// Operator computes one output sample from the full input field and a
// coordinate. Implementations are pure, read only the clamped window
// around (x, y), and are safe to invoke concurrently for disjoint
// coordinates. The set of operators is closed on purpose: the engine
// never needs user-extensible behavior.
type Operator interface {
	Sample(f *field.Field, x, y int) float64
}

var sobelX = [3][3]float64{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

var sobelY = [3][3]float64{
	{1, 2, 1},
	{0, 0, 0},
	{-1, -2, -1},
}

// Gradient is the Sobel edge detector, returning |gx|+|gy| (the L1
// approximation of gradient magnitude, not Euclidean).
type Gradient struct{}

func (Gradient) Sample(f *field.Field, x, y int) float64 {
	startX, endX := max(x-1, 0), min(x+1, f.Width-1)
	startY, endY := max(y-1, 0), min(y+1, f.Height-1)

	var gx, gy float64
	for dy := startY; dy <= endY; dy++ {
		rowOffset := dy * f.Width
		for dx := startX; dx <= endX; dx++ {
			v := f.Samples[rowOffset+dx]
			// Index the kernel by the sampled offset so partial
			// windows at the borders still hit the right cell.
			gx += v * sobelX[dy-(y-1)][dx-(x-1)]
			gy += v * sobelY[dy-(y-1)][dx-(x-1)]
		}
	}
	return math.Abs(gx) + math.Abs(gy)
}

// Mean averages the clamped square window of the given radius. The
// divisor is the actual window area, so shrunk windows at the borders
// stay correct. It serves both the box-blur and the denoise passes.
type Mean struct {
	Radius int
}

func (m Mean) Sample(f *field.Field, x, y int) float64 {
	return windowMean(f, x, y, m.Radius)
}

// Dilation is the zero-aware variant of Mean: an exactly-background
// center stays background unconditionally, so background never grows.
// Its output is continuous and is always requantized by the caller.
type Dilation struct {
	Radius int
}

func (d Dilation) Sample(f *field.Field, x, y int) float64 {
	if f.Samples[y*f.Width+x] == 0 {
		return 0
	}
	return windowMean(f, x, y, d.Radius)
}

func windowMean(f *field.Field, x, y, radius int) float64 {
	startX, endX := max(x-radius, 0), min(x+radius, f.Width-1)
	startY, endY := max(y-radius, 0), min(y+radius, f.Height-1)
	divisor := (endX - startX + 1) * (endY - startY + 1)

	var g float64
	for dy := startY; dy <= endY; dy++ {
		rowOffset := dy * f.Width
		for dx := startX; dx <= endX; dx++ {
			g += f.Samples[rowOffset+dx]
		}
	}
	return g / float64(divisor)
}
