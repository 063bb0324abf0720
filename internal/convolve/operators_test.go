package convolve

import (
	"testing"

	"edge-segmenter/internal/field"
)

func uniformField(w, h int, v float64) *field.Field {
	f := field.New(w, h)
	for i := range f.Samples {
		f.Samples[i] = v
	}
	return f
}

func TestGradientUniformInterior(t *testing.T) {
	f := uniformField(7, 7, 42)
	op := Gradient{}

	for y := 1; y < 6; y++ {
		for x := 1; x < 6; x++ {
			if got := op.Sample(f, x, y); got != 0 {
				t.Errorf("Sample(%d,%d) = %v, want 0 on a flat region", x, y, got)
			}
		}
	}
}

// At the borders the window shrinks, so kernel weights no longer
// cancel even on a flat field. The corner sums to |3v| + |-3v|.
func TestGradientUniformCorner(t *testing.T) {
	f := uniformField(5, 5, 10)
	if got := (Gradient{}).Sample(f, 0, 0); got != 60 {
		t.Errorf("Sample(0,0) = %v, want 60", got)
	}
}

func TestGradientDiagonalLine(t *testing.T) {
	f := field.New(5, 5)
	for i := 0; i < 5; i++ {
		f.Set(i, i, 200)
	}

	want := [][]float64{
		{400, 800, 400, 0, 0},
		{800, 0, 800, 400, 0},
		{400, 800, 0, 800, 400},
		{0, 400, 800, 0, 800},
		{0, 0, 400, 800, 400},
	}

	op := Gradient{}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := op.Sample(f, x, y); got != want[y][x] {
				t.Errorf("Sample(%d,%d) = %v, want %v", x, y, got, want[y][x])
			}
		}
	}
}

func TestMeanSinglePixelIdentity(t *testing.T) {
	f := field.New(1, 1)
	f.Set(0, 0, 123.25)

	for _, radius := range []int{0, 1, 5, 100} {
		if got := (Mean{Radius: radius}).Sample(f, 0, 0); got != 123.25 {
			t.Errorf("radius %d: Sample(0,0) = %v, want 123.25", radius, got)
		}
	}
}

func TestMeanClampedDivisor(t *testing.T) {
	// 3x3 field; the corner window at radius 1 covers only 4 cells.
	f := &field.Field{Width: 3, Height: 3, Samples: []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}}
	op := Mean{Radius: 1}

	if got, want := op.Sample(f, 0, 0), (1+2+4+5)/4.0; got != want {
		t.Errorf("corner Sample(0,0) = %v, want %v", got, want)
	}
	if got, want := op.Sample(f, 1, 0), (1+2+3+4+5+6)/6.0; got != want {
		t.Errorf("edge Sample(1,0) = %v, want %v", got, want)
	}
	if got, want := op.Sample(f, 1, 1), 5.0; got != want {
		t.Errorf("center Sample(1,1) = %v, want %v", got, want)
	}
}

func TestDilationBackgroundNeverGrows(t *testing.T) {
	f := &field.Field{Width: 3, Height: 1, Samples: []float64{255, 0, 255}}
	op := Dilation{Radius: 1}

	if got := op.Sample(f, 1, 0); got != 0 {
		t.Errorf("zero center Sample(1,0) = %v, want 0", got)
	}
	if got, want := op.Sample(f, 0, 0), (255+0)/2.0; got != want {
		t.Errorf("nonzero center Sample(0,0) = %v, want %v", got, want)
	}
}
