package field

import "image"

// Field is a row-major grid of grayscale intensity samples. Filter
// passes never mutate a Field in place; each pass allocates a fresh
// output so workers of the next pass can read the previous field
// without locking.
type Field struct {
	Width   int
	Height  int
	Samples []float64
}

// New creates a zero-filled field. Negative dimensions collapse to an
// empty field.
func New(width, height int) *Field {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Field{
		Width:   width,
		Height:  height,
		Samples: make([]float64, width*height),
	}
}

// FromBytes widens a single-channel byte plane into a field.
func FromBytes(pix []byte, width, height int) *Field {
	f := New(width, height)
	for i := range f.Samples {
		f.Samples[i] = float64(pix[i])
	}
	return f
}

func (f *Field) At(x, y int) float64 {
	return f.Samples[y*f.Width+x]
}

func (f *Field) Set(x, y int, v float64) {
	f.Samples[y*f.Width+x] = v
}

// Max returns the largest sample value, floored at 0. Intensity
// samples are never negative, so the floor only matters for empty
// fields.
func (f *Field) Max() float64 {
	max := 0.0
	for _, v := range f.Samples {
		if v > max {
			max = v
		}
	}
	return max
}

// Quantize snaps every sample to the two mask sentinels: samples above
// split become 255, everything else 0.
func (f *Field) Quantize(split byte) *Mask {
	m := NewMask(f.Width, f.Height)
	s := float64(split)
	for i, v := range f.Samples {
		if v > s {
			m.Pix[i] = 255
		}
	}
	return m
}

// Mask is a same-shaped binary buffer; every sample is exactly 0
// (background) or 255 (foreground).
type Mask struct {
	Width  int
	Height int
	Pix    []byte
}

func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height),
	}
}

// Field widens the mask back to a float field for further filtering.
func (m *Mask) Field() *Field {
	return FromBytes(m.Pix, m.Width, m.Height)
}

// Gray adapts the mask to the standard-library image type consumed by
// the PNG encoder. The pixel buffer is shared, not copied.
func (m *Mask) Gray() *image.Gray {
	return &image.Gray{
		Pix:    m.Pix,
		Stride: m.Width,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}
