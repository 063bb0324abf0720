package edgepercentile

import (
	"testing"

	"edge-segmenter/internal/field"
)

func diagonalField() *field.Field {
	f := field.New(5, 5)
	for i := 0; i < 5; i++ {
		f.Set(i, i, 200)
	}
	return f
}

// With blur and denoise disabled, the gradient of the diagonal has
// sixteen nonzero samples: eight of 400 and eight of 800. Rank 16/4
// selects 400, the cut-point normalizes to 127.5, and only the 800
// samples classify as foreground (0 in this variant's polarity).
func TestProcessDiagonalLine(t *testing.T) {
	p := NewProcessor()
	params := map[string]interface{}{
		"pre_blur_passes": 0,
		"denoise_passes":  0,
		"rank_divisor":    4,
	}

	mask, err := p.Process(diagonalField(), params)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := []byte{
		255, 0, 255, 255, 255,
		0, 255, 0, 255, 255,
		255, 0, 255, 0, 255,
		255, 255, 0, 255, 0,
		255, 255, 255, 0, 255,
	}
	for i := range want {
		if mask.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, mask.Pix[i], want[i])
		}
	}
}

func TestProcessAllZeroField(t *testing.T) {
	p := NewProcessor()

	mask, err := p.Process(field.New(8, 8), p.GetDefaultParameters())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	for i, v := range mask.Pix {
		if v != 255 {
			t.Errorf("Pix[%d] = %d, want 255 (fully background)", i, v)
		}
	}
}

func TestValidateParameters(t *testing.T) {
	p := NewProcessor()

	tests := []struct {
		name   string
		params map[string]interface{}
		wantOK bool
	}{
		{"defaults", p.GetDefaultParameters(), true},
		{"zero divisor", map[string]interface{}{"rank_divisor": 0}, false},
		{"negative denoise radius", map[string]interface{}{"denoise_radius": -3}, false},
		{"too many passes", map[string]interface{}{"denoise_passes": 500}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.ValidateParameters(tt.params)
			if (err == nil) != tt.wantOK {
				t.Errorf("ValidateParameters() error = %v, want ok=%v", err, tt.wantOK)
			}
		})
	}
}
