package pipeline

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestScene(t *testing.T) string {
	t.Helper()
	// Dark left half, bright right half: one clean vertical edge.
	img := image.NewNRGBA(image.Rect(0, 0, 48, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			v := uint8(20)
			if x >= 24 {
				v = 220
			}
			img.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return writePNG(t, img)
}

func TestCoordinatorRunEndToEnd(t *testing.T) {
	input := writeTestScene(t)
	output := filepath.Join(t.TempDir(), "mask.png")

	c := NewCoordinator(testLogger())
	for _, variant := range c.Variants().GetAvailableVariants() {
		t.Run(variant, func(t *testing.T) {
			if err := c.Run(input, output, variant, nil); err != nil {
				t.Fatalf("Run: %v", err)
			}

			file, err := os.Open(output)
			if err != nil {
				t.Fatalf("opening output: %v", err)
			}
			defer file.Close()

			img, err := png.Decode(file)
			if err != nil {
				t.Fatalf("decoding output: %v", err)
			}
			if img.Bounds().Dx() != 48 || img.Bounds().Dy() != 48 {
				t.Fatalf("output bounds = %v, want 48x48", img.Bounds())
			}
			for y := 0; y < 48; y++ {
				for x := 0; x < 48; x++ {
					r, _, _, _ := img.At(x, y).RGBA()
					if v := byte(r >> 8); v != 0 && v != 255 {
						t.Fatalf("pixel (%d,%d) = %d, want 0 or 255", x, y, v)
					}
				}
			}
		})
	}
}

func TestCoordinatorRunUnknownVariant(t *testing.T) {
	c := NewCoordinator(testLogger())
	if err := c.Run("in.png", "out.png", "otsu", nil); err == nil {
		t.Error("Run(unknown variant) = nil error, want error")
	}
}

func TestCoordinatorRunPropagatesLoadError(t *testing.T) {
	c := NewCoordinator(testLogger())
	err := c.Run(filepath.Join(t.TempDir(), "missing.png"), "out.png", "edge-mode", nil)
	if !errors.Is(err, ErrLoad) {
		t.Errorf("Run(missing input) = %v, want ErrLoad", err)
	}
}

func TestCoordinatorRunPropagatesWriteError(t *testing.T) {
	input := writeTestScene(t)
	output := filepath.Join(t.TempDir(), "no", "such", "dir", "mask.png")

	c := NewCoordinator(testLogger())
	overrides := map[string]interface{}{"blur_passes": 1, "cleanup_passes": 1}
	err := c.Run(input, output, "edge-mode", overrides)
	if !errors.Is(err, ErrWrite) {
		t.Errorf("Run(unwritable output) = %v, want ErrWrite", err)
	}
}

func TestCoordinatorRunAppliesOverrides(t *testing.T) {
	input := writeTestScene(t)
	output := filepath.Join(t.TempDir(), "mask.png")

	c := NewCoordinator(testLogger())
	overrides := map[string]interface{}{"blur_passes": -1}
	if err := c.Run(input, output, "edge-mode", overrides); err == nil {
		t.Error("Run with invalid override = nil error, want validation error")
	}
}
