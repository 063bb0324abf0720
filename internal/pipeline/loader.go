package pipeline

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"gocv.io/x/gocv"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"edge-segmenter/internal/field"
	"edge-segmenter/internal/logger"
)

// Loader decodes an input image and reduces it to a single-channel
// intensity field.
type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	return &Loader{logger: log}
}

// Load reads and decodes the image at path. Pixel decoding goes
// through OpenCV; the standard-library registry only sniffs the
// format name for logging. Images with fewer than three channels are
// rejected: the grayscale reduction averages the first three channels
// and silently yielding an all-zero field would be worse than an
// error.
func (l *Loader) Load(path string) (*ImageData, error) {
	startTime := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w: %w", path, ErrLoad, err)
	}

	format := sniffFormat(data)

	mat, err := gocv.IMDecode(data, gocv.IMReadUnchanged)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w: %w", path, ErrLoad, err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, fmt.Errorf("decoding %s: %w: no pixel data", path, ErrLoad)
	}

	width, height := mat.Cols(), mat.Rows()
	channels := mat.Channels()
	if channels < 3 {
		return nil, fmt.Errorf("%s has %d channel(s): %w: grayscale reduction requires at least 3",
			path, channels, ErrLoad)
	}
	if t := mat.Type(); t != gocv.MatTypeCV8UC3 && t != gocv.MatTypeCV8UC4 {
		return nil, fmt.Errorf("%s has unsupported sample depth (mat type %d): %w", path, int(t), ErrLoad)
	}

	gray := reduceChannels(mat.ToBytes(), width, height, channels)

	imageData := &ImageData{
		Path:     path,
		Width:    width,
		Height:   height,
		Channels: channels,
		Format:   format,
		Gray:     gray,
	}

	l.logger.Info("loader", "image loaded", map[string]interface{}{
		"path":     path,
		"width":    width,
		"height":   height,
		"channels": channels,
		"format":   format,
		"elapsed":  time.Since(startTime).String(),
	})

	return imageData, nil
}

// reduceChannels collapses interleaved pixels to the mean of their
// first three channels; any alpha channel is ignored.
func reduceChannels(pix []byte, width, height, channels int) *field.Field {
	f := field.New(width, height)
	for i := 0; i < width*height; i++ {
		base := i * channels
		f.Samples[i] = (float64(pix[base]) + float64(pix[base+1]) + float64(pix[base+2])) / 3.0
	}
	return f
}

func sniffFormat(data []byte) string {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "unknown"
	}
	return format
}
