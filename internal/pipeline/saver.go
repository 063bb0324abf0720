package pipeline

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"edge-segmenter/internal/field"
	"edge-segmenter/internal/logger"
)

// Saver writes a binary mask as a single-channel PNG. The encode goes
// to a temp file in the destination directory followed by a rename, so
// a failed write never leaves a partial output behind.
type Saver struct {
	logger logger.Logger
}

func NewSaver(log logger.Logger) *Saver {
	return &Saver{logger: log}
}

func (s *Saver) Save(path string, mask *field.Mask) error {
	if mask == nil {
		return fmt.Errorf("%w: no mask to save", ErrWrite)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".edge-segmenter-*.png")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w: %w", dir, ErrWrite, err)
	}
	tmpName := tmp.Name()

	if err := png.Encode(tmp, mask.Gray()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encoding %s: %w: %w", path, ErrWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing %s: %w: %w", path, ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w: %w", path, ErrWrite, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming to %s: %w: %w", path, ErrWrite, err)
	}

	s.logger.Info("saver", "mask saved", map[string]interface{}{
		"path":   path,
		"width":  mask.Width,
		"height": mask.Height,
	})

	return nil
}
