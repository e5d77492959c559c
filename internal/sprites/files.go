package sprites

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// FileStore reads images from disk in any registered format and always
// writes PNG.
type FileStore struct {
	// DirMode is used when creating missing output directories. Zero means 0755.
	DirMode fs.FileMode
}

var _ Store = FileStore{}

// Load decodes the image at path into a fresh NRGBA buffer.
func (s FileStore) Load(path string) (*image.NRGBA, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return ToNRGBA(img), nil
}

// Save encodes img as PNG at path. The data goes to a temporary file in the
// same directory first and is renamed into place, so a failed save leaves any
// existing file untouched. path may be the file img was loaded from.
func (s FileStore) Save(path string, img image.Image) error {
	mode := s.DirMode
	if mode == 0 {
		mode = 0755
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, mode); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: encode %s: %w", ErrWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	return nil
}

// Remove deletes path if it exists.
func (s FileStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: remove %s: %w", ErrWrite, path, err)
	}
	return nil
}
