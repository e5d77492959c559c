package sprites

import (
	"errors"
	"image"
)

// Errors returned by a Store. Callers classify failures with errors.Is.
var (
	// ErrMissingInput means the source path does not exist.
	ErrMissingInput = errors.New("missing input")
	// ErrDecode means the file exists but is not a decodable image.
	ErrDecode = errors.New("decode failed")
	// ErrWrite means the output could not be written.
	ErrWrite = errors.New("write failed")
)

// Store loads and persists images.
// FileStore implements this interface. Tests can provide in-memory implementations.
type Store interface {
	Load(path string) (*image.NRGBA, error)
	Save(path string, img image.Image) error
	// Remove deletes a file written by Save. A path that does not exist is
	// not an error.
	Remove(path string) error
}
