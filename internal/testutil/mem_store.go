package testutil

import (
	"fmt"
	"image"
	"sort"
	"sync"

	"github.com/JPM1118/sheetcut/internal/sprites"
)

// MemStore implements sprites.Store in memory for testing.
type MemStore struct {
	mu      sync.Mutex
	Images  map[string]*image.NRGBA
	LoadErr map[string]error
	SaveErr map[string]error
	Saved   map[string]*image.NRGBA
}

// NewMemStore returns a store preloaded with images keyed by path.
func NewMemStore(images map[string]*image.NRGBA) *MemStore {
	if images == nil {
		images = make(map[string]*image.NRGBA)
	}
	return &MemStore{
		Images:  images,
		LoadErr: make(map[string]error),
		SaveErr: make(map[string]error),
		Saved:   make(map[string]*image.NRGBA),
	}
}

func (m *MemStore) Load(path string) (*image.NRGBA, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.LoadErr[path]; ok {
		return nil, err
	}
	img, ok := m.Images[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", sprites.ErrMissingInput, path)
	}
	return sprites.ToNRGBA(img), nil
}

func (m *MemStore) Save(path string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.SaveErr[path]; ok {
		return err
	}
	m.Saved[path] = sprites.ToNRGBA(img)
	return nil
}

func (m *MemStore) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Saved, path)
	return nil
}

// SavedPaths returns the written paths in sorted order.
func (m *MemStore) SavedPaths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.Saved))
	for p := range m.Saved {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
