package tileset

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
)

// Loader decodes tileset images from disk and caches them by path, so that
// commands that inspect and then slice the same image pay for one decode.
//
// Loader is safe for concurrent use. Cached images remain in memory until
// Evict or Clear is called.
type Loader struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewLoader creates an empty image loader.
func NewLoader() *Loader {
	return &Loader{images: make(map[string]image.Image)}
}

// Open returns the decoded image at path, reading from disk only on the first
// call for a given path. PNG, JPEG, GIF, TIFF and BMP sources are supported.
// The cache key is the exact path string, so relative and absolute spellings
// of the same file are cached separately.
func (l *Loader) Open(path string) (image.Image, error) {
	l.mu.RLock()
	img, ok := l.images[path]
	l.mu.RUnlock()
	if ok {
		return img, nil
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tileset image: %w", err)
	}

	l.mu.Lock()
	l.images[path] = img
	l.mu.Unlock()
	return img, nil
}

// Evict drops the cached image for path, if any.
func (l *Loader) Evict(path string) {
	l.mu.Lock()
	delete(l.images, path)
	l.mu.Unlock()
}

// Clear drops every cached image.
func (l *Loader) Clear() {
	l.mu.Lock()
	l.images = make(map[string]image.Image)
	l.mu.Unlock()
}
