package imaging

import (
	"fmt"
	"os"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/golang/glog"
)

// ImageCache provides thread-safe caching of decoded grayscale grids to
// avoid redundant disk reads.
//
// Grids are keyed by their file path; every grid in one cache is converted
// with the same luma policy. Once a file is loaded, subsequent Load() calls
// for the same path return the cached grid without disk I/O. Callers must
// treat returned grids as read-only, since the same grid is shared by every
// caller.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached grids hold eight bytes per pixel and remain in memory until
// explicitly removed via Evict() or Clear().
//
// # Example Usage
//
//	cache := imaging.NewImageCache(imaging.LumaRec601)
//	img, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, err := sensor.GlimpseSensor(img, sensor.Location{}, 20, 2, 3)
type ImageCache struct {
	luma Luma

	mu    sync.RWMutex
	grids map[string]*Grid
}

// NewImageCache creates an empty cache that converts images with luma.
func NewImageCache(luma Luma) *ImageCache {
	return &ImageCache{
		luma:  luma,
		grids: make(map[string]*Grid),
	}
}

// Luma returns the grayscale policy used for newly loaded images.
func (c *ImageCache) Luma() Luma { return c.luma }

// Load retrieves a grid from the cache or decodes it from disk.
//
// Supported formats are those registered by github.com/disintegration/imaging
// (PNG, JPEG, GIF, BMP, TIFF). JPEG EXIF orientation is applied before
// conversion, so rows always run top to bottom as the image is displayed.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a decodable image
func (c *ImageCache) Load(path string) (*Grid, error) {
	c.mu.RLock()
	if g, ok := c.grids[path]; ok {
		c.mu.RUnlock()
		glog.V(2).Infof("image cache hit: %s", path)
		return g, nil
	}
	c.mu.RUnlock()

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	g := FromImage(img, c.luma)
	glog.V(1).Infof("loaded %s as %dx%d grid (luma=%s)", path, g.Rows, g.Cols, c.luma)

	c.mu.Lock()
	if cached, ok := c.grids[path]; ok {
		g = cached
	} else {
		c.grids[path] = g
	}
	c.mu.Unlock()

	return g, nil
}

// Len returns the number of cached grids.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.grids)
}

// Clear removes all grids from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.grids = make(map[string]*Grid)
	c.mu.Unlock()
}

// Evict removes the grid loaded from path. If the path is not in the cache,
// this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.grids, path)
	c.mu.Unlock()
}
