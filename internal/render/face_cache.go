package render

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// Deriving a font.Face from a parsed TrueType font allocates glyph state, so
// faces are cached per (source font, size, DPI). The cache holds a small
// fixed number of faces and drops the one touched longest ago when full;
// evicted faces are closed.

var faces = newFaceCache(32)

// SetFaceCacheCapacity changes the max number of cached font faces.
func SetFaceCacheCapacity(capacity int) {
	faces.reset(capacity)
}

// ClearFaceCache releases all cached font.Face objects.
func ClearFaceCache() {
	faces.clear()
}

// faceKey identifies one derived face.
type faceKey struct {
	source *truetype.Font
	sizePt float64
	dpi    float64
}

type cachedFace struct {
	face     font.Face
	lastUsed uint64
}

// faceCache is a thread-safe cache of derived faces with oldest-use eviction.
// Capacity stays small, so eviction scans instead of keeping an order list.
type faceCache struct {
	mu       sync.Mutex
	capacity int
	clock    uint64
	faces    map[faceKey]*cachedFace
}

func newFaceCache(capacity int) *faceCache {
	if capacity < 1 {
		capacity = 1
	}
	return &faceCache{
		capacity: capacity,
		faces:    make(map[faceKey]*cachedFace),
	}
}

// lookup returns the cached face for key, refreshing its use stamp, or
// derives one, stores it, and evicts the stalest entry if the cache ran over
// capacity.
func (c *faceCache) lookup(key faceKey, derive func() font.Face) font.Face {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock++
	if entry, ok := c.faces[key]; ok {
		entry.lastUsed = c.clock
		return entry.face
	}

	if len(c.faces) >= c.capacity {
		var stalest faceKey
		var stalestUse uint64
		first := true
		for k, entry := range c.faces {
			if first || entry.lastUsed < stalestUse {
				stalest = k
				stalestUse = entry.lastUsed
				first = false
			}
		}
		_ = c.faces[stalest].face.Close()
		delete(c.faces, stalest)
	}

	face := derive()
	c.faces[key] = &cachedFace{face: face, lastUsed: c.clock}
	return face
}

func (c *faceCache) reset(capacity int) {
	c.clear()
	c.mu.Lock()
	defer c.mu.Unlock()
	if capacity < 1 {
		capacity = 1
	}
	c.capacity = capacity
}

func (c *faceCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.faces {
		_ = entry.face.Close()
		delete(c.faces, key)
	}
}

func (c *faceCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.faces)
}
