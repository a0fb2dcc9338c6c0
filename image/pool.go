package image

import (
	"sync"

	"github.com/gogpu/hwframe/internal/cache"
)

// Allocator creates a new image for a pool. It returns nil to refuse the
// request (for example, a format the allocator does not handle).
type Allocator func(format Format, width, height int) *ImageBuf

// PoolStats contains pool statistics.
type PoolStats struct {
	// Allocations is the number of images created through the allocator.
	Allocations uint64
	// Reuses is the number of requests served from a free image.
	Reuses uint64
	// Evictions is the number of released images the pool did not keep.
	Evictions uint64
	// Free is the number of images currently waiting for reuse.
	Free int
}

// Pool recycles ImageBuf instances.
//
// Pool groups free images by dimensions and format. An image obtained from
// Get returns to the pool when its last reference is released, instead of
// being destroyed. By default the most recently released image is handed out
// first; SetLRU switches to least recently used order, which rotates through
// every free image and suits GPU surfaces that may still be in flight.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey]*cache.List[*ImageBuf]
	maxSize int // max free images per bucket
	alloc   Allocator
	lru     bool
	gen     uint64
	stats   PoolStats
}

// poolKey identifies a bucket of identical image specifications.
type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a new image pool with the given maximum free images per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey]*cache.List[*ImageBuf]),
		maxSize: maxPerBucket,
	}
}

// SetAllocator replaces the function used to create new images. A nil
// allocator restores the default, which allocates software images.
func (p *Pool) SetAllocator(alloc Allocator) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alloc = alloc
}

// SetLRU makes Get hand out the least recently released image of a bucket.
// When a bucket is full, the oldest free image is destroyed to make room.
func (p *Pool) SetLRU() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lru = true
}

// Get returns an image of the given format and size, reusing a free one
// when possible. Reused software images are cleared. Returns nil if the
// allocator refuses the request.
func (p *Pool) Get(format Format, width, height int) *ImageBuf {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	if l := p.buckets[key]; l != nil && l.Len() > 0 {
		var buf *ImageBuf
		if p.lru {
			buf, _ = l.RemoveOldest()
		} else {
			buf, _ = l.RemoveNewest()
		}
		p.stats.Reuses++
		p.mu.Unlock()

		buf.refs.Store(1)
		buf.Clear()
		return buf
	}
	alloc := p.alloc
	gen := p.gen
	p.mu.Unlock()

	var buf *ImageBuf
	if alloc != nil {
		buf = alloc(format, width, height)
	} else {
		buf, _ = NewImageBuf(width, height, format)
	}
	if buf == nil {
		return nil
	}
	if buf.format != format || buf.width != width || buf.height != height {
		buf.Release()
		return nil
	}

	buf.pool = p
	buf.poolGen = gen

	p.mu.Lock()
	p.stats.Allocations++
	p.mu.Unlock()
	return buf
}

// Clear destroys all free images. Images still referenced are detached from
// the pool and destroyed when their last reference is released.
func (p *Pool) Clear() {
	p.mu.Lock()
	buckets := p.buckets
	p.buckets = make(map[poolKey]*cache.List[*ImageBuf])
	p.gen++
	p.mu.Unlock()

	for _, l := range buckets {
		l.Drain(func(buf *ImageBuf) { buf.free() })
	}
}

// Stats returns pool statistics.
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.stats
	for _, l := range p.buckets {
		s.Free += l.Len()
	}
	return s
}

// recycle takes back an image whose last reference was released.
// Returns false if the caller must destroy the image instead.
func (p *Pool) recycle(buf *ImageBuf) bool {
	key := poolKey{width: buf.width, height: buf.height, format: buf.format}

	p.mu.Lock()
	if buf.poolGen != p.gen {
		p.mu.Unlock()
		return false
	}

	l := p.buckets[key]
	if l == nil {
		l = cache.NewList[*ImageBuf]()
		p.buckets[key] = l
	}

	var evicted *ImageBuf
	if p.maxSize > 0 && l.Len() >= p.maxSize {
		p.stats.Evictions++
		if !p.lru {
			// Bucket full, discard the incoming image.
			p.mu.Unlock()
			return false
		}
		evicted, _ = l.RemoveOldest()
	}
	l.PushFront(buf)
	p.mu.Unlock()

	if evicted != nil {
		evicted.free()
	}
	return true
}
