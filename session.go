package hwframe

import (
	"errors"
	"fmt"

	"github.com/gogpu/hwframe/image"
	"github.com/gogpu/hwframe/va"
	"github.com/gogpu/hwframe/vaapi"

	// The software display is the fallback of every session.
	_ "github.com/gogpu/hwframe/va/software"
)

// ErrClosed is returned by Session methods after Close.
var ErrClosed = errors.New("hwframe: session closed")

// Session is an open display with a surface pool and a pool for downloaded
// frames.
//
// Surfaces returned by NewSurface go back to the pool when released and
// are reused in least recently used order. Frames returned by Download
// come from the second pool the same way.
//
// A Session is not safe for concurrent use.
type Session struct {
	ctx      *vaapi.Context
	surfaces *image.Pool
	frames   *image.Pool
	rtFormat va.RTFormat
}

// Open opens a display and prepares its pools.
func Open(opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		ctx *vaapi.Context
		err error
	)
	if o.display != "" {
		ctx, err = vaapi.Open(o.display)
	} else {
		ctx, err = vaapi.OpenBest()
	}
	if err != nil {
		return nil, err
	}

	s := &Session{
		ctx:      ctx,
		surfaces: image.NewPool(o.poolSize),
		frames:   image.NewPool(o.poolSize),
		rtFormat: o.rtFormat,
	}
	vaapi.SetPoolAllocator(s.surfaces, ctx, o.rtFormat)

	major, minor := ctx.Version()
	Logger().Info("hwframe: session opened",
		"va_context", ctx.ID().String(),
		"va_version", fmt.Sprintf("%d.%d", major, minor),
		"formats", len(ctx.Formats()))
	return s, nil
}

// Context returns the underlying vaapi context.
func (s *Session) Context() *vaapi.Context {
	return s.ctx
}

// Supports reports whether frames of the given format can be uploaded.
func (s *Session) Supports(format image.Format) bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.SupportsFormat(format)
}

// NewSurface returns a surface from the pool, creating one if none of the
// requested size is free.
func (s *Session) NewSurface(width, height int) (*image.ImageBuf, error) {
	if s.ctx == nil {
		return nil, ErrClosed
	}
	buf := s.surfaces.Get(image.FormatVAAPI, width, height)
	if buf == nil {
		return nil, fmt.Errorf("%w: %dx%d surface", vaapi.ErrAllocationFailed, width, height)
	}
	return buf, nil
}

// Upload copies src into the surface frame.
func (s *Session) Upload(frame, src *image.ImageBuf) error {
	if s.ctx == nil {
		return ErrClosed
	}
	return vaapi.UploadImage(frame, src)
}

// Download copies the surface frame into a pooled software image.
func (s *Session) Download(frame *image.ImageBuf) (*image.ImageBuf, error) {
	if s.ctx == nil {
		return nil, ErrClosed
	}
	return vaapi.DownloadImage(frame, s.frames)
}

// Stats returns the statistics of the surface pool and the frame pool.
func (s *Session) Stats() (surfaces, frames image.PoolStats) {
	return s.surfaces.Stats(), s.frames.Stats()
}

// Close destroys the free pooled images and terminates the display. All
// surfaces obtained from the session must be released first. Close is
// safe to call more than once.
func (s *Session) Close() {
	if s.ctx == nil {
		return
	}
	s.surfaces.Clear()
	s.frames.Clear()
	s.ctx.Destroy()
	s.ctx = nil
}
