package image

import (
	"errors"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized or does
	// not match the kind of image being created.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrFormatMismatch is returned when two images must share a format.
	ErrFormatMismatch = errors.New("image: format mismatch")

	// ErrSizeMismatch is returned when two images must share dimensions.
	ErrSizeMismatch = errors.New("image: size mismatch")

	// ErrHardwareImage is returned when CPU access is requested on a
	// hardware surface image.
	ErrHardwareImage = errors.New("image: operation requires a software image")
)

// Kind discriminates how an ImageBuf stores its pixels.
type Kind uint8

const (
	// KindSoftware images own CPU planes.
	KindSoftware Kind = iota

	// KindHardware images reference a hardware surface and have no planes.
	KindHardware
)

// String returns "software" or "hardware".
func (k Kind) String() string {
	if k == KindHardware {
		return "hardware"
	}
	return "software"
}

// ImageBuf is a reference counted frame buffer.
//
// An ImageBuf is either software backed (planes are real memory) or hardware
// backed (it carries a surface object, exposed through Hardware). Callers
// discriminate with Kind.
//
// A new ImageBuf holds one reference. Retain adds one; Release drops one.
// When the last reference is dropped the buffer either returns to the Pool
// it came from or runs its destructor, which for hardware images destroys
// the surface.
//
// Thread safety: reference counting is safe for concurrent use. Pixel
// access requires external synchronization.
type ImageBuf struct {
	format     Format
	width      int
	height     int
	planes     [MaxPlanes][]byte
	strides    [MaxPlanes]int
	hw         gpucontext.Texture
	colorspace Colorspace

	refs    atomic.Int32
	destroy func()

	// Set by Pool when the buffer was allocated through it.
	pool    *Pool
	poolGen uint64
}

// NewImageBuf allocates a software image with tightly packed planes.
// Returns an error if dimensions are invalid or the format is not a
// software format.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() || format.IsHardware() {
		return nil, ErrInvalidFormat
	}

	b := &ImageBuf{format: format, width: width, height: height}
	data := make([]byte, format.ImageBytes(width, height))
	off := 0
	for p := 0; p < format.NumPlanes(); p++ {
		stride := format.PlaneRowBytes(p, width)
		n := stride * format.PlaneHeight(p, height)
		b.planes[p] = data[off : off+n : off+n]
		b.strides[p] = stride
		off += n
	}
	b.refs.Store(1)
	return b, nil
}

// FromPlanes creates a software image over existing plane memory without
// copying. The caller must keep the memory valid for the lifetime of the
// ImageBuf. Each stride must be at least the plane's row size and each plane
// must hold all of its rows.
func FromPlanes(format Format, width, height int, planes [][]byte, strides []int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() || format.IsHardware() {
		return nil, ErrInvalidFormat
	}
	n := format.NumPlanes()
	if len(planes) < n || len(strides) < n {
		return nil, ErrDataTooSmall
	}

	b := &ImageBuf{format: format, width: width, height: height}
	for p := 0; p < n; p++ {
		rowBytes := format.PlaneRowBytes(p, width)
		if strides[p] < rowBytes {
			return nil, ErrInvalidStride
		}
		need := strides[p]*(format.PlaneHeight(p, height)-1) + rowBytes
		if len(planes[p]) < need {
			return nil, ErrDataTooSmall
		}
		b.planes[p] = planes[p]
		b.strides[p] = strides[p]
	}
	b.refs.Store(1)
	return b, nil
}

// NewHardware creates a hardware image referencing surface. destroy runs
// once, when the last reference is released (or when a Pool holding the
// image discards it). format must be a hardware format.
func NewHardware(format Format, width, height int, surface gpucontext.Texture, destroy func()) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsHardware() || surface == nil {
		return nil, ErrInvalidFormat
	}

	b := &ImageBuf{
		format:  format,
		width:   width,
		height:  height,
		hw:      surface,
		destroy: destroy,
	}
	b.refs.Store(1)
	return b, nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Format returns the pixel format.
func (b *ImageBuf) Format() Format {
	return b.format
}

// Kind reports whether the image is software or hardware backed.
func (b *ImageBuf) Kind() Kind {
	if b.hw != nil {
		return KindHardware
	}
	return KindSoftware
}

// Hardware returns the surface of a hardware image, or nil for software images.
func (b *ImageBuf) Hardware() gpucontext.Texture {
	return b.hw
}

// NumPlanes returns the number of CPU planes.
func (b *ImageBuf) NumPlanes() int {
	return b.format.NumPlanes()
}

// Plane returns the memory of plane p, or nil if the plane does not exist.
func (b *ImageBuf) Plane(p int) []byte {
	if p < 0 || p >= MaxPlanes {
		return nil
	}
	return b.planes[p]
}

// Stride returns the bytes per row of plane p.
func (b *ImageBuf) Stride(p int) int {
	if p < 0 || p >= MaxPlanes {
		return 0
	}
	return b.strides[p]
}

// Row returns the meaningful bytes of row y of plane p, or nil if out of range.
func (b *ImageBuf) Row(p, y int) []byte {
	if p < 0 || p >= b.NumPlanes() || y < 0 || y >= b.format.PlaneHeight(p, b.height) {
		return nil
	}
	start := y * b.strides[p]
	return b.planes[p][start : start+b.format.PlaneRowBytes(p, b.width)]
}

// Colorspace returns the YUV matrix tag of the image.
func (b *ImageBuf) Colorspace() Colorspace {
	return b.colorspace
}

// SetColorspace sets the YUV matrix tag of the image.
func (b *ImageBuf) SetColorspace(c Colorspace) {
	b.colorspace = c
}

// Clear zeroes all planes. Hardware images are left untouched.
func (b *ImageBuf) Clear() {
	for p := 0; p < b.NumPlanes(); p++ {
		clear(b.planes[p])
	}
}

// Retain adds a reference and returns b.
func (b *ImageBuf) Retain() *ImageBuf {
	if b.refs.Add(1) <= 1 {
		panic("image: Retain of released ImageBuf")
	}
	return b
}

// Release drops a reference. Dropping the last reference returns the image
// to its pool, or destroys it when it has none.
func (b *ImageBuf) Release() {
	n := b.refs.Add(-1)
	if n > 0 {
		return
	}
	if n < 0 {
		panic("image: Release of released ImageBuf")
	}
	if b.pool != nil && b.pool.recycle(b) {
		return
	}
	b.free()
}

// RefCount returns the current number of references.
func (b *ImageBuf) RefCount() int {
	return int(b.refs.Load())
}

// free runs the destructor exactly once.
func (b *ImageBuf) free() {
	b.pool = nil
	if d := b.destroy; d != nil {
		b.destroy = nil
		d()
	}
}
