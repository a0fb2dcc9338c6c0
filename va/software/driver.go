// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package software

import (
	"slices"
	"sync"

	"github.com/gogpu/hwframe/va"
)

func init() {
	va.Register(va.DisplaySoftware, func() va.Display { return New() })
}

// Default API version reported by Initialize.
const (
	DefaultMajor = 1
	DefaultMinor = 22
)

// DeriveMode controls how DeriveImage behaves.
type DeriveMode uint8

const (
	// DeriveAlias returns an image sharing the surface memory.
	DeriveAlias DeriveMode = iota

	// DeriveMismatch returns an aliasing image whose height is padded
	// past the surface height, as drivers with tiled allocations do.
	DeriveMismatch

	// DeriveUnsupported fails every DeriveImage call.
	DeriveUnsupported
)

// String returns the mode name.
func (m DeriveMode) String() string {
	switch m {
	case DeriveAlias:
		return "alias"
	case DeriveMismatch:
		return "mismatch"
	case DeriveUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

type surface struct {
	id      va.SurfaceID
	rt      va.RTFormat
	width   int
	height  int
	layout  va.Image
	data    []byte
	written bool
}

type image struct {
	desc        va.Image
	data        []byte
	derivedFrom va.SurfaceID
	mapped      bool
}

type failKey struct {
	call   Call
	fourcc va.FourCC
}

// Driver is a software va.Display.
//
// Driver is safe for concurrent use.
type Driver struct {
	mu sync.Mutex

	major, minor int
	initialized  bool
	terminated   bool

	formats    []va.ImageFormat
	maxFormats int
	derive     DeriveMode
	failures   map[failKey]va.Status

	surfaces map[va.SurfaceID]*surface
	images   map[va.ImageID]*image
	buffers  map[va.BufferID]va.ImageID
	nextID   uint32

	calls []Record
}

// New creates a software driver.
func New(opts ...Option) *Driver {
	d := &Driver{
		major:    DefaultMajor,
		minor:    DefaultMinor,
		failures: make(map[failKey]va.Status),
		surfaces: make(map[va.SurfaceID]*surface),
		images:   make(map[va.ImageID]*image),
		buffers:  make(map[va.BufferID]va.ImageID),
	}
	WithFormats(DefaultFormats...)(d)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Compile-time interface check.
var _ va.Display = (*Driver)(nil)

// newID hands out IDs from a single counter shared by all object kinds.
// Zero is a valid ID.
func (d *Driver) newID() uint32 {
	id := d.nextID
	d.nextID++
	return id
}

// failure returns the injected status for a call, if any. A failure keyed
// on a FourCC takes precedence over one keyed on the call alone.
func (d *Driver) failure(call Call, fourcc va.FourCC) va.Status {
	if fourcc != 0 {
		if st, ok := d.failures[failKey{call, fourcc}]; ok {
			return st
		}
	}
	return d.failures[failKey{call, 0}]
}

// enter performs the checks shared by every call.
func (d *Driver) enter(call Call, fourcc va.FourCC) va.Status {
	if d.terminated {
		return va.StatusErrorInvalidDisplay
	}
	return d.failure(call, fourcc)
}

// Initialize implements va.Display.
func (d *Driver) Initialize() (int, int, va.Status) {
	d.mu.Lock()
	defer d.mu.Unlock()

	st := d.enter(CallInitialize, 0)
	if st.OK() {
		d.initialized = true
	}
	d.record(Record{Call: CallInitialize, Status: st})
	if !st.OK() {
		return 0, 0, st
	}
	slogger().Debug("software va: initialized", "major", d.major, "minor", d.minor)
	return d.major, d.minor, st
}

// Terminate implements va.Display.
func (d *Driver) Terminate() va.Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	st := d.enter(CallTerminate, 0)
	if st.OK() {
		d.terminated = true
		slogger().Debug("software va: terminated",
			"surfaces", len(d.surfaces), "images", len(d.images))
	}
	d.record(Record{Call: CallTerminate, Status: st})
	return st
}

// MaxNumImageFormats implements va.Display.
func (d *Driver) MaxNumImageFormats() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.record(Record{Call: CallMaxNumImageFormats})
	return max(d.maxFormats, len(d.formats))
}

// QueryImageFormats implements va.Display.
func (d *Driver) QueryImageFormats(formats []va.ImageFormat) (int, va.Status) {
	d.mu.Lock()
	defer d.mu.Unlock()

	st := d.enter(CallQueryImageFormats, 0)
	n := 0
	if st.OK() {
		n = copy(formats, d.formats)
	}
	d.record(Record{Call: CallQueryImageFormats, Status: st})
	return n, st
}

// CreateSurfaces implements va.Display.
func (d *Driver) CreateSurfaces(rt va.RTFormat, width, height int, out []va.SurfaceID) va.Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	st := d.createSurfaces(rt, width, height, out)
	rec := Record{Call: CallCreateSurfaces, Surface: va.InvalidID, Image: va.InvalidID, Status: st}
	if st.OK() && len(out) > 0 {
		rec.Surface = out[0]
	}
	d.record(rec)
	return st
}

func (d *Driver) createSurfaces(rt va.RTFormat, width, height int, out []va.SurfaceID) va.Status {
	if st := d.enter(CallCreateSurfaces, 0); !st.OK() {
		return st
	}
	if width <= 0 || height <= 0 || len(out) == 0 {
		return va.StatusErrorInvalidParameter
	}
	fourcc, ok := nativeFourCC(rt)
	if !ok {
		return va.StatusErrorUnsupportedRTFormat
	}
	for i := range out {
		s := &surface{
			id:     va.SurfaceID(d.newID()),
			rt:     rt,
			width:  width,
			height: height,
		}
		layoutImage(fourcc, width, height, &s.layout)
		s.data = make([]byte, s.layout.DataSize)
		d.surfaces[s.id] = s
		out[i] = s.id
	}
	return va.StatusSuccess
}

// DestroySurfaces implements va.Display.
func (d *Driver) DestroySurfaces(ids []va.SurfaceID) va.Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	st := d.enter(CallDestroySurfaces, 0)
	if st.OK() {
		for _, id := range ids {
			if _, ok := d.surfaces[id]; !ok {
				st = va.StatusErrorInvalidSurface
				continue
			}
			delete(d.surfaces, id)
		}
	}
	rec := Record{Call: CallDestroySurfaces, Surface: va.InvalidID, Image: va.InvalidID, Status: st}
	if len(ids) > 0 {
		rec.Surface = ids[0]
	}
	d.record(rec)
	return st
}

// SyncSurface implements va.Display.
func (d *Driver) SyncSurface(id va.SurfaceID) va.Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	st := d.enter(CallSyncSurface, 0)
	if st.OK() {
		if _, ok := d.surfaces[id]; !ok {
			st = va.StatusErrorInvalidSurface
		}
	}
	d.record(Record{Call: CallSyncSurface, Surface: id, Image: va.InvalidID, Status: st})
	return st
}

// DeriveImage implements va.Display.
func (d *Driver) DeriveImage(id va.SurfaceID, out *va.Image) va.Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.surfaces[id]
	var fourcc va.FourCC
	if s != nil {
		fourcc = s.layout.Format.FourCC
	}
	st := d.deriveImage(s, out)
	rec := Record{Call: CallDeriveImage, Surface: id, Image: va.InvalidID, FourCC: fourcc, Status: st}
	if st.OK() {
		rec.Image = out.ImageID
	}
	d.record(rec)
	return st
}

func (d *Driver) deriveImage(s *surface, out *va.Image) va.Status {
	var fourcc va.FourCC
	if s != nil {
		fourcc = s.layout.Format.FourCC
	}
	if st := d.enter(CallDeriveImage, fourcc); !st.OK() {
		return st
	}
	if s == nil {
		return va.StatusErrorInvalidSurface
	}
	if d.derive == DeriveUnsupported {
		return va.StatusErrorOperationFailed
	}

	img := &image{
		desc:        s.layout,
		data:        s.data,
		derivedFrom: s.id,
	}
	img.desc.ImageID = va.ImageID(d.newID())
	img.desc.Buf = va.BufferID(d.newID())
	if d.derive == DeriveMismatch {
		img.desc.Height = align(s.height+1, 32)
	}
	d.images[img.desc.ImageID] = img
	d.buffers[img.desc.Buf] = img.desc.ImageID
	*out = img.desc
	return va.StatusSuccess
}

// CreateImage implements va.Display.
func (d *Driver) CreateImage(format *va.ImageFormat, width, height int, out *va.Image) va.Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	var fourcc va.FourCC
	if format != nil {
		fourcc = format.FourCC
	}
	st := d.createImage(fourcc, width, height, out)
	rec := Record{Call: CallCreateImage, Surface: va.InvalidID, Image: va.InvalidID, FourCC: fourcc, Status: st}
	if st.OK() {
		rec.Image = out.ImageID
	}
	d.record(rec)
	return st
}

func (d *Driver) createImage(fourcc va.FourCC, width, height int, out *va.Image) va.Status {
	if st := d.enter(CallCreateImage, fourcc); !st.OK() {
		return st
	}
	if width <= 0 || height <= 0 {
		return va.StatusErrorInvalidParameter
	}
	if !d.advertises(fourcc) {
		return va.StatusErrorInvalidImageFormat
	}
	img := &image{derivedFrom: va.InvalidID}
	if !layoutImage(fourcc, width, height, &img.desc) {
		return va.StatusErrorInvalidImageFormat
	}
	img.desc.ImageID = va.ImageID(d.newID())
	img.desc.Buf = va.BufferID(d.newID())
	img.data = make([]byte, img.desc.DataSize)
	d.images[img.desc.ImageID] = img
	d.buffers[img.desc.Buf] = img.desc.ImageID
	*out = img.desc
	return va.StatusSuccess
}

func (d *Driver) advertises(fourcc va.FourCC) bool {
	return slices.ContainsFunc(d.formats, func(f va.ImageFormat) bool {
		return f.FourCC == fourcc
	})
}

// DestroyImage implements va.Display.
func (d *Driver) DestroyImage(id va.ImageID) va.Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	img := d.images[id]
	var fourcc va.FourCC
	if img != nil {
		fourcc = img.desc.Format.FourCC
	}
	st := d.enter(CallDestroyImage, fourcc)
	if st.OK() {
		if img == nil {
			st = va.StatusErrorInvalidImage
		} else {
			delete(d.buffers, img.desc.Buf)
			delete(d.images, id)
		}
	}
	d.record(Record{Call: CallDestroyImage, Surface: va.InvalidID, Image: id, FourCC: fourcc, Status: st})
	return st
}

// GetImage implements va.Display.
func (d *Driver) GetImage(sid va.SurfaceID, x, y, width, height int, iid va.ImageID) va.Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	img := d.images[iid]
	var fourcc va.FourCC
	if img != nil {
		fourcc = img.desc.Format.FourCC
	}
	st := d.getImage(d.surfaces[sid], va.Rect{X: x, Y: y, Width: width, Height: height}, img, fourcc)
	d.record(Record{Call: CallGetImage, Surface: sid, Image: iid, FourCC: fourcc, Status: st})
	return st
}

func (d *Driver) getImage(s *surface, r va.Rect, img *image, fourcc va.FourCC) va.Status {
	if st := d.enter(CallGetImage, fourcc); !st.OK() {
		return st
	}
	switch {
	case s == nil:
		return va.StatusErrorInvalidSurface
	case img == nil:
		return va.StatusErrorInvalidImage
	case r != fullRect(s) || img.desc.Width != s.width || img.desc.Height != s.height:
		return va.StatusErrorInvalidParameter
	case img.derivedFrom == s.id:
		return va.StatusSuccess
	}

	if !s.written {
		clear(img.data)
		return va.StatusSuccess
	}
	if s.layout.Format.FourCC != fourcc {
		return va.StatusErrorInvalidImageFormat
	}
	copy(img.data, s.data)
	return va.StatusSuccess
}

// PutImage implements va.Display.
func (d *Driver) PutImage(sid va.SurfaceID, iid va.ImageID, src, dst va.Rect) va.Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	img := d.images[iid]
	var fourcc va.FourCC
	if img != nil {
		fourcc = img.desc.Format.FourCC
	}
	st := d.putImage(d.surfaces[sid], img, src, dst, fourcc)
	d.record(Record{Call: CallPutImage, Surface: sid, Image: iid, FourCC: fourcc, Status: st})
	return st
}

func (d *Driver) putImage(s *surface, img *image, src, dst va.Rect, fourcc va.FourCC) va.Status {
	if st := d.enter(CallPutImage, fourcc); !st.OK() {
		return st
	}
	switch {
	case s == nil:
		return va.StatusErrorInvalidSurface
	case img == nil:
		return va.StatusErrorInvalidImage
	case src != dst || dst != fullRect(s):
		return va.StatusErrorInvalidParameter
	case img.derivedFrom == s.id:
		s.written = true
		return va.StatusSuccess
	}

	var want va.Image
	if !layoutImage(fourcc, s.width, s.height, &want) {
		return va.StatusErrorInvalidImageFormat
	}
	if s.layout.Format.FourCC == fourcc {
		// In place, so images derived earlier keep seeing the contents.
		copy(s.data, img.data)
	} else {
		s.layout = want
		s.data = make([]byte, want.DataSize)
		copy(s.data, img.data)
	}
	s.written = true
	return va.StatusSuccess
}

func fullRect(s *surface) va.Rect {
	return va.Rect{Width: s.width, Height: s.height}
}

// MapBuffer implements va.Display.
func (d *Driver) MapBuffer(buf va.BufferID) ([]byte, va.Status) {
	d.mu.Lock()
	defer d.mu.Unlock()

	img := d.imageForBuffer(buf)
	var fourcc va.FourCC
	if img != nil {
		fourcc = img.desc.Format.FourCC
	}
	st := d.enter(CallMapBuffer, fourcc)
	if st.OK() {
		switch {
		case img == nil:
			st = va.StatusErrorInvalidBuffer
		case img.mapped:
			st = va.StatusErrorSurfaceBusy
		}
	}
	rec := Record{Call: CallMapBuffer, Surface: va.InvalidID, Image: va.InvalidID, FourCC: fourcc, Status: st}
	if img != nil {
		rec.Image = img.desc.ImageID
	}
	d.record(rec)
	if !st.OK() {
		return nil, st
	}
	img.mapped = true
	return img.data, st
}

// UnmapBuffer implements va.Display.
//
// An injected failure is reported but the mapping is still released.
func (d *Driver) UnmapBuffer(buf va.BufferID) va.Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	img := d.imageForBuffer(buf)
	var fourcc va.FourCC
	if img != nil {
		fourcc = img.desc.Format.FourCC
	}
	st := d.enter(CallUnmapBuffer, fourcc)
	switch {
	case img == nil || !img.mapped:
		if st.OK() {
			st = va.StatusErrorInvalidBuffer
		}
	default:
		img.mapped = false
	}
	rec := Record{Call: CallUnmapBuffer, Surface: va.InvalidID, Image: va.InvalidID, FourCC: fourcc, Status: st}
	if img != nil {
		rec.Image = img.desc.ImageID
	}
	d.record(rec)
	return st
}

func (d *Driver) imageForBuffer(buf va.BufferID) *image {
	id, ok := d.buffers[buf]
	if !ok {
		return nil
	}
	return d.images[id]
}
