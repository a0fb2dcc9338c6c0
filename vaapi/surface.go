// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vaapi

import (
	"fmt"

	"github.com/gogpu/hwframe/image"
	"github.com/gogpu/hwframe/va"
)

// viewState records what the cached image of a Surface is.
type viewState uint8

const (
	// viewAbsent: no image, both IDs are va.InvalidID.
	viewAbsent viewState = iota

	// viewDerived: the image aliases surface memory. Writes land directly
	// in the surface.
	viewDerived

	// viewIndependent: the image is a separate buffer. Uploads must be
	// committed with PutImage and downloads filled with GetImage.
	viewIndependent
)

func (v viewState) String() string {
	switch v {
	case viewAbsent:
		return "absent"
	case viewDerived:
		return "derived"
	case viewIndependent:
		return "independent"
	default:
		return "unknown"
	}
}

// Surface is a VA surface and its cached image.
//
// A Surface is owned by the image.ImageBuf returned from AllocSurface: it is
// destroyed when the last reference to that buffer is released. Surface is
// not safe for concurrent use.
type Surface struct {
	id       va.SurfaceID
	rtFormat va.RTFormat
	width    int
	height   int
	ctx      *Context

	colorspace image.Colorspace

	view  viewState
	image va.Image
}

// AllocSurface creates a surface and wraps it in a hardware image of format
// image.FormatVAAPI. Releasing the last reference destroys the surface.
func AllocSurface(ctx *Context, rtFormat va.RTFormat, width, height int) (*image.ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, image.ErrInvalidDimensions)
	}
	s, err := createSurface(ctx, rtFormat, width, height)
	if err != nil {
		return nil, err
	}
	buf, err := image.NewHardware(image.FormatVAAPI, width, height, s, s.destroy)
	if err != nil {
		s.destroy()
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	return buf, nil
}

func createSurface(ctx *Context, rtFormat va.RTFormat, width, height int) (*Surface, error) {
	ids := []va.SurfaceID{va.InvalidID}
	st := ctx.display.CreateSurfaces(rtFormat, width, height, ids)
	if !ctx.check(st, "vaCreateSurfaces()") {
		return nil, fmt.Errorf("%w: vaCreateSurfaces(): %w", ErrAllocationFailed, st)
	}

	s := &Surface{
		id:       ids[0],
		rtFormat: rtFormat,
		width:    width,
		height:   height,
		ctx:      ctx,
	}
	s.resetImage()
	return s, nil
}

// SurfaceFromImage returns the surface behind a hardware image.
func SurfaceFromImage(buf *image.ImageBuf) (*Surface, bool) {
	if buf == nil || buf.Format() != image.FormatVAAPI {
		return nil, false
	}
	s, ok := buf.Hardware().(*Surface)
	return s, ok
}

// SurfaceIDFromImage returns the surface ID behind a hardware image, or
// va.InvalidID.
func SurfaceIDFromImage(buf *image.ImageBuf) va.SurfaceID {
	s, ok := SurfaceFromImage(buf)
	if !ok {
		return va.InvalidID
	}
	return s.id
}

// ID returns the surface ID.
func (s *Surface) ID() va.SurfaceID {
	return s.id
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// RTFormat returns the render target format the surface was created with.
func (s *Surface) RTFormat() va.RTFormat {
	return s.rtFormat
}

// Colorspace returns the YUV matrix of the surface contents. Upload takes
// it from the source image and Download tags its result with it.
func (s *Surface) Colorspace() image.Colorspace {
	return s.colorspace
}

// SetColorspace sets the YUV matrix of contents written by something other
// than Upload, such as a decoder.
func (s *Surface) SetColorspace(c image.Colorspace) {
	s.colorspace = c
}

// ColorspaceFlag returns the VA_SRC_* flag for presenting the surface.
func (s *Surface) ColorspaceFlag() uint32 {
	return ColorspaceFlag(s.colorspace)
}

// Derived reports whether the cached image aliases surface memory.
func (s *Surface) Derived() bool {
	return s.view == viewDerived
}

// ImageFourCC returns the FourCC of the cached image, if there is one.
func (s *Surface) ImageFourCC() (va.FourCC, bool) {
	if s.view == viewAbsent {
		return 0, false
	}
	return s.image.Format.FourCC, true
}

// ImageAllocFormat makes sure the cached image uses the image format that
// transfers pixels of the given format.
func (s *Surface) ImageAllocFormat(format image.Format) error {
	f, ok := lookupImageFormat(s.ctx.formats, format)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	return s.ensureImage(f)
}

func (s *Surface) resetImage() {
	s.view = viewAbsent
	s.image = va.Image{
		ImageID: va.InvalidID,
		Buf:     va.InvalidID,
	}
}

// ensureImage makes the cached image use format. An image of the same
// FourCC is reused without touching the display. Otherwise a derived image
// is preferred and a created one is the fallback.
func (s *Surface) ensureImage(format *va.ImageFormat) error {
	if s.view != viewAbsent && s.image.Format.FourCC == format.FourCC {
		return nil
	}
	s.destroyImage()

	d := s.ctx.display
	img := va.Image{ImageID: va.InvalidID, Buf: va.InvalidID}

	// A derived image is only usable if it looks exactly like the request.
	// Anything else, including a failed derive, falls through to CreateImage.
	if st := d.DeriveImage(s.id, &img); st.OK() {
		if img.Format.FourCC == format.FourCC && img.Width == s.width && img.Height == s.height {
			s.image = img
			s.view = viewDerived
			s.ctx.logger().Debug("vaapi: using derived image",
				"surface", s.id, "fourcc", format.FourCC)
			return nil
		}
		s.ctx.check(d.DestroyImage(img.ImageID), "vaDestroyImage()")
		img = va.Image{ImageID: va.InvalidID, Buf: va.InvalidID}
	}

	st := d.CreateImage(format, s.width, s.height, &img)
	if !s.ctx.check(st, "vaCreateImage()") {
		return fmt.Errorf("%w: vaCreateImage(%v): %w", ErrViewCreationFailed, format.FourCC, st)
	}
	s.image = img
	s.view = viewIndependent
	return nil
}

// destroyImage releases the cached image. The surface forgets the image
// even if the display reports a failure.
func (s *Surface) destroyImage() bool {
	ok := true
	if s.image.ImageID != va.InvalidID {
		ok = s.ctx.check(s.ctx.display.DestroyImage(s.image.ImageID), "vaDestroyImage()")
	}
	s.resetImage()
	return ok
}

// destroy releases the cached image, then the surface. The surface is
// released even if releasing the image failed.
func (s *Surface) destroy() {
	if s.ctx.display == nil {
		s.ctx.logger().Warn("vaapi: surface released after context destroy, leaking",
			"surface", s.id, "image", s.image.ImageID)
		s.resetImage()
		s.id = va.InvalidID
		return
	}
	s.destroyImage()
	s.ctx.check(s.ctx.display.DestroySurfaces([]va.SurfaceID{s.id}), "vaDestroySurfaces()")
	s.id = va.InvalidID
}
