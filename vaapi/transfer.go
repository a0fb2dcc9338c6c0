// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vaapi

import (
	"errors"
	"fmt"

	"github.com/gogpu/hwframe/image"
	"github.com/gogpu/hwframe/va"
)

// Upload copies src into the surface.
//
// src must be a software image of the surface size in a format the display
// supports. When the cached image is not derived, its contents are
// committed to the surface with PutImage. A failed commit leaves the
// surface contents undefined.
//
// An error wrapping ErrUnmapFailed does not mean the upload was lost. The
// surface takes the colorspace of src once the upload lands.
func (s *Surface) Upload(src *image.ImageBuf) error {
	if src.Kind() != image.KindSoftware {
		return fmt.Errorf("vaapi: upload: %w", image.ErrHardwareImage)
	}
	if src.Width() != s.width || src.Height() != s.height {
		return fmt.Errorf("vaapi: upload %dx%d to %dx%d surface: %w",
			src.Width(), src.Height(), s.width, s.height, image.ErrSizeMismatch)
	}
	format, ok := lookupImageFormat(s.ctx.formats, src.Format())
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, src.Format())
	}
	if err := s.ensureImage(format); err != nil {
		return err
	}

	err, unmapErr := s.ctx.withMapping(&s.image, func(view *image.ImageBuf) error {
		return image.Copy(view, src)
	})
	if err != nil {
		return errors.Join(err, unmapErr)
	}

	if s.view != viewDerived {
		r := va.Rect{Width: s.width, Height: s.height}
		st := s.ctx.display.PutImage(s.id, s.image.ImageID, r, r)
		if !s.ctx.check(st, "vaPutImage()") {
			return errors.Join(fmt.Errorf("%w: vaPutImage(): %w", ErrCommitFailed, st), unmapErr)
		}
	}
	s.colorspace = src.Colorspace()
	return unmapErr
}

// Download waits for the surface and copies it into a new software image.
//
// The image format of a previous transfer is tried first. After that every
// supported image format is tried in the order the display reported them,
// and the first one that works is used. The destination comes from pool
// when it is not nil. The result is tagged with the surface colorspace.
//
// Download can return both an image and an error wrapping ErrUnmapFailed.
// The image is complete in that case and owned by the caller.
func (s *Surface) Download(pool *image.Pool) (*image.ImageBuf, error) {
	st := s.ctx.display.SyncSurface(s.id)
	if !s.ctx.check(st, "vaSyncSurface()") {
		return nil, fmt.Errorf("%w: %w", ErrSyncFailed, st)
	}

	var cached va.FourCC
	if s.view != viewAbsent {
		format := s.image.Format
		cached = format.FourCC
		dst, err := s.downloadFormat(&format, pool)
		if dst != nil {
			return dst, err
		}
		s.ctx.logger().Debug("vaapi: download with cached format failed",
			"surface", s.id, "fourcc", cached, "err", err)
	}

	// cached was already tried above and is not tried again.
	for i := range s.ctx.formats {
		format := &s.ctx.formats[i]
		if cached != 0 && format.FourCC == cached {
			continue
		}
		dst, err := s.downloadFormat(format, pool)
		if dst != nil {
			return dst, err
		}
		s.ctx.logger().Debug("vaapi: download format failed",
			"surface", s.id, "fourcc", format.FourCC, "err", err)
	}
	return nil, fmt.Errorf("%w: %dx%d surface %d", ErrNoCompatibleFormat, s.width, s.height, s.id)
}

// downloadFormat tries to read the surface in one image format. A nil
// image means the format did not work.
func (s *Surface) downloadFormat(format *va.ImageFormat, pool *image.Pool) (*image.ImageBuf, error) {
	if FourCCToFormat(format.FourCC) == image.FormatNone {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format.FourCC)
	}
	if err := s.ensureImage(format); err != nil {
		return nil, err
	}
	if s.view != viewDerived {
		st := s.ctx.display.GetImage(s.id, 0, 0, s.width, s.height, s.image.ImageID)
		if !st.OK() {
			return nil, fmt.Errorf("vaapi: vaGetImage(%v): %w", format.FourCC, st)
		}
	}

	var dst *image.ImageBuf
	err, unmapErr := s.ctx.withMapping(&s.image, func(view *image.ImageBuf) error {
		dst = newImage(pool, view.Format(), s.width, s.height)
		if dst == nil {
			return fmt.Errorf("%w: %v %dx%d destination", ErrAllocationFailed, view.Format(), s.width, s.height)
		}
		if err := image.Copy(dst, view); err != nil {
			dst.Release()
			dst = nil
			return err
		}
		return nil
	})
	if err != nil {
		return nil, errors.Join(err, unmapErr)
	}
	dst.SetColorspace(s.colorspace)
	return dst, unmapErr
}

func newImage(pool *image.Pool, format image.Format, width, height int) *image.ImageBuf {
	if pool != nil {
		return pool.Get(format, width, height)
	}
	buf, err := image.NewImageBuf(width, height, format)
	if err != nil {
		return nil
	}
	return buf
}

// UploadImage copies src into the surface behind dst.
func UploadImage(dst, src *image.ImageBuf) error {
	s, ok := SurfaceFromImage(dst)
	if !ok {
		return ErrNotSurface
	}
	return s.Upload(src)
}

// DownloadImage copies the surface behind src into a new software image,
// taken from pool when it is not nil.
func DownloadImage(src *image.ImageBuf, pool *image.Pool) (*image.ImageBuf, error) {
	s, ok := SurfaceFromImage(src)
	if !ok {
		return nil, ErrNotSurface
	}
	return s.Download(pool)
}
