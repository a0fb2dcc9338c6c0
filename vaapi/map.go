// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vaapi

import (
	"fmt"

	"github.com/gogpu/hwframe/image"
	"github.com/gogpu/hwframe/va"
)

// mapImage maps the buffer of img and returns its planes as a software
// image. The returned image is only valid until unmapImage.
//
// YV12 stores V before U. Its chroma planes are swapped here so callers
// always see Format420P in Y, U, V order.
func (c *Context) mapImage(img *va.Image) (*image.ImageBuf, error) {
	format := FourCCToFormat(img.Format.FourCC)
	if format == image.FormatNone {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, img.Format.FourCC)
	}
	n := format.NumPlanes()
	if img.NumPlanes != n {
		return nil, fmt.Errorf("%w: %v image has %d planes, want %d",
			ErrMapFailed, img.Format.FourCC, img.NumPlanes, n)
	}

	data, st := c.display.MapBuffer(img.Buf)
	if !c.check(st, "vaMapBuffer()") {
		return nil, fmt.Errorf("%w: vaMapBuffer(): %w", ErrMapFailed, st)
	}

	planes := make([][]byte, n)
	strides := make([]int, n)
	for p := 0; p < n; p++ {
		off := img.Offsets[p]
		if off < 0 || off > len(data) {
			c.unmapImage(img)
			return nil, fmt.Errorf("%w: plane %d offset %d outside %d byte buffer",
				ErrMapFailed, p, off, len(data))
		}
		planes[p] = data[off:]
		strides[p] = img.Pitches[p]
	}
	if img.Format.FourCC == va.FourCCYV12 {
		planes[1], planes[2] = planes[2], planes[1]
		strides[1], strides[2] = strides[2], strides[1]
	}

	view, err := image.FromPlanes(format, img.Width, img.Height, planes, strides)
	if err != nil {
		c.unmapImage(img)
		return nil, fmt.Errorf("%w: %w", ErrMapFailed, err)
	}
	return view, nil
}

// unmapImage releases a mapping made by mapImage.
func (c *Context) unmapImage(img *va.Image) error {
	st := c.display.UnmapBuffer(img.Buf)
	if !c.check(st, "vaUnmapBuffer()") {
		return fmt.Errorf("%w: vaUnmapBuffer(): %w", ErrUnmapFailed, st)
	}
	return nil
}

// withMapping maps img, runs fn on the mapped planes and unmaps on every
// path. fn must not keep the view. A failed unmap does not void what fn
// copied; it is reported separately in unmapErr.
func (c *Context) withMapping(img *va.Image, fn func(view *image.ImageBuf) error) (err, unmapErr error) {
	view, err := c.mapImage(img)
	if err != nil {
		return err, nil
	}
	defer func() {
		unmapErr = c.unmapImage(img)
	}()
	return fn(view), nil
}
