// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vaapi

import (
	"github.com/gogpu/hwframe/image"
	"github.com/gogpu/hwframe/va"
)

// formatEntry pairs a VA FourCC with the pixel format it is mapped as.
type formatEntry struct {
	fourcc va.FourCC
	format image.Format
}

// formatTable is the only FourCC translation table. Several FourCCs fold
// onto one pixel format, so entries are ordered by preference: the first
// entry of a pixel format is the one FormatToFourCC returns.
var formatTable = [...]formatEntry{
	{va.FourCCYV12, image.Format420P},
	{va.FourCCI420, image.Format420P},
	{va.FourCCIYUV, image.Format420P},
	{va.FourCCNV12, image.FormatNV12},
	{va.FourCCUYVY, image.FormatUYVY},
	{va.FourCCYUY2, image.FormatYUYV},
	// RGBX and BGRX have no alpha, but are mapped to the alpha formats
	// since there is no padding-only variant.
	{va.FourCCRGBA, image.FormatRGBA},
	{va.FourCCRGBX, image.FormatRGBA},
	{va.FourCCBGRA, image.FormatBGRA},
	{va.FourCCBGRX, image.FormatBGRA},
}

// FourCCToFormat returns the pixel format a FourCC is mapped as, or
// image.FormatNone if it has none. FormatNone means "do not transfer in
// this layout" and is not an error.
func FourCCToFormat(fourcc va.FourCC) image.Format {
	for _, e := range formatTable {
		if e.fourcc == fourcc {
			return e.format
		}
	}
	return image.FormatNone
}

// FormatToFourCC returns the preferred FourCC of a pixel format, or 0.
//
// The mapping is not bijective. Format420P, FormatRGBA and FormatBGRA each
// have more than one FourCC and only the first table entry is returned,
// whether or not the display supports it. Use Context.ImageFormat to find
// a FourCC the display actually advertises.
func FormatToFourCC(format image.Format) va.FourCC {
	for _, e := range formatTable {
		if e.format == format {
			return e.fourcc
		}
	}
	return 0
}

// lookupImageFormat returns the advertised image format used to transfer
// pixels of the given format. Candidate FourCCs are tried in table order,
// so the preferred FourCC wins when the display supports several.
func lookupImageFormat(formats []va.ImageFormat, format image.Format) (*va.ImageFormat, bool) {
	if format == image.FormatNone {
		return nil, false
	}
	for _, e := range formatTable {
		if e.format != format {
			continue
		}
		for i := range formats {
			if formats[i].FourCC == e.fourcc {
				return &formats[i], true
			}
		}
	}
	return nil, false
}
