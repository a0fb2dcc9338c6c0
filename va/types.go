// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package va

// InvalidID is the sentinel for "no object" in every ID space (VA_INVALID_ID).
const InvalidID = 0xffffffff

// SurfaceID names a GPU frame buffer owned by the backend.
type SurfaceID uint32

// ImageID names a CPU-mappable image owned by the backend.
type ImageID uint32

// BufferID names the data store behind an Image.
type BufferID uint32

// RTFormat selects the internal memory class of a surface (VA_RT_FORMAT_*).
// It is independent of any FourCC the surface is later read or written as.
type RTFormat uint32

// Render target formats.
const (
	RTFormatYUV420   RTFormat = 0x00000001
	RTFormatYUV422   RTFormat = 0x00000002
	RTFormatYUV444   RTFormat = 0x00000004
	RTFormatYUV400   RTFormat = 0x00000010
	RTFormatYUV42010 RTFormat = 0x00000100
	RTFormatRGB32    RTFormat = 0x00020000
)

// Colorspace flags accepted by vaPutSurface (VA_SRC_*).
const (
	SrcBT601    uint32 = 0x00000010
	SrcBT709    uint32 = 0x00000020
	SrcSMPTE240 uint32 = 0x00000040
)

// ByteOrder of packed formats.
type ByteOrder uint32

// Byte orders.
const (
	LSBFirst ByteOrder = 1
	MSBFirst ByteOrder = 2
)

// MaxPlanes is the plane limit of an Image.
const MaxPlanes = 3

// ImageFormat describes one layout the backend can map (VAImageFormat).
type ImageFormat struct {
	FourCC       FourCC
	ByteOrder    ByteOrder
	BitsPerPixel uint32

	// Depth and masks are only meaningful for RGB formats.
	Depth     uint32
	RedMask   uint32
	GreenMask uint32
	BlueMask  uint32
	AlphaMask uint32
}

// Image is a backend image descriptor (VAImage). Its data store is the
// buffer Buf; plane p starts Offsets[p] bytes into the mapped buffer and
// has Pitches[p] bytes per row.
type Image struct {
	ImageID   ImageID
	Format    ImageFormat
	Buf       BufferID
	Width     int
	Height    int
	DataSize  int
	NumPlanes int
	Pitches   [MaxPlanes]int
	Offsets   [MaxPlanes]int
}

// Rect is a pixel rectangle used by GetImage and PutImage.
type Rect struct {
	X, Y          int
	Width, Height int
}
