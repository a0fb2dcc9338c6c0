// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package va

// Display is a hardware acceleration session (VADisplay).
//
// Methods follow the libva calling conventions: results are written through
// out parameters and every call reports a Status. Implementations are not
// required to be safe for concurrent use.
type Display interface {
	// Initialize starts the session and reports the API version.
	Initialize() (major, minor int, status Status)

	// Terminate ends the session. The display must not be used afterwards.
	Terminate() Status

	// MaxNumImageFormats is an upper bound for QueryImageFormats.
	MaxNumImageFormats() int

	// QueryImageFormats fills formats and returns the number written,
	// which may be less than len(formats).
	QueryImageFormats(formats []ImageFormat) (int, Status)

	// CreateSurfaces allocates len(surfaces) surfaces of the given size.
	CreateSurfaces(rtFormat RTFormat, width, height int, surfaces []SurfaceID) Status

	// DestroySurfaces releases surfaces.
	DestroySurfaces(surfaces []SurfaceID) Status

	// SyncSurface blocks until all pending work on the surface is done.
	SyncSurface(surface SurfaceID) Status

	// DeriveImage creates an image that aliases the surface memory.
	DeriveImage(surface SurfaceID, image *Image) Status

	// CreateImage allocates an image independent of any surface.
	CreateImage(format *ImageFormat, width, height int, image *Image) Status

	// DestroyImage releases an image and its buffer.
	DestroyImage(image ImageID) Status

	// GetImage copies a surface rectangle into an image.
	GetImage(surface SurfaceID, x, y, width, height int, image ImageID) Status

	// PutImage copies an image rectangle into a surface.
	PutImage(surface SurfaceID, image ImageID, src, dst Rect) Status

	// MapBuffer maps a buffer into CPU memory. The slice is valid until
	// the matching UnmapBuffer.
	MapBuffer(buf BufferID) ([]byte, Status)

	// UnmapBuffer releases a mapping obtained with MapBuffer.
	UnmapBuffer(buf BufferID) Status
}
