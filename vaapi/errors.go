// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vaapi

import "errors"

// Errors returned by the surface core. Failures of a backend call wrap both
// the sentinel and the va.Status, so either can be matched with errors.Is.
var (
	// ErrInitializeFailed is returned when the display cannot be initialized.
	ErrInitializeFailed = errors.New("vaapi: display initialization failed")

	// ErrBackendQueryFailed is returned when the image format list cannot be
	// retrieved, or is empty.
	ErrBackendQueryFailed = errors.New("vaapi: image format query failed")

	// ErrAllocationFailed is returned when a surface or destination image
	// cannot be allocated.
	ErrAllocationFailed = errors.New("vaapi: allocation failed")

	// ErrViewCreationFailed is returned when neither deriving nor creating an
	// image for a surface succeeded.
	ErrViewCreationFailed = errors.New("vaapi: cannot create surface image")

	// ErrUnsupportedFormat is returned when a pixel format has no image
	// format the display supports.
	ErrUnsupportedFormat = errors.New("vaapi: unsupported image format")

	// ErrNoCompatibleFormat is returned by Download when no supported image
	// format could read the surface.
	ErrNoCompatibleFormat = errors.New("vaapi: no compatible download format")

	// ErrMapFailed is returned when an image buffer cannot be mapped.
	ErrMapFailed = errors.New("vaapi: map failed")

	// ErrUnmapFailed is returned when an image buffer cannot be unmapped.
	// Data copied before the failure is still valid.
	ErrUnmapFailed = errors.New("vaapi: unmap failed")

	// ErrSyncFailed is returned when waiting for a surface fails.
	ErrSyncFailed = errors.New("vaapi: surface sync failed")

	// ErrCommitFailed is returned when a shadow image cannot be written
	// back into its surface.
	ErrCommitFailed = errors.New("vaapi: commit failed")

	// ErrNotSurface is returned when an image is not backed by a Surface.
	ErrNotSurface = errors.New("vaapi: image is not a surface")
)
