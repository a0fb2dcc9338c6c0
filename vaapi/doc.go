// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package vaapi manages VA-API video surfaces and moves pixels between them
// and CPU images.
//
// # Context
//
// A Context wraps an initialized va.Display and the list of image formats
// the display supports. The list is queried once, in Initialize, and an
// empty list is an error:
//
//	ctx, err := vaapi.OpenBest()
//	if err != nil {
//	    return err
//	}
//	defer ctx.Destroy()
//
// # Surfaces
//
// AllocSurface returns an image.ImageBuf of format image.FormatVAAPI. Its
// Hardware method returns the *Surface, and releasing the last reference
// destroys the surface:
//
//	buf, err := vaapi.AllocSurface(ctx, va.RTFormatYUV420, 1920, 1080)
//	...
//	defer buf.Release()
//
// To reuse surfaces across frames, install the allocator on a pool:
//
//	pool := image.NewPool(8)
//	vaapi.SetPoolAllocator(pool, ctx, va.RTFormatYUV420)
//	frame := pool.Get(image.FormatVAAPI, 1920, 1080)
//
// # Transfers
//
// UploadImage and DownloadImage copy through a CPU-mappable VA image that
// the surface caches between calls. The image is derived from the surface
// when the driver allows it, which makes the copy land directly in surface
// memory. Otherwise an image is created and uploads are committed with
// vaPutImage, downloads filled with vaGetImage.
//
// Download does not need to know the surface layout in advance. It tries
// the layout of the last transfer and then every supported image format in
// display order.
//
// # FourCC mapping
//
// FourCCToFormat and FormatToFourCC translate between VA FourCCs and
// image.Format. Several FourCCs share a pixel format (YV12, I420 and IYUV
// are all Format420P), so FormatToFourCC returns the first table entry.
// Transfers pick among the aliases the display actually advertises.
//
// # Concurrency
//
// A Surface must only be used by one goroutine at a time. The format list
// of a Context is immutable and may be read concurrently.
package vaapi
