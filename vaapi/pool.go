// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vaapi

import (
	"github.com/gogpu/hwframe/image"
	"github.com/gogpu/hwframe/va"
)

// SetPoolAllocator makes pool allocate surfaces of the given render target
// format on ctx. The pool only serves image.FormatVAAPI requests and
// recycles the least recently used surface first, so a surface is not
// handed out again while the display may still be reading it.
func SetPoolAllocator(pool *image.Pool, ctx *Context, rtFormat va.RTFormat) {
	pool.SetAllocator(func(format image.Format, width, height int) *image.ImageBuf {
		if format != image.FormatVAAPI {
			return nil
		}
		buf, err := AllocSurface(ctx, rtFormat, width, height)
		if err != nil {
			ctx.logger().Error("vaapi: pool allocation failed",
				"width", width, "height", height, "err", err)
			return nil
		}
		return buf
	})
	pool.SetLRU()
}
