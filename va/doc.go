// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package va defines the vocabulary shared between the VA-API surface core
// (package vaapi) and the display backends that implement it.
//
// A backend is anything that satisfies [Display]: a cgo binding over libva,
// a remote proxy, or the pure Go driver in va/software. Backends register a
// factory under a name with [Register], and callers select one with [Open]
// or [OpenBest].
//
// The types mirror the libva C structures closely enough that a binding is a
// thin translation layer:
//
//	VAImageFormat -> ImageFormat
//	VAImage       -> Image
//	VAStatus      -> Status
//	VASurfaceID   -> SurfaceID
//
// IDs use [InvalidID] (0xffffffff) as the "no object" sentinel. Zero is a
// valid handle on real drivers and must never be treated as absent.
package va
