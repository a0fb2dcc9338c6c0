// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package software implements va.Display in pure Go.
//
// The driver keeps surfaces and images in ordinary byte slices laid out the
// way a real VA driver lays them out (pitches padded to 16 bytes, planes at
// offsets inside one buffer). It is used as the fallback display when no
// hardware backend is registered, and by tests that need to observe or
// sabotage backend behavior:
//
//	d := software.New(
//	    software.WithDeriveMode(software.DeriveMismatch),
//	    software.WithFormatFailure(software.CallGetImage, va.FourCCYV12, va.StatusErrorOperationFailed),
//	)
//	...
//	for _, rec := range d.Calls() {
//	    fmt.Println(rec.Call, rec.FourCC, rec.Status)
//	}
//
// Surfaces hold a single layout at a time. Reading a surface with GetImage
// in a FourCC other than the one it was last written in fails with
// StatusErrorInvalidImageFormat; the driver has no color converter.
// Surfaces that were never written read back as zeros in any layout.
//
// Importing the package registers the driver under va.DisplaySoftware.
package software
