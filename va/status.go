// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package va

import "fmt"

// Status is a backend call result (VAStatus). StatusSuccess is the only
// non-error value.
//
// Status implements error so a failed status can be wrapped directly:
//
//	fmt.Errorf("%w: vaCreateSurfaces(): %w", ErrAllocationFailed, status)
type Status int32

// Status codes, numbered as in va.h.
const (
	StatusSuccess                     Status = 0x00
	StatusErrorOperationFailed        Status = 0x01
	StatusErrorAllocationFailed       Status = 0x02
	StatusErrorInvalidDisplay         Status = 0x03
	StatusErrorInvalidConfig          Status = 0x04
	StatusErrorInvalidContext         Status = 0x05
	StatusErrorInvalidSurface         Status = 0x06
	StatusErrorInvalidBuffer          Status = 0x07
	StatusErrorInvalidImage           Status = 0x08
	StatusErrorInvalidSubpicture      Status = 0x09
	StatusErrorAttrNotSupported       Status = 0x0a
	StatusErrorMaxNumExceeded         Status = 0x0b
	StatusErrorUnsupportedProfile     Status = 0x0c
	StatusErrorUnsupportedEntrypoint  Status = 0x0d
	StatusErrorUnsupportedRTFormat    Status = 0x0e
	StatusErrorUnsupportedBuffertype  Status = 0x0f
	StatusErrorSurfaceBusy            Status = 0x10
	StatusErrorFlagNotSupported       Status = 0x11
	StatusErrorInvalidParameter       Status = 0x12
	StatusErrorResolutionNotSupported Status = 0x13
	StatusErrorUnimplemented          Status = 0x14
	StatusErrorSurfaceInDisplaying    Status = 0x15
	StatusErrorInvalidImageFormat     Status = 0x16
	StatusErrorDecodingError          Status = 0x17
	StatusErrorEncodingError          Status = 0x18
	StatusErrorUnknown                Status = -1
)

var statusText = map[Status]string{
	StatusSuccess:                     "success (no error)",
	StatusErrorOperationFailed:        "operation failed",
	StatusErrorAllocationFailed:       "resource allocation failed",
	StatusErrorInvalidDisplay:         "invalid VADisplay",
	StatusErrorInvalidConfig:          "invalid VAConfigID",
	StatusErrorInvalidContext:         "invalid VAContextID",
	StatusErrorInvalidSurface:         "invalid VASurfaceID",
	StatusErrorInvalidBuffer:          "invalid VABufferID",
	StatusErrorInvalidImage:           "invalid VAImageID",
	StatusErrorInvalidSubpicture:      "invalid VASubpictureID",
	StatusErrorAttrNotSupported:       "attribute not supported",
	StatusErrorMaxNumExceeded:         "list argument exceeds maximum number",
	StatusErrorUnsupportedProfile:     "the requested VAProfile is not supported",
	StatusErrorUnsupportedEntrypoint:  "the requested VAEntryPoint is not supported",
	StatusErrorUnsupportedRTFormat:    "the requested RT Format is not supported",
	StatusErrorUnsupportedBuffertype:  "the requested VABufferType is not supported",
	StatusErrorSurfaceBusy:            "surface is in use",
	StatusErrorFlagNotSupported:       "flag not supported",
	StatusErrorInvalidParameter:       "invalid parameter",
	StatusErrorResolutionNotSupported: "resolution not supported",
	StatusErrorUnimplemented:          "the requested function is not implemented",
	StatusErrorSurfaceInDisplaying:    "surface is in displaying (may by overlay)",
	StatusErrorInvalidImageFormat:     "invalid VAImageFormat",
	StatusErrorDecodingError:          "internal decoding error",
	StatusErrorEncodingError:          "internal encoding error",
	StatusErrorUnknown:                "unknown libva error",
}

// Error returns the libva description of the status (vaErrorStr).
func (s Status) Error() string {
	if text, ok := statusText[s]; ok {
		return text
	}
	return fmt.Sprintf("unknown libva error 0x%x", int32(s))
}

// OK reports whether s is StatusSuccess.
func (s Status) OK() bool {
	return s == StatusSuccess
}

// Err returns nil for StatusSuccess and s otherwise.
func (s Status) Err() error {
	if s == StatusSuccess {
		return nil
	}
	return s
}
