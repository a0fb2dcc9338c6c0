// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package va

import (
	"errors"
	"slices"

	"github.com/gogpu/gpucontext"
)

// ErrDisplayNotAvailable is returned when no registered backend matches.
var ErrDisplayNotAvailable = errors.New("va: display not available")

// Backend name constants.
const (
	// DisplayDRM is a render node backend (/dev/dri/renderD*).
	DisplayDRM = "drm"
	// DisplayX11 is an X11 backend.
	DisplayX11 = "x11"
	// DisplayWayland is a Wayland backend.
	DisplayWayland = "wayland"
	// DisplaySoftware is the pure Go driver in va/software.
	DisplaySoftware = "software"
)

// Hardware backends are preferred, the software driver is the fallback.
var displays = gpucontext.NewRegistry[Display](
	gpucontext.WithPriority(DisplayDRM, DisplayWayland, DisplayX11, DisplaySoftware),
)

// Register registers a display factory with the given name.
// This is typically called from init() functions in backend packages.
// If a display with the same name is already registered, it is replaced.
func Register(name string, factory func() Display) {
	displays.Register(name, factory)
}

// Unregister removes a display from the registry.
func Unregister(name string) {
	displays.Unregister(name)
}

// Available returns the registered display names, sorted.
func Available() []string {
	names := displays.Available()
	slices.Sort(names)
	return names
}

// Open returns a new display from the named factory.
func Open(name string) (Display, error) {
	if !displays.Has(name) {
		return nil, ErrDisplayNotAvailable
	}
	d := displays.Get(name)
	if d == nil {
		return nil, ErrDisplayNotAvailable
	}
	return d, nil
}

// OpenBest returns a display from the highest priority registered factory
// together with its name.
func OpenBest() (Display, string, error) {
	name := displays.BestName()
	if name == "" {
		return nil, "", ErrDisplayNotAvailable
	}
	d, err := Open(name)
	if err != nil {
		return nil, "", err
	}
	return d, name, nil
}
