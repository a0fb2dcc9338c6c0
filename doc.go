// Package hwframe moves video frames between VA-API surfaces and CPU memory.
//
// # Overview
//
// hwframe is the surface management layer of a hardware video pipeline. It
// creates decode surfaces, discovers which pixel layouts the driver can map,
// and copies frames in and out of GPU memory. Decoding, bitstream parsing
// and presentation are left to the caller.
//
// # Quick Start
//
//	import "github.com/gogpu/hwframe"
//
//	s, err := hwframe.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	frame, err := s.NewSurface(1920, 1080)
//	...
//	defer frame.Release()
//
//	if err := s.Upload(frame, cpuImage); err != nil { ... }
//	out, err := s.Download(frame)
//
// # Packages
//
// The module is split by concern:
//
//   - va: the backend vocabulary (FourCC, Status, Display) and registry
//   - va/software: a pure Go display, used as fallback and in tests
//   - image: pixel formats, reference counted frames and pools
//   - vaapi: surfaces, format negotiation and transfers
//
// Session bundles a vaapi.Context with a surface pool and a download pool
// for the common case. Programs that need finer control use vaapi directly.
//
// # Backends
//
// Backends register themselves with va.Register from an init function.
// Open picks the highest priority one (DRM, then Wayland, then X11) and
// falls back to the software display, which is always linked in.
package hwframe

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
