// Package image provides the CPU-side frame buffers exchanged with hardware
// surfaces: a generic pixel format enum with per-plane layout rules, a
// reference counted ImageBuf that is either software or hardware backed,
// plane copy, and a recycling Pool.
package image

import "github.com/gogpu/gputypes"

// MaxPlanes is the maximum number of planes of any format.
const MaxPlanes = 4

// Format represents a generic pixel format, independent of any backend.
type Format uint8

const (
	// FormatNone is the zero value and means "no format".
	FormatNone Format = iota

	// Format420P is planar YUV 4:2:0: Y, then U (Cb), then V (Cr).
	Format420P

	// FormatNV12 is semi-planar YUV 4:2:0: Y, then interleaved UV.
	FormatNV12

	// FormatUYVY is packed YUV 4:2:2 in U Y0 V Y1 byte order.
	FormatUYVY

	// FormatYUYV is packed YUV 4:2:2 in Y0 U Y1 V byte order.
	FormatYUYV

	// FormatRGBA is 32-bit R, G, B, A byte order.
	FormatRGBA

	// FormatBGRA is 32-bit B, G, R, A byte order.
	FormatBGRA

	// FormatVAAPI marks an image whose pixels live in a hardware surface.
	// Such images have no CPU planes.
	FormatVAAPI

	// formatCount is the number of formats (for internal use).
	formatCount
)

// planeInfo describes the sampling of one plane.
type planeInfo struct {
	bytesPerSample int
	shiftX, shiftY uint
}

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Planes is the number of CPU planes (0 for hardware formats).
	Planes int

	// AlignX is the pixel alignment of the width for packed subsampled
	// formats, where one sample pair always covers two pixels.
	AlignX int

	// Hardware indicates that pixel data is not CPU addressable.
	Hardware bool

	// IsRGB indicates an RGB format.
	IsRGB bool

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	planes [MaxPlanes]planeInfo
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	Format420P: {
		Planes: 3,
		AlignX: 1,
		planes: [MaxPlanes]planeInfo{
			{bytesPerSample: 1},
			{bytesPerSample: 1, shiftX: 1, shiftY: 1},
			{bytesPerSample: 1, shiftX: 1, shiftY: 1},
		},
	},
	FormatNV12: {
		Planes: 2,
		AlignX: 1,
		planes: [MaxPlanes]planeInfo{
			{bytesPerSample: 1},
			{bytesPerSample: 2, shiftX: 1, shiftY: 1},
		},
	},
	FormatUYVY: {
		Planes: 1,
		AlignX: 2,
		planes: [MaxPlanes]planeInfo{{bytesPerSample: 2}},
	},
	FormatYUYV: {
		Planes: 1,
		AlignX: 2,
		planes: [MaxPlanes]planeInfo{{bytesPerSample: 2}},
	},
	FormatRGBA: {
		Planes:   1,
		AlignX:   1,
		IsRGB:    true,
		HasAlpha: true,
		planes:   [MaxPlanes]planeInfo{{bytesPerSample: 4}},
	},
	FormatBGRA: {
		Planes:   1,
		AlignX:   1,
		IsRGB:    true,
		HasAlpha: true,
		planes:   [MaxPlanes]planeInfo{{bytesPerSample: 4}},
	},
	FormatVAAPI: {
		Hardware: true,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid returns true if the format is a known format other than FormatNone.
func (f Format) IsValid() bool {
	return f > FormatNone && f < formatCount
}

// IsHardware returns true if images of this format carry a hardware surface.
func (f Format) IsHardware() bool {
	return f.Info().Hardware
}

// NumPlanes returns the number of CPU planes.
func (f Format) NumPlanes() int {
	return f.Info().Planes
}

// PlaneRowBytes returns the number of meaningful bytes in one row of plane p
// for an image of the given width. Returns 0 for planes the format lacks.
func (f Format) PlaneRowBytes(p, width int) int {
	info := f.Info()
	if p < 0 || p >= info.Planes {
		return 0
	}
	pl := info.planes[p]
	w := alignUp(width, info.AlignX)
	return ceilShift(w, pl.shiftX) * pl.bytesPerSample
}

// PlaneHeight returns the number of rows of plane p for an image of the
// given height. Returns 0 for planes the format lacks.
func (f Format) PlaneHeight(p, height int) int {
	info := f.Info()
	if p < 0 || p >= info.Planes {
		return 0
	}
	return ceilShift(height, info.planes[p].shiftY)
}

// ImageBytes returns the total number of bytes of a tightly packed image.
func (f Format) ImageBytes(width, height int) int {
	n := 0
	for p := 0; p < f.NumPlanes(); p++ {
		n += f.PlaneRowBytes(p, width) * f.PlaneHeight(p, height)
	}
	return n
}

// TextureFormat returns the WebGPU texture format with the same memory
// layout, for handing packed RGB frames to a GPU renderer. YUV and hardware
// formats have no direct equivalent and return TextureFormatUndefined.
func (f Format) TextureFormat() gputypes.TextureFormat {
	switch f {
	case FormatRGBA:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatBGRA:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case Format420P:
		return "yuv420p"
	case FormatNV12:
		return "nv12"
	case FormatUYVY:
		return "uyvy422"
	case FormatYUYV:
		return "yuyv422"
	case FormatRGBA:
		return "rgba"
	case FormatBGRA:
		return "bgra"
	case FormatVAAPI:
		return "vaapi"
	default:
		return "unknown"
	}
}

// ParseFormat returns the format whose String matches name.
func ParseFormat(name string) (Format, bool) {
	for f := Format420P; f < formatCount; f++ {
		if f.String() == name {
			return f, true
		}
	}
	return FormatNone, false
}

func alignUp(v, a int) int {
	if a <= 1 {
		return v
	}
	return (v + a - 1) / a * a
}

func ceilShift(v int, s uint) int {
	return (v + (1 << s) - 1) >> s
}
