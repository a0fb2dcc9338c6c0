package image

// Colorspace is the YUV matrix a frame was encoded with.
type Colorspace uint8

// Colorspaces.
const (
	ColorspaceAuto Colorspace = iota
	ColorspaceBT601
	ColorspaceBT709
	ColorspaceSMPTE240M
	ColorspaceBT2020
	ColorspaceRGB
)

// String returns a string representation of the colorspace.
func (c Colorspace) String() string {
	switch c {
	case ColorspaceAuto:
		return "auto"
	case ColorspaceBT601:
		return "bt.601"
	case ColorspaceBT709:
		return "bt.709"
	case ColorspaceSMPTE240M:
		return "smpte-240m"
	case ColorspaceBT2020:
		return "bt.2020"
	case ColorspaceRGB:
		return "rgb"
	default:
		return "unknown"
	}
}
