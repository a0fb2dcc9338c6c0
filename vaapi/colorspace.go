package vaapi

import (
	"github.com/gogpu/hwframe/image"
	"github.com/gogpu/hwframe/va"
)

// ColorspaceFlag returns the VA_SRC_* flag for a colorspace, or 0 when VA
// has no flag for it.
func ColorspaceFlag(c image.Colorspace) uint32 {
	switch c {
	case image.ColorspaceBT601:
		return va.SrcBT601
	case image.ColorspaceBT709:
		return va.SrcBT709
	case image.ColorspaceSMPTE240M:
		return va.SrcSMPTE240
	default:
		return 0
	}
}
