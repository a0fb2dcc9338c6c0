package software

import "github.com/gogpu/hwframe/va"

// pitchAlign is the row alignment of every plane, in bytes.
const pitchAlign = 16

// descriptors are the VAImageFormat entries the driver can advertise.
var descriptors = map[va.FourCC]va.ImageFormat{
	va.FourCCNV12: {FourCC: va.FourCCNV12, ByteOrder: va.LSBFirst, BitsPerPixel: 12},
	va.FourCCYV12: {FourCC: va.FourCCYV12, ByteOrder: va.LSBFirst, BitsPerPixel: 12},
	va.FourCCI420: {FourCC: va.FourCCI420, ByteOrder: va.LSBFirst, BitsPerPixel: 12},
	va.FourCCIYUV: {FourCC: va.FourCCIYUV, ByteOrder: va.LSBFirst, BitsPerPixel: 12},
	va.FourCCYUY2: {FourCC: va.FourCCYUY2, ByteOrder: va.LSBFirst, BitsPerPixel: 16},
	va.FourCCUYVY: {FourCC: va.FourCCUYVY, ByteOrder: va.LSBFirst, BitsPerPixel: 16},
	va.FourCCP010: {FourCC: va.FourCCP010, ByteOrder: va.LSBFirst, BitsPerPixel: 24},
	va.FourCCRGBA: {FourCC: va.FourCCRGBA, ByteOrder: va.LSBFirst, BitsPerPixel: 32, Depth: 32,
		RedMask: 0x000000ff, GreenMask: 0x0000ff00, BlueMask: 0x00ff0000, AlphaMask: 0xff000000},
	va.FourCCRGBX: {FourCC: va.FourCCRGBX, ByteOrder: va.LSBFirst, BitsPerPixel: 32, Depth: 24,
		RedMask: 0x000000ff, GreenMask: 0x0000ff00, BlueMask: 0x00ff0000},
	va.FourCCBGRA: {FourCC: va.FourCCBGRA, ByteOrder: va.LSBFirst, BitsPerPixel: 32, Depth: 32,
		RedMask: 0x00ff0000, GreenMask: 0x0000ff00, BlueMask: 0x000000ff, AlphaMask: 0xff000000},
	va.FourCCBGRX: {FourCC: va.FourCCBGRX, ByteOrder: va.LSBFirst, BitsPerPixel: 32, Depth: 24,
		RedMask: 0x00ff0000, GreenMask: 0x0000ff00, BlueMask: 0x000000ff},
	va.FourCCARGB: {FourCC: va.FourCCARGB, ByteOrder: va.LSBFirst, BitsPerPixel: 32, Depth: 32,
		RedMask: 0x0000ff00, GreenMask: 0x00ff0000, BlueMask: 0xff000000, AlphaMask: 0x000000ff},
}

// DefaultFormats is the advertised format order of a New driver.
var DefaultFormats = []va.FourCC{
	va.FourCCNV12,
	va.FourCCYV12,
	va.FourCCI420,
	va.FourCCYUY2,
	va.FourCCUYVY,
	va.FourCCP010,
	va.FourCCRGBA,
	va.FourCCRGBX,
	va.FourCCBGRA,
	va.FourCCBGRX,
	va.FourCCARGB,
}

// nativeFourCC is the layout a freshly created surface is stored in.
func nativeFourCC(rt va.RTFormat) (va.FourCC, bool) {
	switch rt {
	case va.RTFormatYUV420:
		return va.FourCCNV12, true
	case va.RTFormatYUV422:
		return va.FourCCYUY2, true
	case va.RTFormatYUV42010:
		return va.FourCCP010, true
	case va.RTFormatRGB32:
		return va.FourCCBGRX, true
	default:
		return 0, false
	}
}

// layoutImage fills the plane table of img for the given layout and size.
func layoutImage(fourcc va.FourCC, width, height int, img *va.Image) bool {
	chromaH := (height + 1) / 2

	*img = va.Image{
		ImageID: va.InvalidID,
		Buf:     va.InvalidID,
		Width:   width,
		Height:  height,
	}
	switch fourcc {
	case va.FourCCNV12, va.FourCCP010:
		bpp := 1
		if fourcc == va.FourCCP010 {
			bpp = 2
		}
		pitch := align(width*bpp, pitchAlign)
		img.NumPlanes = 2
		img.Pitches = [va.MaxPlanes]int{pitch, pitch}
		img.Offsets = [va.MaxPlanes]int{0, pitch * height}
		img.DataSize = pitch*height + pitch*chromaH

	case va.FourCCYV12, va.FourCCI420, va.FourCCIYUV:
		luma := align(width, pitchAlign)
		chroma := align((width+1)/2, pitchAlign)
		img.NumPlanes = 3
		img.Pitches = [va.MaxPlanes]int{luma, chroma, chroma}
		img.Offsets = [va.MaxPlanes]int{0, luma * height, luma*height + chroma*chromaH}
		img.DataSize = luma*height + 2*chroma*chromaH

	case va.FourCCYUY2, va.FourCCUYVY:
		pitch := align(align(width, 2)*2, pitchAlign)
		img.NumPlanes = 1
		img.Pitches[0] = pitch
		img.DataSize = pitch * height

	case va.FourCCRGBA, va.FourCCRGBX, va.FourCCBGRA, va.FourCCBGRX, va.FourCCARGB:
		pitch := align(width*4, pitchAlign)
		img.NumPlanes = 1
		img.Pitches[0] = pitch
		img.DataSize = pitch * height

	default:
		return false
	}
	img.Format = descriptors[fourcc]
	return true
}

func align(v, a int) int {
	return (v + a - 1) / a * a
}
