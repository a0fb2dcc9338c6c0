package image

import (
	"image"

	"golang.org/x/image/draw"
)

// ToImage copies the pixels into a standard library image: *image.RGBA for
// RGB formats and *image.YCbCr for YUV formats.
func (b *ImageBuf) ToImage() (image.Image, error) {
	if b.Kind() != KindSoftware {
		return nil, ErrHardwareImage
	}
	r := image.Rect(0, 0, b.width, b.height)

	switch b.format {
	case FormatRGBA:
		dst := image.NewRGBA(r)
		for y := 0; y < b.height; y++ {
			copy(dst.Pix[y*dst.Stride:], b.Row(0, y))
		}
		return dst, nil

	case FormatBGRA:
		dst := image.NewRGBA(r)
		for y := 0; y < b.height; y++ {
			src := b.Row(0, y)
			row := dst.Pix[y*dst.Stride:]
			for x := 0; x+3 < len(src); x += 4 {
				row[x+0] = src[x+2]
				row[x+1] = src[x+1]
				row[x+2] = src[x+0]
				row[x+3] = src[x+3]
			}
		}
		return dst, nil

	case Format420P:
		dst := image.NewYCbCr(r, image.YCbCrSubsampleRatio420)
		for y := 0; y < b.height; y++ {
			copy(dst.Y[y*dst.YStride:], b.Row(0, y))
		}
		for y := 0; y < b.format.PlaneHeight(1, b.height); y++ {
			copy(dst.Cb[y*dst.CStride:], b.Row(1, y))
			copy(dst.Cr[y*dst.CStride:], b.Row(2, y))
		}
		return dst, nil

	case FormatNV12:
		dst := image.NewYCbCr(r, image.YCbCrSubsampleRatio420)
		for y := 0; y < b.height; y++ {
			copy(dst.Y[y*dst.YStride:], b.Row(0, y))
		}
		for y := 0; y < b.format.PlaneHeight(1, b.height); y++ {
			uv := b.Row(1, y)
			for x := 0; 2*x+1 < len(uv); x++ {
				dst.Cb[y*dst.CStride+x] = uv[2*x]
				dst.Cr[y*dst.CStride+x] = uv[2*x+1]
			}
		}
		return dst, nil

	case FormatYUYV, FormatUYVY:
		// Byte offsets of Y0, U, Y1, V inside each 4-byte pair.
		y0, u, y1, v := 0, 1, 2, 3
		if b.format == FormatUYVY {
			y0, u, y1, v = 1, 0, 3, 2
		}
		dst := image.NewYCbCr(r, image.YCbCrSubsampleRatio422)
		for y := 0; y < b.height; y++ {
			row := b.Row(0, y)
			for x := 0; x < b.width; x += 2 {
				pair := row[x*2 : x*2+4]
				dst.Y[y*dst.YStride+x] = pair[y0]
				if x+1 < b.width {
					dst.Y[y*dst.YStride+x+1] = pair[y1]
				}
				dst.Cb[y*dst.CStride+x/2] = pair[u]
				dst.Cr[y*dst.CStride+x/2] = pair[v]
			}
		}
		return dst, nil

	default:
		return nil, ErrInvalidFormat
	}
}

// ToRGBA converts the image to *image.RGBA.
func (b *ImageBuf) ToRGBA() (*image.RGBA, error) {
	src, err := b.ToImage()
	if err != nil {
		return nil, err
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba, nil
	}
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
	return dst, nil
}
