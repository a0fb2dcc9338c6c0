package image

import (
	"image"
	"image/color"
	"testing"
)

func TestToImageRGBAAndBGRA(t *testing.T) {
	rgba, _ := NewImageBuf(2, 1, FormatRGBA)
	copy(rgba.Plane(0), []byte{1, 2, 3, 4, 5, 6, 7, 8})
	bgra, _ := NewImageBuf(2, 1, FormatBGRA)
	copy(bgra.Plane(0), []byte{3, 2, 1, 4, 7, 6, 5, 8})

	for _, b := range []*ImageBuf{rgba, bgra} {
		got, err := b.ToRGBA()
		if err != nil {
			t.Fatalf("%v: ToRGBA() error = %v", b.Format(), err)
		}
		if c := got.RGBAAt(1, 0); c != (color.RGBA{5, 6, 7, 8}) {
			t.Errorf("%v: pixel(1,0) = %v, want {5 6 7 8}", b.Format(), c)
		}
	}
}

func TestToImageYUVFormatsAgree(t *testing.T) {
	const w, h = 4, 2
	yv := []byte{10, 20, 30, 40, 50, 60, 70, 80}
	cb := []byte{100, 110}
	cr := []byte{200, 210}

	p420, _ := NewImageBuf(w, h, Format420P)
	copy(p420.Plane(0), yv)
	copy(p420.Plane(1), cb)
	copy(p420.Plane(2), cr)

	nv12, _ := NewImageBuf(w, h, FormatNV12)
	copy(nv12.Plane(0), yv)
	copy(nv12.Plane(1), []byte{100, 200, 110, 210})

	for _, b := range []*ImageBuf{p420, nv12} {
		img, err := b.ToImage()
		if err != nil {
			t.Fatalf("%v: ToImage() error = %v", b.Format(), err)
		}
		ycc, ok := img.(*image.YCbCr)
		if !ok {
			t.Fatalf("%v: ToImage() returned %T", b.Format(), img)
		}
		if got := ycc.YCbCrAt(3, 1); got != (color.YCbCr{80, 110, 210}) {
			t.Errorf("%v: YCbCrAt(3,1) = %v", b.Format(), got)
		}
	}
}

func TestToImagePacked422(t *testing.T) {
	yuyv, _ := NewImageBuf(2, 1, FormatYUYV)
	copy(yuyv.Plane(0), []byte{10, 100, 20, 200})
	uyvy, _ := NewImageBuf(2, 1, FormatUYVY)
	copy(uyvy.Plane(0), []byte{100, 10, 200, 20})

	for _, b := range []*ImageBuf{yuyv, uyvy} {
		img, err := b.ToImage()
		if err != nil {
			t.Fatalf("%v: ToImage() error = %v", b.Format(), err)
		}
		ycc := img.(*image.YCbCr)
		if got := ycc.YCbCrAt(1, 0); got != (color.YCbCr{20, 100, 200}) {
			t.Errorf("%v: YCbCrAt(1,0) = %v", b.Format(), got)
		}
	}
}

func TestToImageHardware(t *testing.T) {
	hw, _ := NewHardware(FormatVAAPI, 4, 4, &fakeSurface{4, 4}, nil)
	if _, err := hw.ToImage(); err != ErrHardwareImage {
		t.Errorf("ToImage() error = %v, want ErrHardwareImage", err)
	}
}

func TestToRGBAFromYCbCr(t *testing.T) {
	b, _ := NewImageBuf(2, 2, Format420P)
	for i := range b.Plane(0) {
		b.Plane(0)[i] = 255
	}
	b.Plane(1)[0] = 128
	b.Plane(2)[0] = 128

	rgba, err := b.ToRGBA()
	if err != nil {
		t.Fatalf("ToRGBA() error = %v", err)
	}
	c := rgba.RGBAAt(0, 0)
	if c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("white YUV converted to %v", c)
	}
}
