package vaapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/hwframe/image"
	"github.com/gogpu/hwframe/va"
)

func TestFourCCToFormat(t *testing.T) {
	tests := []struct {
		fourcc va.FourCC
		want   image.Format
	}{
		{va.FourCCYV12, image.Format420P},
		{va.FourCCI420, image.Format420P},
		{va.FourCCIYUV, image.Format420P},
		{va.FourCCNV12, image.FormatNV12},
		{va.FourCCUYVY, image.FormatUYVY},
		{va.FourCCYUY2, image.FormatYUYV},
		{va.FourCCRGBA, image.FormatRGBA},
		{va.FourCCRGBX, image.FormatRGBA},
		{va.FourCCBGRA, image.FormatBGRA},
		{va.FourCCBGRX, image.FormatBGRA},
		{va.FourCCARGB, image.FormatNone},
		{va.FourCCP010, image.FormatNone},
		{0, image.FormatNone},
	}
	for _, tt := range tests {
		t.Run(tt.fourcc.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, FourCCToFormat(tt.fourcc))
		})
	}
}

func TestFormatToFourCC(t *testing.T) {
	tests := []struct {
		format image.Format
		want   va.FourCC
	}{
		{image.Format420P, va.FourCCYV12},
		{image.FormatNV12, va.FourCCNV12},
		{image.FormatUYVY, va.FourCCUYVY},
		{image.FormatYUYV, va.FourCCYUY2},
		{image.FormatRGBA, va.FourCCRGBA},
		{image.FormatBGRA, va.FourCCBGRA},
		{image.FormatVAAPI, 0},
		{image.FormatNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatToFourCC(tt.format))
		})
	}
}

func TestFormatTable_RoundTripsPreferredFourCC(t *testing.T) {
	for _, e := range formatTable {
		fourcc := FormatToFourCC(e.format)
		assert.Equal(t, e.format, FourCCToFormat(fourcc), "%v", e.fourcc)
	}
}

// Every subset of advertised FourCCs must make exactly the pixel formats
// with at least one advertised alias transferable.
func TestLookupImageFormat_Subsets(t *testing.T) {
	candidates := []va.FourCC{
		va.FourCCYV12, va.FourCCI420, va.FourCCIYUV, va.FourCCNV12,
		va.FourCCUYVY, va.FourCCYUY2, va.FourCCRGBA, va.FourCCRGBX,
		va.FourCCBGRA, va.FourCCBGRX, va.FourCCARGB, va.FourCCP010,
	}
	aliases := map[image.Format][]va.FourCC{
		image.Format420P:  {va.FourCCYV12, va.FourCCI420, va.FourCCIYUV},
		image.FormatNV12:  {va.FourCCNV12},
		image.FormatUYVY:  {va.FourCCUYVY},
		image.FormatYUYV:  {va.FourCCYUY2},
		image.FormatRGBA:  {va.FourCCRGBA, va.FourCCRGBX},
		image.FormatBGRA:  {va.FourCCBGRA, va.FourCCBGRX},
		image.FormatVAAPI: nil,
		image.FormatNone:  nil,
	}

	for mask := 0; mask < 1<<len(candidates); mask++ {
		var formats []va.ImageFormat
		advertised := make(map[va.FourCC]bool)
		for i, f := range candidates {
			if mask&(1<<i) != 0 {
				formats = append(formats, va.ImageFormat{FourCC: f})
				advertised[f] = true
			}
		}

		for format, names := range aliases {
			want := false
			for _, f := range names {
				want = want || advertised[f]
			}
			got, ok := lookupImageFormat(formats, format)
			if !assert.Equal(t, want, ok, "mask %#x format %v", mask, format) {
				return
			}
			if ok {
				assert.Equal(t, format, FourCCToFormat(got.FourCC))
				assert.True(t, advertised[got.FourCC])
			}
		}
	}
}

func TestLookupImageFormat_PrefersTableOrder(t *testing.T) {
	formats := []va.ImageFormat{
		{FourCC: va.FourCCI420},
		{FourCC: va.FourCCYV12},
	}
	got, ok := lookupImageFormat(formats, image.Format420P)
	assert.True(t, ok)
	assert.Equal(t, va.FourCCYV12, got.FourCC)
	assert.Same(t, &formats[1], got)
}

func TestColorspaceFlag(t *testing.T) {
	assert.Equal(t, va.SrcBT601, ColorspaceFlag(image.ColorspaceBT601))
	assert.Equal(t, va.SrcBT709, ColorspaceFlag(image.ColorspaceBT709))
	assert.Equal(t, va.SrcSMPTE240, ColorspaceFlag(image.ColorspaceSMPTE240M))
	assert.Zero(t, ColorspaceFlag(image.ColorspaceBT2020))
	assert.Zero(t, ColorspaceFlag(image.ColorspaceAuto))
}
