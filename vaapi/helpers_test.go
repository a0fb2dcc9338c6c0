package vaapi

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/hwframe/image"
	"github.com/gogpu/hwframe/va"
	"github.com/gogpu/hwframe/va/software"
)

func newTestContext(t *testing.T, opts ...software.Option) (*Context, *software.Driver) {
	t.Helper()
	d := software.New(opts...)
	ctx, err := Initialize(d)
	require.NoError(t, err)
	t.Cleanup(ctx.Destroy)
	return ctx, d
}

func newTestSurface(t *testing.T, ctx *Context, width, height int) (*image.ImageBuf, *Surface) {
	t.Helper()
	buf, err := AllocSurface(ctx, va.RTFormatYUV420, width, height)
	require.NoError(t, err)
	s, ok := SurfaceFromImage(buf)
	require.True(t, ok)
	return buf, s
}

// patternImage returns a software image with distinct bytes in every plane.
func patternImage(t *testing.T, format image.Format, width, height int) *image.ImageBuf {
	t.Helper()
	buf, err := image.NewImageBuf(width, height, format)
	require.NoError(t, err)
	for p := 0; p < buf.NumPlanes(); p++ {
		for y := 0; ; y++ {
			row := buf.Row(p, y)
			if row == nil {
				break
			}
			for x := range row {
				row[x] = byte(p*71 + y*13 + x*7 + 1)
			}
		}
	}
	return buf
}

// requireSamePixels compares the meaningful bytes of every plane.
func requireSamePixels(t *testing.T, want, got *image.ImageBuf) {
	t.Helper()
	require.Equal(t, want.Format(), got.Format())
	require.Equal(t, want.Width(), got.Width())
	require.Equal(t, want.Height(), got.Height())
	for p := 0; p < want.NumPlanes(); p++ {
		for y := 0; ; y++ {
			w, g := want.Row(p, y), got.Row(p, y)
			if w == nil {
				require.Nil(t, g)
				break
			}
			require.Equal(t, w, g, "plane %d row %d", p, y)
		}
	}
}

func fourccsOf(records []software.Record) []va.FourCC {
	out := make([]va.FourCC, 0, len(records))
	for _, r := range records {
		out = append(out, r.FourCC)
	}
	return out
}
