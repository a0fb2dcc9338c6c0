package software

import (
	"bytes"
	"slices"
	"testing"

	"github.com/gogpu/hwframe/va"
)

func newSurface(t *testing.T, d *Driver, rt va.RTFormat, w, h int) va.SurfaceID {
	t.Helper()
	ids := []va.SurfaceID{va.InvalidID}
	if st := d.CreateSurfaces(rt, w, h, ids); !st.OK() {
		t.Fatalf("CreateSurfaces: %v", st)
	}
	return ids[0]
}

func TestDriver_Registered(t *testing.T) {
	if !slices.Contains(va.Available(), va.DisplaySoftware) {
		t.Fatalf("Available() = %v, missing %q", va.Available(), va.DisplaySoftware)
	}
	d, err := va.Open(va.DisplaySoftware)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := d.(*Driver); !ok {
		t.Errorf("Open returned %T", d)
	}
}

func TestDriver_Initialize(t *testing.T) {
	d := New(WithVersion(1, 7))
	major, minor, st := d.Initialize()
	if !st.OK() || major != 1 || minor != 7 {
		t.Errorf("Initialize() = %d, %d, %v", major, minor, st)
	}

	d = New(WithFailure(CallInitialize, va.StatusErrorOperationFailed))
	if _, _, st := d.Initialize(); st != va.StatusErrorOperationFailed {
		t.Errorf("Initialize() status = %v", st)
	}
}

func TestDriver_QueryImageFormats(t *testing.T) {
	d := New()
	buf := make([]va.ImageFormat, d.MaxNumImageFormats())
	n, st := d.QueryImageFormats(buf)
	if !st.OK() {
		t.Fatal(st)
	}
	if n != len(DefaultFormats) {
		t.Fatalf("n = %d, want %d", n, len(DefaultFormats))
	}
	for i, f := range buf[:n] {
		if f.FourCC != DefaultFormats[i] {
			t.Errorf("format %d = %v, want %v", i, f.FourCC, DefaultFormats[i])
		}
	}

	d = New(WithFormats(va.FourCCNV12), WithMaxFormats(8))
	if got := d.MaxNumImageFormats(); got != 8 {
		t.Errorf("MaxNumImageFormats() = %d, want 8", got)
	}
	n, _ = d.QueryImageFormats(make([]va.ImageFormat, 8))
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
}

func TestDriver_ZeroIsValidID(t *testing.T) {
	d := New()
	if id := newSurface(t, d, va.RTFormatYUV420, 16, 16); id != 0 {
		t.Errorf("first surface = %d, want 0", id)
	}
}

func TestDriver_CreateSurfacesErrors(t *testing.T) {
	d := New()
	ids := make([]va.SurfaceID, 1)
	if st := d.CreateSurfaces(va.RTFormatYUV444, 16, 16, ids); st != va.StatusErrorUnsupportedRTFormat {
		t.Errorf("YUV444 status = %v", st)
	}
	if st := d.CreateSurfaces(va.RTFormatYUV420, 0, 16, ids); st != va.StatusErrorInvalidParameter {
		t.Errorf("zero width status = %v", st)
	}
	if d.LiveSurfaces() != 0 {
		t.Errorf("LiveSurfaces() = %d", d.LiveSurfaces())
	}
}

func TestDriver_Layout(t *testing.T) {
	tests := []struct {
		fourcc  va.FourCC
		w, h    int
		planes  int
		pitches [va.MaxPlanes]int
		offsets [va.MaxPlanes]int
		size    int
	}{
		{va.FourCCNV12, 20, 10, 2, [3]int{32, 32}, [3]int{0, 320}, 480},
		{va.FourCCYV12, 20, 10, 3, [3]int{32, 16, 16}, [3]int{0, 320, 400}, 480},
		{va.FourCCYUY2, 5, 2, 1, [3]int{16}, [3]int{}, 32},
		{va.FourCCBGRA, 3, 3, 1, [3]int{16}, [3]int{}, 48},
	}
	for _, tt := range tests {
		t.Run(tt.fourcc.String(), func(t *testing.T) {
			var img va.Image
			if !layoutImage(tt.fourcc, tt.w, tt.h, &img) {
				t.Fatal("layoutImage failed")
			}
			if img.NumPlanes != tt.planes || img.Pitches != tt.pitches ||
				img.Offsets != tt.offsets || img.DataSize != tt.size {
				t.Errorf("layout = %d %v %v %d", img.NumPlanes, img.Pitches, img.Offsets, img.DataSize)
			}
		})
	}

	var img va.Image
	if layoutImage(va.MakeFourCC('Z', 'Z', 'Z', 'Z'), 4, 4, &img) {
		t.Error("unknown FourCC laid out")
	}
}

func TestDriver_DeriveAliases(t *testing.T) {
	d := New()
	sid := newSurface(t, d, va.RTFormatYUV420, 16, 16)

	var img va.Image
	if st := d.DeriveImage(sid, &img); !st.OK() {
		t.Fatal(st)
	}
	if img.Format.FourCC != va.FourCCNV12 || img.Width != 16 || img.Height != 16 {
		t.Errorf("derived = %v %dx%d", img.Format.FourCC, img.Width, img.Height)
	}

	data, st := d.MapBuffer(img.Buf)
	if !st.OK() {
		t.Fatal(st)
	}
	data[0] = 0xAB
	d.UnmapBuffer(img.Buf)

	_, surf, _ := d.SurfaceContents(sid)
	if surf[0] != 0xAB {
		t.Error("write through derived image not visible in surface")
	}
}

func TestDriver_DeriveModes(t *testing.T) {
	d := New(WithDeriveMode(DeriveMismatch))
	sid := newSurface(t, d, va.RTFormatYUV420, 16, 16)
	var img va.Image
	if st := d.DeriveImage(sid, &img); !st.OK() {
		t.Fatal(st)
	}
	if img.Height == 16 {
		t.Error("mismatch mode reported surface height")
	}

	d.SetDeriveMode(DeriveUnsupported)
	if st := d.DeriveImage(sid, &img); st.OK() {
		t.Error("unsupported mode succeeded")
	}
}

func TestDriver_CreateImageUnadvertised(t *testing.T) {
	d := New(WithFormats(va.FourCCNV12))
	var img va.Image
	f := descriptors[va.FourCCYV12]
	if st := d.CreateImage(&f, 16, 16, &img); st != va.StatusErrorInvalidImageFormat {
		t.Errorf("status = %v", st)
	}
}

func TestDriver_GetImage(t *testing.T) {
	d := New()
	sid := newSurface(t, d, va.RTFormatYUV420, 8, 8)

	create := func(fourcc va.FourCC) va.Image {
		t.Helper()
		var img va.Image
		f := descriptors[fourcc]
		if st := d.CreateImage(&f, 8, 8, &img); !st.OK() {
			t.Fatal(st)
		}
		return img
	}

	// Blank surfaces read back as zeros in any layout.
	yv12 := create(va.FourCCYV12)
	data, _ := d.MapBuffer(yv12.Buf)
	data[0] = 1
	d.UnmapBuffer(yv12.Buf)
	if st := d.GetImage(sid, 0, 0, 8, 8, yv12.ImageID); !st.OK() {
		t.Fatal(st)
	}
	_, raw, _ := d.ImageContents(yv12.ImageID)
	if raw[0] != 0 {
		t.Error("blank surface did not read back as zero")
	}

	d.WriteSurface(sid, 0, func(layout va.Image, data []byte) {
		data[0] = 42
	})
	if st := d.GetImage(sid, 0, 0, 8, 8, yv12.ImageID); st != va.StatusErrorInvalidImageFormat {
		t.Errorf("cross-format GetImage status = %v", st)
	}

	nv12 := create(va.FourCCNV12)
	if st := d.GetImage(sid, 0, 0, 8, 8, nv12.ImageID); !st.OK() {
		t.Fatal(st)
	}
	_, raw, _ = d.ImageContents(nv12.ImageID)
	if raw[0] != 42 {
		t.Errorf("raw[0] = %d, want 42", raw[0])
	}

	if st := d.GetImage(sid, 0, 0, 4, 8, nv12.ImageID); st != va.StatusErrorInvalidParameter {
		t.Errorf("partial rect status = %v", st)
	}
}

func TestDriver_PutImageChangesLayout(t *testing.T) {
	d := New()
	sid := newSurface(t, d, va.RTFormatYUV420, 8, 8)

	var img va.Image
	f := descriptors[va.FourCCI420]
	if st := d.CreateImage(&f, 8, 8, &img); !st.OK() {
		t.Fatal(st)
	}
	data, _ := d.MapBuffer(img.Buf)
	for i := range data {
		data[i] = byte(i)
	}
	d.UnmapBuffer(img.Buf)

	r := va.Rect{Width: 8, Height: 8}
	if st := d.PutImage(sid, img.ImageID, r, r); !st.OK() {
		t.Fatal(st)
	}
	layout, surf, _ := d.SurfaceContents(sid)
	if layout.Format.FourCC != va.FourCCI420 {
		t.Errorf("surface layout = %v", layout.Format.FourCC)
	}
	_, raw, _ := d.ImageContents(img.ImageID)
	if !bytes.Equal(surf, raw) {
		t.Error("surface contents differ from image")
	}
}

func TestDriver_MapBuffer(t *testing.T) {
	d := New()
	var img va.Image
	f := descriptors[va.FourCCNV12]
	d.CreateImage(&f, 8, 8, &img)

	if _, st := d.MapBuffer(img.Buf); !st.OK() {
		t.Fatal(st)
	}
	if _, st := d.MapBuffer(img.Buf); st != va.StatusErrorSurfaceBusy {
		t.Errorf("double map status = %v", st)
	}
	if !d.Mapped() {
		t.Error("Mapped() = false")
	}

	d.SetFailure(CallUnmapBuffer, 0, va.StatusErrorOperationFailed)
	if st := d.UnmapBuffer(img.Buf); st != va.StatusErrorOperationFailed {
		t.Errorf("unmap status = %v", st)
	}
	if d.Mapped() {
		t.Error("failed unmap left the buffer mapped")
	}

	d.ClearFailures()
	if st := d.UnmapBuffer(img.Buf); st != va.StatusErrorInvalidBuffer {
		t.Errorf("unmap of unmapped buffer status = %v", st)
	}
}

func TestDriver_FormatFailurePrecedence(t *testing.T) {
	d := New(
		WithFailure(CallCreateImage, va.StatusErrorAllocationFailed),
		WithFormatFailure(CallCreateImage, va.FourCCYV12, va.StatusErrorInvalidImageFormat),
	)
	var img va.Image
	yv12 := descriptors[va.FourCCYV12]
	nv12 := descriptors[va.FourCCNV12]
	if st := d.CreateImage(&yv12, 8, 8, &img); st != va.StatusErrorInvalidImageFormat {
		t.Errorf("YV12 status = %v", st)
	}
	if st := d.CreateImage(&nv12, 8, 8, &img); st != va.StatusErrorAllocationFailed {
		t.Errorf("NV12 status = %v", st)
	}
	if d.LiveImages() != 0 {
		t.Errorf("LiveImages() = %d", d.LiveImages())
	}
}

func TestDriver_CallLog(t *testing.T) {
	d := New()
	sid := newSurface(t, d, va.RTFormatYUV420, 8, 8)
	d.SyncSurface(sid)
	d.SyncSurface(va.InvalidID)

	if got := d.Count(CallSyncSurface); got != 2 {
		t.Errorf("Count(SyncSurface) = %d, want 2", got)
	}
	syncs := d.CallsOf(CallSyncSurface)
	if syncs[1].Status != va.StatusErrorInvalidSurface {
		t.Errorf("second sync status = %v", syncs[1].Status)
	}
	if got := d.Calls()[0].Call; got != CallCreateSurfaces {
		t.Errorf("first call = %v", got)
	}

	d.ResetCalls()
	if len(d.Calls()) != 0 {
		t.Error("ResetCalls left entries")
	}
}

func TestDriver_Terminate(t *testing.T) {
	d := New()
	if st := d.Terminate(); !st.OK() {
		t.Fatal(st)
	}
	if _, st := d.QueryImageFormats(make([]va.ImageFormat, 4)); st != va.StatusErrorInvalidDisplay {
		t.Errorf("query after terminate status = %v", st)
	}
}
