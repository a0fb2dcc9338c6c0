// Command vainfo lists the image formats of a VA display and checks that
// frames survive an upload and download in each of them.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/hwframe"
	"github.com/gogpu/hwframe/image"
	"github.com/gogpu/hwframe/va"
	"github.com/gogpu/hwframe/va/software"
	"github.com/gogpu/hwframe/vaapi"
)

func main() {
	var (
		display = flag.String("display", "", "display name (default: best available)")
		derive  = flag.String("derive", "alias", "software display derive mode: alias, mismatch or unsupported")
		width   = flag.Int("width", 64, "test frame width")
		height  = flag.Int("height", 48, "test frame height")
		frames  = flag.Int("frames", 4, "round trips per format")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	hwframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	mode, err := parseDeriveMode(*derive)
	if err != nil {
		log.Fatal(err)
	}
	va.Register(va.DisplaySoftware, func() va.Display {
		return software.New(software.WithDeriveMode(mode))
	})

	var opts []hwframe.Option
	if *display != "" {
		opts = append(opts, hwframe.WithDisplay(*display))
	}
	s, err := hwframe.Open(opts...)
	if err != nil {
		log.Fatalf("Failed to open display: %v (available: %v)", err, va.Available())
	}
	defer s.Close()

	printFormats(s.Context())

	failed := 0
	for _, f := range testFormats {
		if !s.Supports(f) {
			fmt.Printf("%-8s skipped (unsupported)\n", f)
			continue
		}
		if err := roundTrip(s, f, *width, *height, *frames); err != nil {
			fmt.Printf("%-8s FAIL: %v\n", f, err)
			failed++
			continue
		}
		fmt.Printf("%-8s ok\n", f)
	}

	surfaces, downloads := s.Stats()
	fmt.Printf("surfaces: %d allocated, %d reused\n", surfaces.Allocations, surfaces.Reuses)
	fmt.Printf("frames:   %d allocated, %d reused\n", downloads.Allocations, downloads.Reuses)
	if failed > 0 {
		s.Close()
		os.Exit(1)
	}
}

var testFormats = []image.Format{
	image.Format420P,
	image.FormatNV12,
	image.FormatYUYV,
	image.FormatUYVY,
	image.FormatRGBA,
	image.FormatBGRA,
}

func parseDeriveMode(s string) (software.DeriveMode, error) {
	for _, m := range []software.DeriveMode{software.DeriveAlias, software.DeriveMismatch, software.DeriveUnsupported} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown derive mode %q", s)
}

func printFormats(ctx *vaapi.Context) {
	major, minor := ctx.Version()
	fmt.Printf("VA-API version: %d.%d\n", major, minor)
	fmt.Println("Supported image formats:")

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "  FOURCC\tBPP\tDEPTH\tFORMAT\tTEXTURE")
	for _, f := range ctx.Formats() {
		format := vaapi.FourCCToFormat(f.FourCC)
		fmt.Fprintf(w, "  %s\t%d\t%d\t%s\t%s\n", f.FourCC, f.BitsPerPixel, f.Depth, format, textureName(format))
	}
	w.Flush()
}

// textureName names the WebGPU texture format a downloaded frame of format
// can be uploaded as, or "-" when it needs conversion first.
func textureName(format image.Format) string {
	tf := format.TextureFormat()
	if tf == gputypes.TextureFormatUndefined {
		return "-"
	}
	return tf.String()
}

func roundTrip(s *hwframe.Session, format image.Format, width, height, frames int) error {
	src, err := image.NewImageBuf(width, height, format)
	if err != nil {
		return err
	}
	fillPattern(src)

	for i := 0; i < frames; i++ {
		if err := roundTripOnce(s, src); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

func roundTripOnce(s *hwframe.Session, src *image.ImageBuf) error {
	surf, err := s.NewSurface(src.Width(), src.Height())
	if err != nil {
		return err
	}
	defer surf.Release()

	if err := s.Upload(surf, src); err != nil {
		return err
	}
	out, err := s.Download(surf)
	if err != nil {
		return err
	}
	defer out.Release()

	if out.Format() != src.Format() {
		return fmt.Errorf("downloaded as %v", out.Format())
	}
	for p := 0; p < src.NumPlanes(); p++ {
		for y := 0; ; y++ {
			want, got := src.Row(p, y), out.Row(p, y)
			if want == nil {
				break
			}
			if string(want) != string(got) {
				return fmt.Errorf("plane %d row %d differs", p, y)
			}
		}
	}
	return nil
}

func fillPattern(buf *image.ImageBuf) {
	for p := 0; p < buf.NumPlanes(); p++ {
		for y := 0; ; y++ {
			row := buf.Row(p, y)
			if row == nil {
				break
			}
			for x := range row {
				row[x] = byte(x*5 + y*3 + p*40)
			}
		}
	}
}
