// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vaapi

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gogpu/hwframe/image"
	"github.com/gogpu/hwframe/va"
)

// Option configures a Context.
type Option func(*Context)

// WithLogger makes the context log through l instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) {
		c.log = l
	}
}

// Context is an initialized display together with the image formats it
// supports.
//
// The format list is captured once by Initialize and never changes, so
// Formats, SupportsFormat and ImageFormat may be called concurrently.
// Surfaces hold a plain pointer to their Context and must all be released
// before Destroy.
type Context struct {
	display va.Display
	formats []va.ImageFormat

	major, minor int

	id  uuid.UUID
	log *slog.Logger
}

// Initialize initializes display and queries its image formats.
//
// On failure the display is terminated and must not be reused.
func Initialize(display va.Display, opts ...Option) (*Context, error) {
	c := &Context{
		display: display,
		id:      uuid.New(),
	}
	for _, opt := range opts {
		opt(c)
	}

	major, minor, st := display.Initialize()
	if !c.check(st, "vaInitialize()") {
		c.check(display.Terminate(), "vaTerminate()")
		return nil, fmt.Errorf("%w: vaInitialize(): %w", ErrInitializeFailed, st)
	}
	c.major, c.minor = major, minor
	c.logger().Debug("vaapi: initialized", "version", fmt.Sprintf("%d.%d", major, minor))

	if err := c.discoverFormats(); err != nil {
		c.check(display.Terminate(), "vaTerminate()")
		return nil, err
	}
	return c, nil
}

// Open initializes the named display from the va registry.
func Open(name string, opts ...Option) (*Context, error) {
	display, err := va.Open(name)
	if err != nil {
		return nil, fmt.Errorf("vaapi: open %q: %w", name, err)
	}
	return Initialize(display, opts...)
}

// OpenBest initializes the highest priority display in the va registry.
func OpenBest(opts ...Option) (*Context, error) {
	display, name, err := va.OpenBest()
	if err != nil {
		return nil, fmt.Errorf("vaapi: %w", err)
	}
	c, err := Initialize(display, opts...)
	if err != nil {
		return nil, err
	}
	c.logger().Info("vaapi: using display", "name", name)
	return c, nil
}

// discoverFormats fills c.formats. The count returned by the second query
// is authoritative; it may be smaller than the announced maximum.
func (c *Context) discoverFormats() error {
	maxFormats := c.display.MaxNumImageFormats()
	if maxFormats <= 0 {
		return fmt.Errorf("%w: display reports no image formats", ErrBackendQueryFailed)
	}

	formats := make([]va.ImageFormat, maxFormats)
	n, st := c.display.QueryImageFormats(formats)
	if !c.check(st, "vaQueryImageFormats()") {
		return fmt.Errorf("%w: vaQueryImageFormats(): %w", ErrBackendQueryFailed, st)
	}
	if n > len(formats) {
		c.logger().Warn("vaapi: display returned more image formats than announced",
			"announced", maxFormats, "returned", n)
		n = len(formats)
	}
	if n <= 0 {
		return fmt.Errorf("%w: display returned no image formats", ErrBackendQueryFailed)
	}
	c.formats = formats[:n:n]

	log := c.logger()
	log.Debug("vaapi: supported image formats", "count", n)
	for _, f := range c.formats {
		log.Debug("vaapi: image format", "fourcc", f.FourCC, "format", FourCCToFormat(f.FourCC))
	}
	return nil
}

// Destroy terminates the display. It is safe to call more than once.
func (c *Context) Destroy() {
	if c.display == nil {
		return
	}
	c.check(c.display.Terminate(), "vaTerminate()")
	c.display = nil
	c.logger().Debug("vaapi: terminated")
}

// Display returns the underlying display, or nil after Destroy.
func (c *Context) Display() va.Display {
	return c.display
}

// Version returns the VA API version reported by the display.
func (c *Context) Version() (major, minor int) {
	return c.major, c.minor
}

// ID returns the identifier the context logs with.
func (c *Context) ID() uuid.UUID {
	return c.id
}

// Formats returns a copy of the supported image formats, in the order the
// display reported them.
func (c *Context) Formats() []va.ImageFormat {
	out := make([]va.ImageFormat, len(c.formats))
	copy(out, c.formats)
	return out
}

// SupportsFormat reports whether pixels of the given format can be
// transferred to and from surfaces.
func (c *Context) SupportsFormat(format image.Format) bool {
	_, ok := lookupImageFormat(c.formats, format)
	return ok
}

// ImageFormat returns the image format used to transfer pixels of the
// given format.
func (c *Context) ImageFormat(format image.Format) (va.ImageFormat, bool) {
	f, ok := lookupImageFormat(c.formats, format)
	if !ok {
		return va.ImageFormat{}, false
	}
	return *f, true
}

func (c *Context) logger() *slog.Logger {
	l := c.log
	if l == nil {
		l = slogger()
	}
	return l.With("va_context", c.id.String())
}

// check logs a failed backend call and reports whether st is a success.
func (c *Context) check(st va.Status, call string) bool {
	if st.OK() {
		return true
	}
	c.logger().Error("vaapi: call failed", "call", call, "status", st.Error())
	return false
}
