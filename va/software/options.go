package software

import "github.com/gogpu/hwframe/va"

// Option configures a Driver.
type Option func(*Driver)

// WithFormats sets the advertised image formats, in order. Unknown FourCCs
// are advertised with a bare descriptor and cannot be allocated.
func WithFormats(formats ...va.FourCC) Option {
	return func(d *Driver) {
		d.formats = d.formats[:0]
		for _, f := range formats {
			desc, ok := descriptors[f]
			if !ok {
				desc = va.ImageFormat{FourCC: f, ByteOrder: va.LSBFirst}
			}
			d.formats = append(d.formats, desc)
		}
	}
}

// WithMaxFormats overrides the bound reported by MaxNumImageFormats.
// A bound larger than the format list makes the query return fewer
// entries than announced.
func WithMaxFormats(n int) Option {
	return func(d *Driver) {
		d.maxFormats = n
	}
}

// WithDeriveMode sets the DeriveImage behavior.
func WithDeriveMode(m DeriveMode) Option {
	return func(d *Driver) {
		d.derive = m
	}
}

// WithVersion sets the version reported by Initialize.
func WithVersion(major, minor int) Option {
	return func(d *Driver) {
		d.major, d.minor = major, minor
	}
}

// WithFailure makes every call of the given kind return status.
func WithFailure(call Call, status va.Status) Option {
	return func(d *Driver) {
		d.failures[failKey{call, 0}] = status
	}
}

// WithFormatFailure makes calls of the given kind return status when they
// operate on an image or surface of the given FourCC.
func WithFormatFailure(call Call, fourcc va.FourCC, status va.Status) Option {
	return func(d *Driver) {
		d.failures[failKey{call, fourcc}] = status
	}
}

// SetDeriveMode changes the DeriveImage behavior of a live driver.
func (d *Driver) SetDeriveMode(m DeriveMode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.derive = m
}

// SetFailure injects a failure into a live driver. A zero fourcc matches
// any format. Passing va.StatusSuccess removes the injection.
func (d *Driver) SetFailure(call Call, fourcc va.FourCC, status va.Status) {
	d.mu.Lock()
	defer d.mu.Unlock()

	k := failKey{call, fourcc}
	if status.OK() {
		delete(d.failures, k)
		return
	}
	d.failures[k] = status
}

// ClearFailures removes all injected failures.
func (d *Driver) ClearFailures() {
	d.mu.Lock()
	defer d.mu.Unlock()
	clear(d.failures)
}
