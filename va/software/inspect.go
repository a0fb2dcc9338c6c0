package software

import "github.com/gogpu/hwframe/va"

// LiveSurfaces returns the number of surfaces not yet destroyed.
func (d *Driver) LiveSurfaces() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.surfaces)
}

// LiveImages returns the number of images not yet destroyed.
func (d *Driver) LiveImages() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.images)
}

// Mapped reports whether any image buffer is currently mapped.
func (d *Driver) Mapped() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, img := range d.images {
		if img.mapped {
			return true
		}
	}
	return false
}

// WriteSurface stores content into a surface the way a decoder would.
// fn receives the surface layout and its memory. fourcc selects the
// layout; zero keeps the current one.
func (d *Driver) WriteSurface(id va.SurfaceID, fourcc va.FourCC, fn func(layout va.Image, data []byte)) va.Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.surfaces[id]
	if !ok {
		return va.StatusErrorInvalidSurface
	}
	if fourcc != 0 && fourcc != s.layout.Format.FourCC {
		var layout va.Image
		if !layoutImage(fourcc, s.width, s.height, &layout) {
			return va.StatusErrorInvalidImageFormat
		}
		s.layout = layout
		s.data = make([]byte, layout.DataSize)
	}
	fn(s.layout, s.data)
	s.written = true
	return va.StatusSuccess
}

// SurfaceContents returns a copy of a surface's layout and memory.
func (d *Driver) SurfaceContents(id va.SurfaceID) (va.Image, []byte, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.surfaces[id]
	if !ok {
		return va.Image{}, nil, false
	}
	return s.layout, append([]byte(nil), s.data...), true
}

// ImageContents returns a copy of an image's descriptor and raw buffer.
func (d *Driver) ImageContents(id va.ImageID) (va.Image, []byte, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	img, ok := d.images[id]
	if !ok {
		return va.Image{}, nil, false
	}
	return img.desc, append([]byte(nil), img.data...), true
}
