package software

import (
	"fmt"

	"github.com/gogpu/hwframe/va"
)

// Call identifies a va.Display method.
type Call string

// Recorded calls.
const (
	CallInitialize         Call = "Initialize"
	CallTerminate          Call = "Terminate"
	CallMaxNumImageFormats Call = "MaxNumImageFormats"
	CallQueryImageFormats  Call = "QueryImageFormats"
	CallCreateSurfaces     Call = "CreateSurfaces"
	CallDestroySurfaces    Call = "DestroySurfaces"
	CallSyncSurface        Call = "SyncSurface"
	CallDeriveImage        Call = "DeriveImage"
	CallCreateImage        Call = "CreateImage"
	CallDestroyImage       Call = "DestroyImage"
	CallGetImage           Call = "GetImage"
	CallPutImage           Call = "PutImage"
	CallMapBuffer          Call = "MapBuffer"
	CallUnmapBuffer        Call = "UnmapBuffer"
)

// Record is one entry of the call log. Fields a call has no use for hold
// va.InvalidID or zero.
type Record struct {
	Call    Call
	Surface va.SurfaceID
	Image   va.ImageID
	FourCC  va.FourCC
	Status  va.Status
}

func (r Record) String() string {
	s := string(r.Call)
	if r.FourCC != 0 {
		s += fmt.Sprintf("(%s)", r.FourCC)
	}
	if !r.Status.OK() {
		s += ": " + r.Status.Error()
	}
	return s
}

func (d *Driver) record(r Record) {
	d.calls = append(d.calls, r)
}

// Calls returns a copy of the call log.
func (d *Driver) Calls() []Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Record(nil), d.calls...)
}

// CallsOf returns the logged calls of one kind.
func (d *Driver) CallsOf(call Call) []Record {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []Record
	for _, r := range d.calls {
		if r.Call == call {
			out = append(out, r)
		}
	}
	return out
}

// Count returns how many calls of one kind were logged.
func (d *Driver) Count(call Call) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for _, r := range d.calls {
		if r.Call == call {
			n++
		}
	}
	return n
}

// ResetCalls empties the call log.
func (d *Driver) ResetCalls() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = d.calls[:0]
}
