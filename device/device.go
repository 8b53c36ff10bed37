// Package device implements the decoder device: a reference-counted handle
// to an opened hardware-acceleration context, created by probing the
// registered backends.
package device

import (
	"context"

	"github.com/asticode/go-astikit"
	"github.com/xaionaro-go/decdev/logger"
	"github.com/xaionaro-go/decdev/types"
	"go.uber.org/atomic"
)

// Ops is the capability table a backend binds on a successfully opened
// device.
type Ops struct {
	// Close releases the backend's hardware resources. It is invoked at
	// most once, by the Release call that drops the last reference.
	// It may be left unset when the backend has nothing to tear down.
	Close func(ctx context.Context, d *Device)
}

// Device is an opened hardware-acceleration context shared between the
// decoder and the downstream pipeline stages. All fields set by the
// backend are immutable after Create returns; sharing a Device between
// goroutines requires no locking beyond Hold/Release.
type Device struct {
	// Type is the hardware-acceleration technology behind the device.
	// It is never DeviceTypeNone on a device returned by Create.
	Type types.DeviceType

	// Ops is the backend capability table; set iff the open succeeded.
	Ops *Ops

	// BackendState is opaque backend-owned data.
	BackendState any

	rc          atomic.Int32
	resources   *astikit.Closer
	backendName string
}

// BackendName reports which backend opened the device.
func (d *Device) BackendName() string {
	return d.backendName
}

// AttachResource registers a host-level resource to be torn down together
// with the device: on open failure of the current attempt, or when the
// last reference is released. Backends call it during open.
func (d *Device) AttachResource(release func()) {
	d.resources.Add(release)
}

// Hold atomically acquires one more reference and returns the same handle.
// It never fails and never blocks.
func (d *Device) Hold() *Device {
	d.rc.Inc()
	return d
}

// Release drops one reference. The call that brings the count to zero
// closes the backend (Ops.Close, if bound), tears down the attached
// host-level resources and abandons the storage. Backend close failures
// are the backend's own concern and never prevent the teardown from
// completing.
func (d *Device) Release(ctx context.Context) {
	if d.rc.Dec() != 0 {
		return
	}

	logger.Debugf(ctx, "closing the '%s' decoder device (backend: %s)", d.Type, d.backendName)
	if d.Ops != nil && d.Ops.Close != nil {
		d.Ops.Close(ctx, d)
	}
	d.clearResources(ctx)
}

// resetFailedOpen clears everything a failed open attempt may have left
// behind, so the next candidate starts from a pristine device. A failed
// backend may have partially populated the fields; none of them may leak
// into the next attempt.
func (d *Device) resetFailedOpen(ctx context.Context) {
	d.clearResources(ctx)
	d.resources = astikit.NewCloser()
	d.BackendState = nil
	d.Ops = nil
	d.Type = types.DeviceTypeNone
}

func (d *Device) clearResources(ctx context.Context) {
	if err := d.resources.Close(); err != nil {
		logger.Errorf(ctx, "unable to tear down the attached resources: %v", err)
	}
}
