// Package videocontext implements the video context: a reference-counted,
// type-tagged capability bundle that carries an optional decoder device
// reference plus codec-specific private data, shared between the decoder
// and the downstream pipeline stages.
package videocontext

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/decdev/device"
	"github.com/xaionaro-go/decdev/logger"
	"github.com/xaionaro-go/typing"
	"go.uber.org/atomic"
)

// MaxPrivateSize bounds the inline private payload. Payloads are small
// codec-specific descriptors; a larger request indicates a corrupted size
// and is refused instead of letting the runtime abort on allocation.
const MaxPrivateSize = 1 << 20

// Ops is the optional capability table of a video context.
type Ops struct {
	// Destroy is invoked with the private payload by the Release call
	// that drops the last reference, before the context is abandoned.
	// The attached device reference has already been released by then;
	// Destroy must not assume the device is still alive.
	Destroy func(ctx context.Context, private []byte)
}

// Context is a video context. The tag, payload size and device binding are
// fixed at creation; sharing a Context between goroutines requires no
// locking beyond Hold/Release.
type Context struct {
	rc          atomic.Int32
	dev         *device.Device
	ops         *Ops
	privateType Type
	private     []byte
}

// Create allocates a video context with a private payload of the given
// fixed size, tagged privateType. When dev is non-nil the context acquires
// its own device reference, independent of the caller's. The payload bytes
// are zeroed, but callers must not rely on that: write before reading.
//
// The returned context carries one reference owned by the caller.
func Create(ctx context.Context, dev *device.Device, privateType Type, privateSize uint, ops *Ops) (_ret *Context, _err error) {
	logger.Tracef(ctx, "Create(ctx, %p, %s, %d, %p)", dev, privateType, privateSize, ops)
	defer func() { logger.Tracef(ctx, "/Create(ctx, %p, %s, %d, %p): %p %v", dev, privateType, privateSize, ops, _ret, _err) }()

	if privateSize > MaxPrivateSize {
		return nil, ErrOutOfMemory{RequestedSize: privateSize}
	}

	vctx := &Context{
		ops:         ops,
		privateType: privateType,
		private:     make([]byte, privateSize),
	}
	vctx.rc.Store(1)
	if dev != nil {
		vctx.dev = dev.Hold()
	}
	return vctx, nil
}

// GetType returns the tag of the private payload. The context must be
// non-nil; that is the caller's contract, not a recoverable condition.
func (vctx *Context) GetType() Type {
	return vctx.privateType
}

// GetPrivate returns the private payload iff vctx is non-nil and was
// created with the expected tag. A mismatched tag yields an unset
// optional; the payload bytes are never interpreted under a wrong tag.
func (vctx *Context) GetPrivate(expected Type) typing.Optional[[]byte] {
	if vctx != nil && vctx.privateType == expected {
		return typing.Opt(vctx.private)
	}
	return typing.Optional[[]byte]{}
}

// Hold atomically acquires one more reference and returns the same handle.
// It never fails and never blocks.
func (vctx *Context) Hold() *Context {
	vctx.rc.Inc()
	return vctx
}

// Release drops one reference. The call that brings the count to zero
// releases the attached device reference (which may cascade into the
// device teardown), then invokes the Destroy hook with the private
// payload, then abandons the storage. The device is released before the
// Destroy hook runs; do not reorder without re-deriving correctness for
// payloads that point into device state.
func (vctx *Context) Release(ctx context.Context) {
	if vctx.rc.Dec() != 0 {
		return
	}

	logger.Debugf(ctx, "destroying the '%s' video context", vctx.privateType)
	if vctx.dev != nil {
		vctx.dev.Release(ctx)
		vctx.dev = nil
	}
	if vctx.ops != nil && vctx.ops.Destroy != nil {
		vctx.ops.Destroy(ctx, vctx.private)
	}
	vctx.private = nil
}

// HoldDevice returns a new owned reference to the attached device, or an
// unset optional when the context carries none. Consumers that must
// outlive the context use it to keep the device alive on their own.
func (vctx *Context) HoldDevice() typing.Optional[*device.Device] {
	if vctx.dev == nil {
		return typing.Optional[*device.Device]{}
	}
	return typing.Opt(vctx.dev.Hold())
}

// ErrOutOfMemory is returned by Create when the requested private payload
// cannot be allocated.
type ErrOutOfMemory struct {
	RequestedSize uint
}

func (e ErrOutOfMemory) Error() string {
	return fmt.Sprintf("unable to allocate a private payload of %d bytes", e.RequestedSize)
}
