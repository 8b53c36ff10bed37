// Package decoder implements the decoder state: the owned input/output
// format descriptors, the optional loaded implementation module and the
// capability-table dispatch used by the video pipeline.
package decoder

import (
	"context"
	"fmt"

	"github.com/go-ng/xatomic"
	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/decdev/format"
	"github.com/xaionaro-go/decdev/logger"
	"github.com/xaionaro-go/decdev/types"
	"github.com/xaionaro-go/xsync"
)

// Module is the handle of a loaded decoder implementation. The decoder
// state owns it exclusively and unloads it on Clean.
type Module interface {
	Unload(ctx context.Context) error
}

// Decoder is the state of one decoder instance. It is not reference
// counted: there is exactly one owner, and only the owner mutates it.
type Decoder struct {
	// FmtIn is a deep copy of the format the decoder was initialized with.
	FmtIn format.Format
	// FmtOut starts empty with FmtIn's media category and is filled by
	// the decoder implementation as it learns the output geometry.
	FmtOut format.Format

	// Description is optional owned metadata, destroyed with the state.
	Description map[string]string

	// Callbacks is the capability table bound by the pipeline owner.
	Callbacks *Callbacks

	// Callback slots bound by the loaded implementation.
	Decode    DecodeFunc
	GetCC     GetCCFunc
	Packetize PacketizeFunc
	Flush     FlushFunc

	// ExtraPictureBuffers asks the output side for additional buffers
	// beyond the codec's minimum.
	ExtraPictureBuffers int
	// FrameDropAllowed permits the implementation to drop late frames.
	FrameDropAllowed bool

	module *Module
	locker xsync.Mutex
}

// DecodeFunc consumes one input block.
type DecodeFunc func(ctx context.Context, block []byte) error

// GetCCFunc returns buffered closed-caption data, if any.
type GetCCFunc func(ctx context.Context) []byte

// PacketizeFunc splits an input block into output blocks.
type PacketizeFunc func(ctx context.Context, block []byte) [][]byte

// FlushFunc discards the buffered state of the implementation.
type FlushFunc func(ctx context.Context)

// New returns a decoder state initialized with a deep copy of fmtIn.
func New(ctx context.Context, fmtIn *format.Format) *Decoder {
	d := &Decoder{}
	d.Init(ctx, fmtIn)
	return d
}

// Init resets every callback slot and policy field to its default,
// deep-copies fmtIn into FmtIn and initializes FmtOut empty with the same
// media category. It touches nothing but the decoder state itself.
func (d *Decoder) Init(ctx context.Context, fmtIn *format.Format) {
	d.locker.Do(ctx, func() {
		d.ExtraPictureBuffers = 0
		d.FrameDropAllowed = false

		d.Decode = nil
		d.GetCC = nil
		d.Packetize = nil
		d.Flush = nil
		xatomic.StorePointer(&d.module, nil)

		d.FmtIn.CopyFrom(fmtIn)
		d.FmtOut.Init(fmtIn.Category, types.CodecIDNone)
	})
}

// SetModule hands the loaded implementation module to the decoder state,
// which owns it exclusively from now on. It fails when a module is
// already loaded.
func (d *Decoder) SetModule(ctx context.Context, m Module) error {
	return xsync.DoR1(ctx, &d.locker, func() error {
		if xatomic.LoadPointer(&d.module) != nil {
			return fmt.Errorf("a module is already loaded")
		}
		xatomic.StorePointer(&d.module, &m)
		return nil
	})
}

// Clean unloads the module (if any), releases both format descriptors and
// drops the description metadata. It must be called exactly once, before
// the state is abandoned; the slots are cleared as they are released, so
// the guards of a second call would all be false.
func (d *Decoder) Clean(ctx context.Context) error {
	return xsync.DoA1R1(ctx, &d.locker, d.clean, ctx)
}

func (d *Decoder) clean(ctx context.Context) (_err error) {
	logger.Debugf(ctx, "clean")
	defer func() { logger.Debugf(ctx, "/clean: %v", _err) }()

	var result *multierror.Error
	if m := xatomic.SwapPointer(&d.module, nil); m != nil {
		if err := (*m).Unload(ctx); err != nil {
			result = multierror.Append(result, fmt.Errorf("unable to unload the module: %w", err))
		}
	}

	d.FmtIn.Clean()
	d.FmtOut.Clean()

	if d.Description != nil {
		d.Description = nil
	}
	return result.ErrorOrNil()
}

// Destroy cleans d and abandons its storage. It is a no-op on a nil
// decoder. This is the only path that disposes of the state itself.
func Destroy(ctx context.Context, d *Decoder) error {
	if d == nil {
		return nil
	}
	return d.Clean(ctx)
}
