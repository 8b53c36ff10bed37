package device

import (
	"context"

	"github.com/asticode/go-astikit"
	"github.com/xaionaro-go/decdev/internal"
	"github.com/xaionaro-go/decdev/logger"
	"github.com/xaionaro-go/decdev/modulehost"
	"github.com/xaionaro-go/decdev/types"
	"github.com/xaionaro-go/decdev/window"
)

// OpenFunc is the open callback of a decoder-device backend. On success it
// must set d.Type to a real (non-none) value and bind d.Ops; on failure it
// may leave partial state behind, which the core resets before probing the
// next candidate.
type OpenFunc func(ctx context.Context, d *Device, w *window.Window) error

// Registry holds the registered decoder-device backends.
var Registry = modulehost.NewRegistry[OpenFunc]("decoder device")

// RegisterBackend registers a decoder-device backend into the default
// registry. Backends call it from their Register function.
func RegisterBackend(name string, priority int, open OpenFunc) {
	Registry.Register(name, priority, open)
}

// CreateOption alters the behavior of Create.
type CreateOption interface {
	apply(*createConfig)
}

type createConfig struct {
	registry *modulehost.Registry[OpenFunc]
}

// OptionRegistry makes Create probe the given registry instead of the
// default one.
type OptionRegistry struct {
	Registry *modulehost.Registry[OpenFunc]
}

func (opt OptionRegistry) apply(cfg *createConfig) {
	cfg.registry = opt.Registry
}

// Create opens a decoder device for the given window. The backend
// preference is inherited from the window's option tree; without a
// preference the registered backends are probed in priority order. Every
// failed attempt is fully reset before the next candidate is tried. When
// no backend opens, Create returns ErrNotAvailable.
//
// The returned device carries one reference owned by the caller.
func Create(ctx context.Context, w *window.Window, opts ...CreateOption) (_ret *Device, _err error) {
	logger.Tracef(ctx, "Create(ctx, %p)", w)
	defer func() { logger.Tracef(ctx, "/Create(ctx, %p): %p %v", w, _ret, _err) }()

	cfg := createConfig{
		registry: Registry,
	}
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	preferred := w.InheritDeviceBackend()
	d := &Device{
		Type:      types.DeviceTypeNone,
		resources: astikit.NewCloser(),
	}

	won, err := cfg.registry.Load(ctx, preferred, func(ctx context.Context, c modulehost.Candidate[OpenFunc]) error {
		err := c.Impl(ctx, d, w)
		if err != nil {
			d.resetFailedOpen(ctx)
			return err
		}
		// A backend reporting success without declaring its type is broken
		// beyond what the host can recover from.
		internal.Assert(ctx, d.Type != types.DeviceTypeNone,
			"backend '"+c.Name+"' reported success, but did not set the device type")
		internal.Assert(ctx, d.Ops != nil,
			"backend '"+c.Name+"' reported success, but did not bind a capability table")
		return nil
	})
	if err != nil {
		return nil, ErrNotAvailable{Err: err}
	}

	d.backendName = won.Name
	d.rc.Store(1)
	return d, nil
}
