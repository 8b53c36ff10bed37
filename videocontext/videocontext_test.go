package videocontext

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/decdev/device"
	"github.com/xaionaro-go/decdev/modulehost"
	"github.com/xaionaro-go/decdev/types"
	"github.com/xaionaro-go/decdev/window"
	"go.uber.org/atomic"
)

// newTestDevice opens a device through a mock backend whose close
// invocations are counted.
func newTestDevice(t *testing.T, ctx context.Context, closeCount *atomic.Int32) *device.Device {
	r := modulehost.NewRegistry[device.OpenFunc]("decoder device")
	r.Register("mock", 1, func(_ context.Context, d *device.Device, _ *window.Window) error {
		d.Type = types.DeviceTypeVAAPI
		d.Ops = &device.Ops{
			Close: func(_ context.Context, _ *device.Device) {
				closeCount.Inc()
			},
		}
		return nil
	})
	d, err := device.Create(ctx, &window.Window{}, device.OptionRegistry{Registry: r})
	require.NoError(t, err)
	return d
}

func TestCreateHoldsItsOwnDeviceReference(t *testing.T) {
	ctx := context.Background()
	var closeCount atomic.Int32
	d := newTestDevice(t, ctx, &closeCount)

	vctx, err := Create(ctx, d, TypeVAAPI, 16, nil)
	require.NoError(t, err)

	// the caller's reference is gone, the context's own keeps the device open:
	d.Release(ctx)
	require.EqualValues(t, 0, closeCount.Load())

	vctx.Release(ctx)
	require.EqualValues(t, 1, closeCount.Load())
}

func TestSingleReleaseWithTwoRefsKeepsDevice(t *testing.T) {
	ctx := context.Background()
	var closeCount atomic.Int32
	var destroyCount atomic.Int32
	d := newTestDevice(t, ctx, &closeCount)

	vctx, err := Create(ctx, d, TypeVAAPI, 0, &Ops{
		Destroy: func(_ context.Context, _ []byte) { destroyCount.Inc() },
	})
	require.NoError(t, err)
	d.Release(ctx)

	vctx.Hold() // rc == 2
	vctx.Release(ctx)
	require.EqualValues(t, 0, closeCount.Load())
	require.EqualValues(t, 0, destroyCount.Load())

	vctx.Release(ctx)
	require.EqualValues(t, 1, closeCount.Load())
	require.EqualValues(t, 1, destroyCount.Load())
}

func TestGetPrivateTagChecked(t *testing.T) {
	ctx := context.Background()

	vctx, err := Create(ctx, nil, TypeNVDEC, 24, nil)
	require.NoError(t, err)
	defer vctx.Release(ctx)

	private := vctx.GetPrivate(TypeNVDEC)
	require.True(t, private.IsSet())
	require.Len(t, private.Get(), 24)

	require.False(t, vctx.GetPrivate(TypeVAAPI).IsSet())
	require.False(t, vctx.GetPrivate(TypeNone).IsSet())

	var nilCtx *Context
	require.False(t, nilCtx.GetPrivate(TypeNVDEC).IsSet())
}

func TestGetPrivateZeroSizedPayload(t *testing.T) {
	ctx := context.Background()

	vctx, err := Create(ctx, nil, TypeDXVA2, 0, nil)
	require.NoError(t, err)
	defer vctx.Release(ctx)

	require.True(t, vctx.GetPrivate(TypeDXVA2).IsSet())
	require.False(t, vctx.GetPrivate(TypeD3D11VA).IsSet())
	require.Equal(t, TypeDXVA2, vctx.GetType())
}

func TestReleaseOrderDeviceThenPayload(t *testing.T) {
	ctx := context.Background()
	var events []string

	r := modulehost.NewRegistry[device.OpenFunc]("decoder device")
	r.Register("mock", 1, func(_ context.Context, d *device.Device, _ *window.Window) error {
		d.Type = types.DeviceTypeVAAPI
		d.Ops = &device.Ops{
			Close: func(_ context.Context, _ *device.Device) {
				events = append(events, "device_close")
			},
		}
		return nil
	})
	d, err := device.Create(ctx, &window.Window{}, device.OptionRegistry{Registry: r})
	require.NoError(t, err)

	vctx, err := Create(ctx, d, TypeVAAPI, 8, &Ops{
		Destroy: func(_ context.Context, private []byte) {
			require.Len(t, private, 8)
			events = append(events, "payload_destroy")
		},
	})
	require.NoError(t, err)
	d.Release(ctx)

	vctx.Release(ctx)
	require.Equal(t, []string{"device_close", "payload_destroy"}, events)
}

func TestHoldDevice(t *testing.T) {
	ctx := context.Background()
	var closeCount atomic.Int32
	d := newTestDevice(t, ctx, &closeCount)

	vctx, err := Create(ctx, d, TypeVAAPI, 0, nil)
	require.NoError(t, err)
	d.Release(ctx)

	held := vctx.HoldDevice()
	require.True(t, held.IsSet())

	// the consumer's reference outlives the context:
	vctx.Release(ctx)
	require.EqualValues(t, 0, closeCount.Load())

	held.Get().Release(ctx)
	require.EqualValues(t, 1, closeCount.Load())
}

func TestHoldDeviceWithoutDevice(t *testing.T) {
	ctx := context.Background()

	vctx, err := Create(ctx, nil, TypeAWindow, 0, nil)
	require.NoError(t, err)
	defer vctx.Release(ctx)

	require.False(t, vctx.HoldDevice().IsSet())
}

func TestCreateRefusesOversizedPayload(t *testing.T) {
	ctx := context.Background()

	_, err := Create(ctx, nil, TypeVAAPI, MaxPrivateSize+1, nil)
	var oom ErrOutOfMemory
	require.True(t, errors.As(err, &oom))
	require.EqualValues(t, MaxPrivateSize+1, oom.RequestedSize)
}

func TestConcurrentReleaseDestroysOnce(t *testing.T) {
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		var destroyCount atomic.Int32
		vctx, err := Create(ctx, nil, TypeVAAPI, 0, &Ops{
			Destroy: func(_ context.Context, _ []byte) { destroyCount.Inc() },
		})
		require.NoError(t, err)
		vctx.Hold() // rc == 2

		barrier := make(chan struct{})
		var wg sync.WaitGroup
		for j := 0; j < 2; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-barrier
				vctx.Release(ctx)
			}()
		}
		close(barrier)
		wg.Wait()
		require.EqualValues(t, 1, destroyCount.Load())
	}
}
