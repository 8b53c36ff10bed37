// Package libav is a decoder-device backend built on FFmpeg (go-astiav):
// it opens an AVHWDeviceContext of the hardware type requested through the
// window's option tree.
package libav

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/asticode/go-astiav"
	"github.com/davecgh/go-spew/spew"
	"github.com/xaionaro-go/decdev/device"
	"github.com/xaionaro-go/decdev/logger"
	"github.com/xaionaro-go/decdev/types"
	"github.com/xaionaro-go/decdev/window"
	"github.com/xaionaro-go/unsafetools"
)

const (
	// BackendName is the name the backend registers under (the value of
	// the `dec_dev` preference selecting it explicitly).
	BackendName = "libav"

	// Priority is intentionally low: platform-native backends, when
	// present, should win the probe.
	Priority = 10
)

var registerOnce sync.Once

// Register adds the backend to the default decoder-device registry.
// Calling it multiple times is safe.
func Register() {
	registerOnce.Do(func() {
		device.RegisterBackend(BackendName, Priority, open)
	})
}

func open(ctx context.Context, d *device.Device, w *window.Window) (_err error) {
	logger.Tracef(ctx, "open(ctx, %p, %p)", d, w)
	defer func() { logger.Tracef(ctx, "/open(ctx, %p, %p): %v", d, w, _err) }()

	hwType, hwName := w.InheritHardwareDevice()
	if hwType == types.DeviceTypeNone {
		return fmt.Errorf("the window does not request a hardware device type")
	}

	hdc, err := astiav.CreateHardwareDeviceContext(
		astiav.HardwareDeviceType(hwType),
		string(hwName),
		nil,
		0,
	)
	if err != nil {
		return fmt.Errorf("unable to create a hardware (%s:%s) device context: %w", hwType, hwName, err)
	}

	if logger.FromCtx(ctx).Level() >= logger.LevelTrace {
		logger.Tracef(ctx, "hardware_device_context: %s", spew.Sdump(unsafetools.FieldByNameInValue(reflect.ValueOf(hdc), "c").Elem().Elem().Interface()))
	}

	d.Type = hwType
	d.BackendState = hdc
	d.Ops = &device.Ops{
		Close: func(ctx context.Context, d *device.Device) {
			logger.Debugf(ctx, "freeing the hardware device context")
			hdc.Free()
		},
	}
	return nil
}
