// Package window provides the surface handle that decoder-device backends
// receive on open, together with the option tree inherited through it.
package window

import (
	"strings"

	"github.com/xaionaro-go/decdev/types"
)

// Window is an output surface handle. The decdev packages never interpret
// NativeHandle; it is passed through to the backend as-is.
type Window struct {
	Parent       *Window
	Config       Config
	NativeHandle uintptr
}

// Config is the per-window slice of the option tree. Unset fields are
// inherited from the parent window.
type Config struct {
	// DecoderDevice is the preferred decoder-device backend name;
	// empty or "auto" lets the host probe backends in priority order.
	DecoderDevice string `yaml:"dec_dev,omitempty"`

	HWDeviceType types.DeviceType `yaml:"hw_device_type,omitempty"`
	HWDeviceName types.DeviceName `yaml:"hw_device_name,omitempty"`
}

// InheritDeviceBackend walks the parent chain and returns the first
// explicit decoder-device backend preference. "auto" and the empty string
// both mean "no preference".
func (w *Window) InheritDeviceBackend() string {
	for cur := w; cur != nil; cur = cur.Parent {
		name := strings.TrimSpace(cur.Config.DecoderDevice)
		if name == "" || strings.EqualFold(name, "auto") {
			continue
		}
		return name
	}
	return ""
}

// InheritHardwareDevice walks the parent chain and returns the first
// explicitly requested hardware device type together with its name.
func (w *Window) InheritHardwareDevice() (types.DeviceType, types.DeviceName) {
	for cur := w; cur != nil; cur = cur.Parent {
		if cur.Config.HWDeviceType != types.DeviceTypeNone {
			return cur.Config.HWDeviceType, cur.Config.HWDeviceName
		}
	}
	return types.DeviceTypeNone, ""
}
