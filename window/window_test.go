package window

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/decdev/types"
)

func TestInheritDeviceBackend(t *testing.T) {
	root := &Window{Config: Config{DecoderDevice: "libav"}}
	mid := &Window{Parent: root}
	leaf := &Window{Parent: mid, Config: Config{DecoderDevice: "auto"}}

	require.Equal(t, "libav", leaf.InheritDeviceBackend())

	leaf.Config.DecoderDevice = "vaapi-native"
	require.Equal(t, "vaapi-native", leaf.InheritDeviceBackend())
}

func TestInheritDeviceBackendUnset(t *testing.T) {
	w := &Window{}
	require.Equal(t, "", w.InheritDeviceBackend())

	w.Config.DecoderDevice = "auto"
	require.Equal(t, "", w.InheritDeviceBackend())
}

func TestInheritHardwareDevice(t *testing.T) {
	root := &Window{Config: Config{
		HWDeviceType: types.DeviceTypeVAAPI,
		HWDeviceName: "/dev/dri/renderD128",
	}}
	leaf := &Window{Parent: root}

	devType, devName := leaf.InheritHardwareDevice()
	require.Equal(t, types.DeviceTypeVAAPI, devType)
	require.EqualValues(t, "/dev/dri/renderD128", devName)

	leaf.Config.HWDeviceType = types.DeviceTypeCUDA
	devType, devName = leaf.InheritHardwareDevice()
	require.Equal(t, types.DeviceTypeCUDA, devType)
	require.EqualValues(t, "", devName)
}

func TestConfigMarshalUnmarshal(t *testing.T) {
	cfg := &Config{
		DecoderDevice: "libav",
		HWDeviceType:  types.DeviceTypeVAAPI,
		HWDeviceName:  "/dev/dri/renderD128",
	}

	b, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	var cfgDup Config
	err = yaml.Unmarshal(b, &cfgDup)
	require.NoError(t, err)

	require.Equal(t, cfg, &cfgDup)
}
