// device_type.go defines the DeviceType enum and its methods.

package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DeviceType discriminates the hardware-acceleration technology behind an
// opened decoder device. DeviceTypeNone means the device is not opened.
type DeviceType int

const (
	// the constants are copied from libav's enum AVHWDeviceType:
	DeviceTypeCUDA         = DeviceType(0x2)
	DeviceTypeD3D11VA      = DeviceType(0x7)
	DeviceTypeDRM          = DeviceType(0x8)
	DeviceTypeDXVA2        = DeviceType(0x4)
	DeviceTypeMediaCodec   = DeviceType(0xa)
	DeviceTypeNone         = DeviceType(0x0)
	DeviceTypeOpenCL       = DeviceType(0x9)
	DeviceTypeQSV          = DeviceType(0x5)
	DeviceTypeVAAPI        = DeviceType(0x3)
	DeviceTypeVDPAU        = DeviceType(0x1)
	DeviceTypeVideoToolbox = DeviceType(0x6)
	DeviceTypeVulkan       = DeviceType(0xb)
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeNone:
		return "none"
	case DeviceTypeCUDA:
		return "cuda"
	case DeviceTypeDRM:
		return "drm"
	case DeviceTypeDXVA2:
		return "dxva2"
	case DeviceTypeD3D11VA:
		return "d3d11va"
	case DeviceTypeOpenCL:
		return "opencl"
	case DeviceTypeQSV:
		return "qsv"
	case DeviceTypeVAAPI:
		return "vaapi"
	case DeviceTypeVDPAU:
		return "vdpau"
	case DeviceTypeVideoToolbox:
		return "videotoolbox"
	case DeviceTypeMediaCodec:
		return "mediacodec"
	case DeviceTypeVulkan:
		return "vulkan"
	}
	return fmt.Sprintf("unknown_%X", int64(t))
}

func DeviceTypeFromString(s string) DeviceType {
	sanitizeString := func(s string) string {
		return strings.Trim(strings.ToLower(s), " \n\r\t")
	}
	s = sanitizeString(s)
	for i := 0; i <= 0xff; i++ {
		t := DeviceType(i)
		if s == sanitizeString(t.String()) {
			return t
		}
	}
	return -1
}

func (t *DeviceType) UnmarshalYAML(b []byte) error {
	devType := strings.Trim(strings.ToLower(string(b)), " \"\n\t\r")
	for candidate := DeviceType(0); candidate < DeviceType(0xf); candidate++ {
		if strings.ToLower(candidate.String()) == devType {
			*t = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown device type: '%s'", devType)
}

func (t DeviceType) MarshalYAML() ([]byte, error) {
	return json.Marshal(t.String())
}
