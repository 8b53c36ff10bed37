// type.go defines the tag discriminating the private payload variant.

package videocontext

import "fmt"

// Type tags the variant stored in a video context's private payload.
// The payload bytes must only be interpreted under the tag they were
// created with.
type Type int

const (
	TypeNone Type = iota
	TypeVAAPI
	TypeNVDEC
	TypeCVPX
	TypeDXVA2
	TypeD3D11VA
	TypeAWindow
	TypeVDPAU
	TypeMMAL
	TypeGStreamerGL
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeVAAPI:
		return "vaapi"
	case TypeNVDEC:
		return "nvdec"
	case TypeCVPX:
		return "cvpx"
	case TypeDXVA2:
		return "dxva2"
	case TypeD3D11VA:
		return "d3d11va"
	case TypeAWindow:
		return "awindow"
	case TypeVDPAU:
		return "vdpau"
	case TypeMMAL:
		return "mmal"
	case TypeGStreamerGL:
		return "gstreamer_gl"
	}
	return fmt.Sprintf("unknown_%d", int(t))
}
