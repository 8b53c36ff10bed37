// device_name.go defines the DeviceName type.

package types

import (
	"encoding/json"
)

// DeviceName is a backend-specific device selector (e.g. a DRM render node
// path or an adapter ordinal). An empty name lets the backend choose.
type DeviceName string

func (n *DeviceName) UnmarshalYAML(b []byte) error {
	return json.Unmarshal(b, (*string)(n))
}

func (n DeviceName) MarshalYAML() ([]byte, error) {
	return json.Marshal(string(n))
}
