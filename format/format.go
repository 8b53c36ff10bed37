// Package format implements the elementary-stream format descriptor and
// its copy/clean utilities.
package format

import (
	"github.com/xaionaro-go/decdev/types"
)

// VideoFormat describes the geometry of decoded video pictures.
type VideoFormat struct {
	Chroma types.CodecID `yaml:"chroma,omitempty"`
	Width  int           `yaml:"width,omitempty"`
	Height int           `yaml:"height,omitempty"`
}

// Format is an elementary-stream format descriptor. A Format owns its
// ExtraData; use Copy to duplicate and Clean to release it.
type Format struct {
	Category  types.MediaType `yaml:"category,omitempty"`
	Codec     types.CodecID   `yaml:"codec,omitempty"`
	Video     VideoFormat     `yaml:"video,omitempty"`
	ExtraData []byte          `yaml:"-"`
}

// Init resets f to an empty descriptor of the given media category and codec.
func (f *Format) Init(category types.MediaType, codec types.CodecID) {
	*f = Format{
		Category: category,
		Codec:    codec,
	}
}

// CopyFrom makes f a deep copy of src. Any data previously owned by f is
// released first.
func (f *Format) CopyFrom(src *Format) {
	f.Clean()
	*f = *src
	if src.ExtraData != nil {
		f.ExtraData = make([]byte, len(src.ExtraData))
		copy(f.ExtraData, src.ExtraData)
	}
}

// Clean releases the sub-allocations owned by f. The descriptor itself
// stays usable for a following Init or CopyFrom.
func (f *Format) Clean() {
	f.ExtraData = nil
}
