// codec_id.go defines the CodecID type (a FourCC).

package types

import (
	"fmt"
)

// CodecID is a FourCC identifying a codec or a raw chroma.
type CodecID uint32

func NewCodecID(a, b, c, d byte) CodecID {
	return CodecID(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

const CodecIDNone = CodecID(0)

func (c CodecID) String() string {
	if c == CodecIDNone {
		return "none"
	}
	b := [4]byte{byte(c), byte(c >> 8), byte(c >> 16), byte(c >> 24)}
	for _, ch := range b {
		if ch < 0x20 || ch > 0x7e {
			return fmt.Sprintf("0x%08X", uint32(c))
		}
	}
	return string(b[:])
}
