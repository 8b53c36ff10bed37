// Package picture provides the default picture buffer used by decoders
// that do not bind their own buffer allocator.
package picture

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/decdev/format"
	"github.com/xaionaro-go/decdev/logger"
	"github.com/xaionaro-go/decdev/types"
)

// Picture is a decoded video buffer. The buffer layout is a single packed
// plane; hardware backends that need opaque surfaces bind their own
// allocator instead of using this type.
type Picture struct {
	Chroma types.CodecID
	Width  int
	Height int
	Stride int
	Data   []byte
}

// bytesPerPixel returns the packed-plane pixel size for the given chroma;
// unknown chromas are treated as 32-bit.
func bytesPerPixel(chroma types.CodecID) int {
	switch chroma {
	case types.NewCodecID('I', '4', '2', '0'), types.NewCodecID('N', 'V', '1', '2'):
		return 2 // rounded up from 1.5 to keep the plane packed
	case types.NewCodecID('R', 'V', '2', '4'):
		return 3
	default:
		return 4
	}
}

// NewFromFormat allocates a Picture sized from the video part of fmt.
// It returns an error (and no picture) when fmt does not describe
// decodable video geometry.
func NewFromFormat(ctx context.Context, fmtOut *format.Format) (_ret *Picture, _err error) {
	logger.Tracef(ctx, "NewFromFormat(ctx, %#+v)", fmtOut)
	defer func() { logger.Tracef(ctx, "/NewFromFormat(ctx, %#+v): %p %v", fmtOut, _ret, _err) }()

	if fmtOut == nil || fmtOut.Category != types.MediaTypeVideo {
		return nil, fmt.Errorf("the format does not describe video")
	}
	v := fmtOut.Video
	if v.Width <= 0 || v.Height <= 0 {
		return nil, fmt.Errorf("invalid picture geometry: %dx%d", v.Width, v.Height)
	}

	stride := v.Width * bytesPerPixel(v.Chroma)
	return &Picture{
		Chroma: v.Chroma,
		Width:  v.Width,
		Height: v.Height,
		Stride: stride,
		Data:   make([]byte, stride*v.Height),
	}, nil
}
