// video.go implements the video-specific decoder operations dispatched
// through the capability table.

package decoder

import (
	"context"

	"github.com/xaionaro-go/decdev/logger"
	"github.com/xaionaro-go/decdev/picture"
	"github.com/xaionaro-go/decdev/types"
	"github.com/xaionaro-go/decdev/videocontext"
)

// UpdateVideoFormat is UpdateVideoOutput without switching the video
// context.
func (d *Decoder) UpdateVideoFormat(ctx context.Context) error {
	return d.UpdateVideoOutput(ctx, nil)
}

// UpdateVideoOutput pushes the current FmtOut (and optionally a new video
// context) to the output side. It is only valid on a video decoder with a
// bound capability table providing FormatUpdate; otherwise it fails with
// ErrUnsupported.
func (d *Decoder) UpdateVideoOutput(ctx context.Context, vctxOut *videocontext.Context) error {
	if d.FmtIn.Category != types.MediaTypeVideo || d.Callbacks == nil || d.Callbacks.Video.FormatUpdate == nil {
		return ErrUnsupported{Op: "format update", Category: d.FmtIn.Category}
	}
	return d.Callbacks.Video.FormatUpdate(ctx, d, vctxOut)
}

// NewPicture allocates a picture for the decoder to render into: through
// the BufferNew slot when bound, otherwise a default picture sized from
// FmtOut. Allocation failure propagates as "no buffer", never as a
// half-initialized picture.
func (d *Decoder) NewPicture(ctx context.Context) (*picture.Picture, error) {
	if d.FmtIn.Category != types.MediaTypeVideo || d.Callbacks == nil {
		return nil, ErrUnsupported{Op: "picture allocation", Category: d.FmtIn.Category}
	}
	if d.Callbacks.Video.BufferNew == nil {
		return picture.NewFromFormat(ctx, &d.FmtOut)
	}
	return d.Callbacks.Video.BufferNew(ctx, d)
}

// AbortPictures signals a BufferNew call that may be blocked waiting for a
// buffer to give up (abort == true) or re-arms it (abort == false). It is
// a cooperative cancellation signal, not a forced interruption; with no
// AbortPictures slot bound it is a no-op.
func (d *Decoder) AbortPictures(ctx context.Context, abort bool) {
	if d.FmtIn.Category != types.MediaTypeVideo || d.Callbacks == nil {
		logger.Debugf(ctx, "AbortPictures(%t) on a non-video decoder or without a capability table", abort)
		return
	}
	if d.Callbacks.Video.AbortPictures == nil {
		return
	}
	d.Callbacks.Video.AbortPictures(ctx, d, abort)
}
