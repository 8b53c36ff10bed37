// callbacks.go defines the capability table the pipeline owner binds on a
// decoder.

package decoder

import (
	"context"

	"github.com/xaionaro-go/decdev/picture"
	"github.com/xaionaro-go/decdev/videocontext"
)

// Callbacks is the capability table of a decoder. Each slot is optional;
// an unset slot means "use the default behavior" (BufferNew), "no-op"
// (AbortPictures) or "unsupported" (FormatUpdate).
type Callbacks struct {
	Video VideoCallbacks
}

// VideoCallbacks are the video-decode capability slots.
type VideoCallbacks struct {
	// FormatUpdate lets the output side react to a changed FmtOut,
	// optionally switching to the given video context.
	FormatUpdate func(ctx context.Context, d *Decoder, vctxOut *videocontext.Context) error

	// BufferNew allocates a picture for the decoder to render into.
	// Returning (nil, nil) means "no buffer right now" (allocation
	// pressure); it is a valid result, not an error.
	BufferNew func(ctx context.Context, d *Decoder) (*picture.Picture, error)

	// AbortPictures cooperatively unblocks (or re-arms) a BufferNew call
	// that may be parked waiting for a free buffer.
	AbortPictures func(ctx context.Context, d *Decoder, abort bool)
}
