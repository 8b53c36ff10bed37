package decoder

import (
	"fmt"

	"github.com/xaionaro-go/decdev/types"
)

// ErrUnsupported is returned when an operation is invalid for the
// decoder's media category or when the required capability slot is not
// bound.
type ErrUnsupported struct {
	Op       string
	Category types.MediaType
}

func (e ErrUnsupported) Error() string {
	return fmt.Sprintf("%s is not supported by this decoder (category: %s)", e.Op, e.Category)
}
