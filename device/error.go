package device

import "fmt"

// ErrNotAvailable is returned by Create when no backend could open a
// device for the window.
type ErrNotAvailable struct {
	Err error
}

func (e ErrNotAvailable) Error() string {
	return fmt.Sprintf("no decoder device is available: %v", e.Err)
}

func (e ErrNotAvailable) Unwrap() error {
	return e.Err
}
