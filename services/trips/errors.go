package trips

import "errors"

var (
	ErrTripNotFound   = errors.New("trip not found")
	ErrDriverNotFound = errors.New("driver not found")
)
