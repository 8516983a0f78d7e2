package bookingRepo

import "errors"

// ErrNotFound is returned when the referenced booking does not exist.
var ErrNotFound = errors.New("booking not found")
