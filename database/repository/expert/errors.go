package expertRepo

import "errors"

// ErrNotFound is returned when the referenced expert or slot does not exist.
var ErrNotFound = errors.New("expert not found")
