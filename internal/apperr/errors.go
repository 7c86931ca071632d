package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or version conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrVertexFloor is returned when removing a vertex would leave fewer than three.
var ErrVertexFloor = fmt.Errorf("%w: a zone needs at least 3 points", ErrInvalid)
