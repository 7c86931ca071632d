package kafka

import (
	"errors"
	"fmt"
)

// ErrPermanent tags handler failures that redelivery cannot fix.
var ErrPermanent = errors.New("permanent")

// Permanent wraps err so the consumer marks the message instead of retrying it.
// The original error stays reachable through errors.Is and errors.As.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrPermanent, err)
}

// IsPermanent reports whether err was wrapped by Permanent.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrPermanent)
}
