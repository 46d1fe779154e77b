package processor

import "errors"

// ErrInvalidBounds is returned by [NewClamp] and [Cache.Clamp] when the upper
// bound is not strictly greater than the lower bound.
var ErrInvalidBounds = errors.New("max is not greater than min")
