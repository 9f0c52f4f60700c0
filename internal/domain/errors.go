package domain

import "errors"

// ErrInvalidConfig indicates an observer configuration outside the valid
// geographic ranges. Raised at construction time, never later.
var ErrInvalidConfig = errors.New("invalid observer config")

// ErrDataIntegrity indicates a star or horizon vector whose norm deviates
// from unity beyond tolerance. This points at a corrupted catalog row or a
// transform bug and is surfaced to the caller, not corrected.
var ErrDataIntegrity = errors.New("data integrity violation")
