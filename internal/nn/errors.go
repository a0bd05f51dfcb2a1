package nn

import "errors"

// Sentinel errors returned by network construction and inference. Match with
// errors.Is; every error returned by this package wraps exactly one of them.
var (
	// ErrConfiguration indicates layer shapes that cannot form a network:
	// non-chaining widths, a weight or bias slice whose length does not
	// match its declared shape, or a size below one.
	ErrConfiguration = errors.New("invalid network configuration")

	// ErrShapeMismatch indicates a Predict call whose input or output
	// buffer length does not match the configured layer sizes. The call
	// mutates nothing when it returns this error.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrEmptyInput indicates a softmax over a zero-length buffer, for
	// which no maximum exists.
	ErrEmptyInput = errors.New("empty input")
)
