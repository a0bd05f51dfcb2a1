// Package nn implements a fixed-topology feedforward inference engine:
// in-place activations, a dense-layer forward pass, and the two-layer
// Network that composes them. Weights and biases are caller-owned float32
// views; nothing here allocates after construction.
package nn

import (
	"fmt"
	"math"
)

// ReLU applies max(0, x) to every element in place. Non-negative elements
// pass through unchanged. No-op on an empty slice.
func ReLU(xs []float32) {
	for i, x := range xs {
		if x < 0 {
			xs[i] = 0
		}
	}
}

// Softmax converts raw scores into a probability distribution in place:
// every element ends up in [0, 1] and the elements sum to 1 up to
// floating-point rounding.
//
// The maximum score is subtracted before exponentiation. This is mandatory
// for numerical stability: without it, large scores overflow exp and large
// similar scores all underflow to zero, turning the normalization into 0/0.
//
// Returns ErrEmptyInput for a zero-length buffer, which has no maximum.
func Softmax(xs []float32) error {
	if len(xs) == 0 {
		return fmt.Errorf("Softmax: %w", ErrEmptyInput)
	}

	maxVal := xs[0]
	for _, x := range xs[1:] {
		if x > maxVal {
			maxVal = x
		}
	}

	var sum float32
	for i, x := range xs {
		e := float32(math.Exp(float64(x - maxVal)))
		xs[i] = e
		sum += e
	}

	for i := range xs {
		xs[i] /= sum
	}
	return nil
}
