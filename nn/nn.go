// Copyright 2025 The EdgeNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/edgenn-ml/edgenn/internal/nn"
)

// Network is a two-layer feedforward classifier (dense + ReLU, dense +
// softmax) over caller-owned weight tables.
type Network = nn.Network

// Layer describes one dense layer: flattened weights, bias, and shape.
// The slices are non-owning views; their storage must outlive the network.
type Layer = nn.Layer

// Sentinel errors, matched with errors.Is.
var (
	// ErrConfiguration is returned by NewNetwork for layer shapes that
	// cannot form a network.
	ErrConfiguration = nn.ErrConfiguration

	// ErrShapeMismatch is returned by Predict and PredictClass when a
	// buffer length does not match the configured sizes.
	ErrShapeMismatch = nn.ErrShapeMismatch

	// ErrEmptyInput is returned by Softmax on a zero-length buffer.
	ErrEmptyInput = nn.ErrEmptyInput
)

// NewNetwork builds a two-layer network. The hidden width must chain:
// layer1.OutputSize == layer2.InputSize.
//
// Example:
//
//	net, err := nn.NewNetwork(
//	    nn.Layer{Weights: w1, Bias: b1, InputSize: 10, OutputSize: 8},
//	    nn.Layer{Weights: w2, Bias: b2, InputSize: 8, OutputSize: 2},
//	)
func NewNetwork(layer1, layer2 Layer) (*Network, error) {
	return nn.NewNetwork(layer1, layer2)
}

// ReLU applies max(0, x) elementwise in place.
func ReLU(xs []float32) {
	nn.ReLU(xs)
}

// Softmax converts raw scores into a probability distribution in place,
// subtracting the maximum before exponentiation for numerical stability.
// Returns ErrEmptyInput for a zero-length buffer.
func Softmax(xs []float32) error {
	return nn.Softmax(xs)
}

// DenseForward runs one fully-connected layer, out = Wᵗ·in + bias, with no
// activation. Building block for callers assembling their own pipelines;
// Network composes it internally.
func DenseForward(in, weights, bias, out []float32) {
	nn.DenseForward(in, weights, bias, out)
}
