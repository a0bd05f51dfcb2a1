// Copyright 2025 The EdgeNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vecmath exposes the scalar vector kernels the inference engine is
// built on, for callers that need the primitives without a Network.
package vecmath

import (
	"github.com/edgenn-ml/edgenn/internal/vecmath"
)

// MatVecMul computes out = Wᵗ·in for a weight matrix flattened row-major as
// weights[rows][cols]:
//
//	out[j] = Σ_i weights[i*cols+j] * in[i]
//
// Existing contents of out are overwritten. Panics if a slice is shorter
// than the shape requires.
func MatVecMul(weights, in, out []float32, rows, cols int) {
	vecmath.MatVecMul(weights, in, out, rows, cols)
}

// Add computes out[i] = a[i] + b[i] for every index of out. Aliasing out
// with a or b is allowed.
func Add(a, b, out []float32) {
	vecmath.Add(a, b, out)
}

// ArgMax returns the index of the largest element, ties going to the lowest
// index, or -1 for an empty slice.
func ArgMax(xs []float32) int {
	return vecmath.ArgMax(xs)
}
