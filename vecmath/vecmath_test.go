// Copyright 2025 The EdgeNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vecmath_test

import (
	"testing"

	"github.com/edgenn-ml/edgenn/vecmath"
	"github.com/stretchr/testify/assert"
)

// TestFacadeKernels spot-checks the re-exported kernels through the public
// API.
func TestFacadeKernels(t *testing.T) {
	// [2][2] flattened; out = Wᵗ·in.
	weights := []float32{
		1, 2,
		3, 4,
	}
	out := make([]float32, 2)
	vecmath.MatVecMul(weights, []float32{1, 1}, out, 2, 2)
	assert.Equal(t, []float32{4, 6}, out)

	vecmath.Add(out, []float32{1, -1}, out)
	assert.Equal(t, []float32{5, 5}, out)

	assert.Equal(t, 0, vecmath.ArgMax(out), "tie goes to the first index")
	assert.Equal(t, -1, vecmath.ArgMax(nil))
}
