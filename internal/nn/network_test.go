package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityLayer builds an n×n layer whose weights are the identity and
// biases are zero, so the dense pass reproduces its input.
func identityLayer(n int) Layer {
	weights := make([]float32, n*n)
	for i := 0; i < n; i++ {
		weights[i*n+i] = 1
	}
	return Layer{
		Weights:    weights,
		Bias:       make([]float32, n),
		InputSize:  n,
		OutputSize: n,
	}
}

// zeroLayer builds an in×out layer with all-zero weights and biases.
func zeroLayer(in, out int) Layer {
	return Layer{
		Weights:    make([]float32, in*out),
		Bias:       make([]float32, out),
		InputSize:  in,
		OutputSize: out,
	}
}

// TestPredictIdentityNetwork runs the full pipeline with identity layers:
// pre-activations pass through ReLU unchanged, so the result is exactly
// softmax of the input.
func TestPredictIdentityNetwork(t *testing.T) {
	net, err := NewNetwork(identityLayer(2), identityLayer(2))
	require.NoError(t, err)

	out := make([]float32, 2)
	require.NoError(t, net.Predict([]float32{1.0, 2.0}, out))

	// softmax([1, 2]) = [1/(1+e), e/(1+e)].
	assert.InDelta(t, 0.2689, float64(out[0]), 1e-4)
	assert.InDelta(t, 0.7311, float64(out[1]), 1e-4)

	class, err := net.PredictClass([]float32{1.0, 2.0})
	require.NoError(t, err)
	assert.Equal(t, 1, class)
}

// TestPredictZeroNetwork verifies the 18-hidden / 3-class configuration with
// all-zero parameters: every input yields the uniform distribution, and the
// argmax tie goes to class 0.
func TestPredictZeroNetwork(t *testing.T) {
	net, err := NewNetwork(zeroLayer(2, 18), zeroLayer(18, 3))
	require.NoError(t, err)

	inputs := [][]float32{
		{0, 0},
		{1.0, 2.0},
		{-100, 100},
	}
	for _, in := range inputs {
		out := make([]float32, 3)
		require.NoError(t, net.Predict(in, out))
		for i, p := range out {
			assert.InDelta(t, 1.0/3.0, float64(p), 1e-5, "input %v class %d", in, i)
		}

		class, err := net.PredictClass(in)
		require.NoError(t, err)
		assert.Equal(t, 0, class, "tie must go to the first index")
	}
}

// TestPredictReLUClampsHidden verifies the hidden layer is rectified: a
// layer-1 weight row that drives the hidden unit negative must contribute
// nothing to layer 2.
func TestPredictReLUClampsHidden(t *testing.T) {
	// One input, one hidden unit with weight -1, so hidden = -input.
	layer1 := Layer{
		Weights:    []float32{-1},
		Bias:       []float32{0},
		InputSize:  1,
		OutputSize: 1,
	}
	// Hidden feeds class 0 strongly; class 1 gets a constant bias edge.
	layer2 := Layer{
		Weights:    []float32{5, 0},
		Bias:       []float32{0, 1},
		InputSize:  1,
		OutputSize: 2,
	}
	net, err := NewNetwork(layer1, layer2)
	require.NoError(t, err)

	// Positive input drives the hidden unit negative; ReLU clamps it to 0,
	// leaving only layer 2's bias, so class 1 wins.
	class, err := net.PredictClass([]float32{3.0})
	require.NoError(t, err)
	assert.Equal(t, 1, class)

	// Negative input makes the hidden unit positive, so class 0 wins.
	class, err = net.PredictClass([]float32{-3.0})
	require.NoError(t, err)
	assert.Equal(t, 0, class)
}

// TestPredictDeterministic verifies repeated calls with the same input are
// bit-identical: the hidden buffer carries no state across calls.
func TestPredictDeterministic(t *testing.T) {
	net, err := NewNetwork(zeroLayer(2, 4), identityLayer(4))
	require.NoError(t, err)

	in := []float32{0.3, -0.7}
	first := make([]float32, 4)
	require.NoError(t, net.Predict(in, first))

	for i := 0; i < 10; i++ {
		again := make([]float32, 4)
		require.NoError(t, net.Predict(in, again))
		require.Equal(t, first, again, "call %d diverged", i)
	}
}

// TestNewNetworkConfigurationErrors exercises every construction-time
// rejection.
func TestNewNetworkConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		layer1 Layer
		layer2 Layer
	}{
		{"widths do not chain", zeroLayer(2, 18), zeroLayer(17, 3)},
		{
			"layer 1 weights wrong length",
			Layer{Weights: make([]float32, 5), Bias: make([]float32, 3), InputSize: 2, OutputSize: 3},
			zeroLayer(3, 2),
		},
		{
			"layer 2 bias wrong length",
			zeroLayer(2, 3),
			Layer{Weights: make([]float32, 6), Bias: make([]float32, 1), InputSize: 3, OutputSize: 2},
		},
		{"zero input size", zeroLayer(0, 3), zeroLayer(3, 2)},
		{"zero output size", zeroLayer(2, 3), zeroLayer(3, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net, err := NewNetwork(tt.layer1, tt.layer2)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.Nil(t, net)
		})
	}
}

// TestPredictShapeMismatch verifies per-call buffer validation happens
// before any buffer is written.
func TestPredictShapeMismatch(t *testing.T) {
	net, err := NewNetwork(zeroLayer(2, 4), zeroLayer(4, 3))
	require.NoError(t, err)

	sentinel := []float32{-1, -1, -1}
	out := make([]float32, 3)
	copy(out, sentinel)

	err = net.Predict([]float32{1.0}, out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, sentinel, out, "output must be untouched on error")

	err = net.Predict([]float32{1.0, 2.0}, out[:2])
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = net.PredictClass([]float32{1.0, 2.0, 3.0})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

// TestNetworkSizes verifies the shape accessors.
func TestNetworkSizes(t *testing.T) {
	net, err := NewNetwork(zeroLayer(10, 8), zeroLayer(8, 2))
	require.NoError(t, err)

	assert.Equal(t, 10, net.InputSize())
	assert.Equal(t, 2, net.NumClasses())
}
