package nn

import "github.com/edgenn-ml/edgenn/internal/vecmath"

// DenseForward runs one fully-connected layer: out = Wᵗ·in + bias, with the
// weight matrix flattened row-major as weights[len(in)][len(out)] (see
// vecmath.MatVecMul for the exact convention). No activation is applied;
// that is the caller's job.
//
// Existing contents of out are overwritten. Panics if weights or bias is
// shorter than the shape implied by len(in) and len(out).
func DenseForward(in, weights, bias, out []float32) {
	vecmath.MatVecMul(weights, in, out, len(in), len(out))
	vecmath.Add(out, bias, out)
}
