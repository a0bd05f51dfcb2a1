// Package vecmath implements the scalar kernels backing the dense layers in
// internal/nn: matrix-vector multiplication, elementwise addition, and argmax.
//
// All operations work in place over caller-provided float32 slices and
// allocate nothing. Loops are plain scalar Go so the same code runs unchanged
// on microcontroller-class targets.
package vecmath

// MatVecMul computes the transposed matrix-vector product out = Wᵗ·in for a
// weight matrix flattened row-major as weights[rows][cols]:
//
//	out[j] = Σ_i weights[i*cols+j] * in[i]
//
// Element (i, j) is the coefficient from input neuron i to output neuron j,
// so each output index gathers a weighted sum down its column. Weight tables
// are laid out assuming exactly this convention; swapping rows and cols
// produces a plausible-looking but wrong network.
//
// Parameters:
//   - weights: flattened [rows][cols] matrix, len >= rows*cols
//   - in: input vector, len >= rows
//   - out: output vector, len >= cols; existing contents are overwritten
//   - rows, cols: matrix shape
//
// Panics if any slice is shorter than the shape requires.
func MatVecMul(weights, in, out []float32, rows, cols int) {
	if len(weights) < rows*cols {
		panic("vecmath: weight slice too small")
	}
	if len(in) < rows {
		panic("vecmath: input slice too small")
	}
	if len(out) < cols {
		panic("vecmath: output slice too small")
	}

	for j := 0; j < cols; j++ {
		out[j] = 0
	}
	for i := 0; i < rows; i++ {
		x := in[i]
		row := weights[i*cols : (i+1)*cols]
		for j, w := range row {
			out[j] += w * x
		}
	}
}

// Add computes out[i] = a[i] + b[i] for every index of out. Aliasing out with
// a or b is allowed; in-place accumulation is a valid use.
//
// Panics if a or b is shorter than out.
func Add(a, b, out []float32) {
	if len(a) < len(out) || len(b) < len(out) {
		panic("vecmath: operand slice too small")
	}
	for i := range out {
		out[i] = a[i] + b[i]
	}
}

// ArgMax returns the index of the largest element, with ties broken by the
// lowest index. Returns -1 for an empty slice.
func ArgMax(xs []float32) int {
	if len(xs) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}
	return best
}
