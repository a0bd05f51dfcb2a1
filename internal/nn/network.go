package nn

import (
	"fmt"

	"github.com/edgenn-ml/edgenn/internal/vecmath"
)

// Layer describes one dense layer: a flattened weight matrix, a bias vector,
// and the layer's shape. The slices are non-owning views of caller-owned
// storage, which must outlive the network and must not be mutated while the
// network is in use.
type Layer struct {
	// Weights is the matrix flattened row-major as [InputSize][OutputSize]:
	// element (i, j) at Weights[i*OutputSize+j] is the coefficient from
	// input neuron i to output neuron j.
	Weights []float32

	// Bias holds one bias per output neuron, length OutputSize.
	Bias []float32

	InputSize  int
	OutputSize int
}

func (l Layer) validate(name string) error {
	if l.InputSize < 1 || l.OutputSize < 1 {
		return fmt.Errorf("%s: %w: sizes %dx%d, want both >= 1",
			name, ErrConfiguration, l.InputSize, l.OutputSize)
	}
	if len(l.Weights) != l.InputSize*l.OutputSize {
		return fmt.Errorf("%s: %w: %d weights, want %d for shape %dx%d",
			name, ErrConfiguration, len(l.Weights), l.InputSize*l.OutputSize, l.InputSize, l.OutputSize)
	}
	if len(l.Bias) != l.OutputSize {
		return fmt.Errorf("%s: %w: %d biases, want %d",
			name, ErrConfiguration, len(l.Bias), l.OutputSize)
	}
	return nil
}

// Network is a two-layer feedforward classifier: dense + ReLU into dense +
// softmax. It holds references to the layers' caller-owned parameters plus
// two buffers reused across calls, so inference allocates nothing.
//
// Predict and PredictClass mutate the internal buffers; concurrent calls on
// one instance must be serialized externally. The weight and bias tables are
// never written and may be shared across any number of networks.
type Network struct {
	layer1 Layer
	layer2 Layer

	hidden []float32 // layer-1 activations, length layer1.OutputSize
	probs  []float32 // PredictClass scratch, length layer2.OutputSize
}

// NewNetwork builds a network from two dense layers. The hidden width must
// chain: layer1.OutputSize == layer2.InputSize.
//
// Returns an error wrapping ErrConfiguration when the widths do not chain or
// either layer's slices disagree with its declared shape.
func NewNetwork(layer1, layer2 Layer) (*Network, error) {
	if err := layer1.validate("layer 1"); err != nil {
		return nil, err
	}
	if err := layer2.validate("layer 2"); err != nil {
		return nil, err
	}
	if layer1.OutputSize != layer2.InputSize {
		return nil, fmt.Errorf("%w: layer 1 outputs %d, layer 2 expects %d",
			ErrConfiguration, layer1.OutputSize, layer2.InputSize)
	}
	return &Network{
		layer1: layer1,
		layer2: layer2,
		hidden: make([]float32, layer1.OutputSize),
		probs:  make([]float32, layer2.OutputSize),
	}, nil
}

// InputSize returns the length Predict expects of its input vector.
func (n *Network) InputSize() int { return n.layer1.InputSize }

// NumClasses returns the length of the probability vector Predict produces.
func (n *Network) NumClasses() int { return n.layer2.OutputSize }

// Predict runs the full forward pass, writing a probability distribution
// over NumClasses() classes into output. The same input always produces
// bit-identical output.
//
// Returns an error wrapping ErrShapeMismatch, before touching any buffer,
// when len(input) != InputSize() or len(output) != NumClasses().
func (n *Network) Predict(input, output []float32) error {
	if len(input) != n.layer1.InputSize {
		return fmt.Errorf("Predict: %w: input length %d, want %d",
			ErrShapeMismatch, len(input), n.layer1.InputSize)
	}
	if len(output) != n.layer2.OutputSize {
		return fmt.Errorf("Predict: %w: output length %d, want %d",
			ErrShapeMismatch, len(output), n.layer2.OutputSize)
	}

	DenseForward(input, n.layer1.Weights, n.layer1.Bias, n.hidden)
	ReLU(n.hidden)

	DenseForward(n.hidden, n.layer2.Weights, n.layer2.Bias, output)
	return Softmax(output)
}

// PredictClass runs Predict into an internal buffer and returns the index of
// the most probable class, in [0, NumClasses()). Ties go to the lowest index.
func (n *Network) PredictClass(input []float32) (int, error) {
	if err := n.Predict(input, n.probs); err != nil {
		return 0, err
	}
	return vecmath.ArgMax(n.probs), nil
}
