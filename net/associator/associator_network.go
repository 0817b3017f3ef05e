// Package associator implements a single layer pattern associator trained by the delta rule
package associator

import "github.com/pkg/errors"
import "gonum.org/v1/gonum/mat"

import "github.com/neurlang/associator/activation"
import "github.com/neurlang/associator/pattern"

// ErrUntrained is returned when classifying before any training
var ErrUntrained = errors.New("neural network is untrained")

// ErrInappropriateData is returned when patterns or labels don't fit the network's size
var ErrInappropriateData = errors.New("inappropriate data")

// ErrInvalidArgument is returned for unusable construction or training arguments
var ErrInvalidArgument = errors.New("invalid argument")

// Network connects every input neuron with every output neuron, there is no hidden layer.
// Input neurons are the rows, output neurons the columns of the weight matrix.
type Network struct {
	inputs  int
	outputs int

	weights *mat.Dense
	input   *mat.VecDense
	output  *mat.VecDense

	learningRate float64
	function     activation.Function

	// labels[i] is the category of output neuron i, nil until trained
	labels []string
}

// New creates a network with zero weights
func New(inputs, outputs int, learningRate float64, f activation.Function) (*Network, error) {
	if !f.Valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "no activation function given (%v)", f)
	}
	if inputs <= 0 || outputs <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "neuron counts must be positive, got %d inputs and %d outputs", inputs, outputs)
	}
	if !(learningRate >= 0 && learningRate <= 1) {
		return nil, errors.Wrapf(ErrInvalidArgument, "learning rate %v outside of 0.0 - 1.0", learningRate)
	}
	return &Network{
		inputs:       inputs,
		outputs:      outputs,
		weights:      mat.NewDense(inputs, outputs, nil),
		input:        mat.NewVecDense(inputs, nil),
		output:       mat.NewVecDense(outputs, nil),
		learningRate: learningRate,
		function:     f,
	}, nil
}

// MustNew is like New but panics on error
func MustNew(inputs, outputs int, learningRate float64, f activation.Function) *Network {
	n, err := New(inputs, outputs, learningRate, f)
	if err != nil {
		panic(err.Error())
	}
	return n
}

// InputCount returns the number of input neurons
func (n *Network) InputCount() int {
	return n.inputs
}

// OutputCount returns the number of output neurons
func (n *Network) OutputCount() int {
	return n.outputs
}

// LearningRate returns the delta rule learning rate
func (n *Network) LearningRate() float64 {
	return n.learningRate
}

// Function returns the activation function of the output neurons
func (n *Network) Function() activation.Function {
	return n.function
}

// Trained reports whether Train was called at least once
func (n *Network) Trained() bool {
	return n.labels != nil
}

// Labels returns the categories of the output neurons, by neuron index
func (n *Network) Labels() []string {
	return append([]string(nil), n.labels...)
}

// Weights returns a copy of the weight matrix
func (n *Network) Weights() *mat.Dense {
	return mat.DenseCopyOf(n.weights)
}

// resetActivationState sets all neuron activations back to zero
func (n *Network) resetActivationState() {
	n.input.Zero()
	n.output.Zero()
}

// checkSize reports whether p fits the input layer
func (n *Network) checkSize(p pattern.Pattern) error {
	if p.Size() != n.inputs {
		return errors.Wrapf(ErrInappropriateData, "the network has %d input neurons, the bitmap %q has %d bits (%dx%d)",
			n.inputs, p.Label(), p.Size(), p.Height(), p.Width())
	}
	return nil
}

// setInputActivationState loads p row-major into the input neurons
func (n *Network) setInputActivationState(p pattern.Pattern) {
	var width = p.Width()
	for row := 0; row < p.Height(); row++ {
		for col := 0; col < width; col++ {
			var v float64
			if p.At(row, col) {
				v = 1
			}
			n.input.SetVec(row*width+col, v)
		}
	}
}

// calculateOutputActivationState applies the activation function to the net input of every output neuron
func (n *Network) calculateOutputActivationState() {
	n.output.MulVec(n.weights.T(), n.input)
	for i := 0; i < n.outputs; i++ {
		n.output.SetVec(i, n.function.Apply(n.output.AtVec(i)))
	}
}
