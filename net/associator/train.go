package associator

import "math/rand"

import "github.com/pkg/errors"
import "gonum.org/v1/gonum/mat"

import "github.com/neurlang/associator/pattern"

// Train trains the network on set for the given number of epochs.
//
// With batch the weights are updated once per epoch from the sum of all
// corrections, otherwise after every presented pattern. A non-nil rng presents
// the patterns in a new random order each epoch, nil keeps the stored order.
// Output neuron i is assigned the i-th distinct label of set. On error the
// network is left unchanged.
func (n *Network) Train(set *pattern.Collection, batch bool, epochs int, rng *rand.Rand) error {
	if set == nil {
		return errors.Wrap(ErrInvalidArgument, "no training data")
	}
	if epochs < 0 {
		return errors.Wrapf(ErrInvalidArgument, "negative epoch count %d", epochs)
	}
	var labels = set.Labels()
	if len(labels) > n.outputs {
		return errors.Wrapf(ErrInappropriateData, "the training data has %d categories, the network has %d output neurons",
			len(labels), n.outputs)
	}
	if err := n.checkSize(set.At(0)); err != nil {
		return err
	}

	var index = make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}
	n.labels = labels

	var delta = mat.NewDense(n.inputs, n.outputs, nil)
	var target = mat.NewVecDense(n.outputs, nil)

	for epoch := 0; epoch < epochs; epoch++ {
		n.resetActivationState()
		delta.Zero()

		for _, k := range set.Order(rng) {
			var p = set.At(k)

			target.Zero()
			target.SetVec(index[p.Label()], 1)

			n.setInputActivationState(p)
			n.calculateOutputActivationState()
			n.applyDeltaRule(target, delta)

			if !batch {
				n.updateWeights(delta)
				delta.Zero()
			}
		}
		if batch {
			n.updateWeights(delta)
		}
	}
	return nil
}
