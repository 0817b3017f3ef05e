package associator

import "gonum.org/v1/gonum/mat"

// applyDeltaRule accumulates learningRate * (target[i] - output[i]) * input[j]
// into delta[j][i] for the pattern currently loaded in the input neurons.
func (n *Network) applyDeltaRule(target *mat.VecDense, delta *mat.Dense) {
	var diff mat.VecDense
	diff.SubVec(target, n.output)
	delta.RankOne(delta, n.learningRate, n.input, &diff)
}

// updateWeights adds the accumulated delta to the weights
func (n *Network) updateWeights(delta *mat.Dense) {
	n.weights.Add(n.weights, delta)
}
