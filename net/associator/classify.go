package associator

import "github.com/neurlang/associator/pattern"

// Classify presents p to the network and returns the label of the output
// neuron with the highest activation. Ties go to the lowest neuron index.
func (n *Network) Classify(p pattern.Pattern) (string, error) {
	if err := n.present(p); err != nil {
		return "", err
	}
	return n.fetchAnswer(), nil
}

// Activations presents p to the network and returns the activation of every output neuron
func (n *Network) Activations(p pattern.Pattern) ([]float64, error) {
	if err := n.present(p); err != nil {
		return nil, err
	}
	var o = make([]float64, n.outputs)
	for i := range o {
		o[i] = n.output.AtVec(i)
	}
	return o, nil
}

func (n *Network) present(p pattern.Pattern) error {
	if n.labels == nil {
		return ErrUntrained
	}
	if err := n.checkSize(p); err != nil {
		return err
	}
	n.resetActivationState()
	n.setInputActivationState(p)
	n.calculateOutputActivationState()
	return nil
}

// fetchAnswer scans the labelled output neurons left to right, replacing the
// answer only on a strictly greater activation
func (n *Network) fetchAnswer() string {
	var best = 0
	for i := 1; i < len(n.labels); i++ {
		if n.output.AtVec(i) > n.output.AtVec(best) {
			best = i
		}
	}
	return n.labels[best]
}
