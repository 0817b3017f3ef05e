package trainer

import "github.com/pkg/errors"

import "github.com/neurlang/associator/learning"
import "github.com/neurlang/associator/net/associator"
import "github.com/neurlang/associator/pattern"

// Run trains a network on originals as configured by h and evaluates it on
// randomized samples. The network has one input per bitmap cell and one output
// per distinct label. All randomness comes from originals' random source.
func Run(h *learning.HyperParameters, originals *pattern.Collection, present PresentFunc) (Report, error) {
	if err := h.Validate(); err != nil {
		return Report{}, err
	}
	if originals.Height() != h.Height || originals.Width() != h.Width {
		return Report{}, errors.Wrapf(associator.ErrInappropriateData, "bitmaps are %dx%d, configured size is %dx%d",
			originals.Height(), originals.Width(), h.Height, h.Width)
	}

	var labels = originals.Labels()
	net, err := associator.New(h.Width*h.Height, len(labels), h.LearningRate, h.Activation)
	if err != nil {
		return Report{}, err
	}
	h.Printf("network: %d inputs, %d outputs %v, learning rate %v, %v activation",
		net.InputCount(), net.OutputCount(), labels, net.LearningRate(), net.Function())

	var mode = "online"
	if h.Batch {
		mode = "batch"
	}
	h.Printf("training %d epochs in %s mode on %d bitmaps", h.Epochs, mode, originals.Len())
	if err := net.Train(originals, h.Batch, h.Epochs, originals.Rand()); err != nil {
		return Report{}, errors.Wrap(err, "train")
	}

	if h.RandomSamples == 0 && !h.PresentOriginals {
		h.Printf("no test samples configured")
		return Report{}, nil
	}
	samples, err := originals.CreateRandomized(h.RandomSamples, h.MaxChangesPerSample, h.PresentOriginals)
	if err != nil {
		return Report{}, errors.Wrap(err, "create samples")
	}
	h.Printf("created %d test samples (at most %d changes each, originals included: %v)",
		samples.Len(), h.MaxChangesPerSample, h.PresentOriginals)

	report, err := Evaluate(net, samples, present)
	if err != nil {
		return report, errors.Wrap(err, "evaluate")
	}
	h.Printf("%v", report)
	return report, nil
}
