package trainer

import "fmt"
import "math"

import "github.com/neurlang/associator/net/associator"
import "github.com/neurlang/associator/pattern"

// Report counts the presented and the correctly recognized samples
type Report struct {
	Presented int
	Correct   int
}

// Errors returns the number of misrecognized samples
func (r Report) Errors() int {
	return r.Presented - r.Correct
}

// Rate returns the recognition rate in whole percent, 0 when nothing was presented
func (r Report) Rate() int {
	if r.Presented == 0 {
		return 0
	}
	return int(math.Round(float64(r.Correct) / float64(r.Presented) * 100))
}

func (r Report) String() string {
	return fmt.Sprintf("presented: %d, recognized: %d, recognition rate: %d%%", r.Presented, r.Correct, r.Rate())
}

// PresentFunc is shown every classified sample with the network's answer.
// Returning false stops the evaluation after this sample.
type PresentFunc func(sample pattern.Pattern, answer string) bool

// Evaluate classifies every sample in order and counts the correct answers.
// present may be nil.
func Evaluate(net *associator.Network, samples *pattern.Collection, present PresentFunc) (Report, error) {
	var r Report
	for i := 0; i < samples.Len(); i++ {
		var sample = samples.At(i)
		answer, err := net.Classify(sample)
		if err != nil {
			return r, err
		}
		r.Presented++
		if answer == sample.Label() {
			r.Correct++
		}
		if present != nil && !present(sample, answer) {
			break
		}
	}
	return r, nil
}
