// Package activation implements the activation functions of an output neuron
package activation

import "math"
import "strconv"
import "strings"

import "github.com/pkg/errors"

// Function is an activation function applied to a neuron's net input.
// The zero value None is not a usable function.
type Function byte

const (
	None Function = iota
	Linear
	Binary
	Logistic
	TangensHyperbolicus
)

// ErrUnknown is returned by Parse for names of no activation function
var ErrUnknown = errors.New("unknown activation function")

var names = [...]string{
	None:                "None",
	Linear:              "Linear",
	Binary:              "Binary",
	Logistic:            "Logistic",
	TangensHyperbolicus: "TangensHyperbolicus",
}

var aliases = map[string]Function{
	"linear":              Linear,
	"identity":            Linear,
	"binary":              Binary,
	"threshold":           Binary,
	"logistic":            Logistic,
	"sigmoid":             Logistic,
	"tangenshyperbolicus": TangensHyperbolicus,
	"tanh":                TangensHyperbolicus,
}

// Parse looks up a function by its name, case-insensitive
func Parse(name string) (Function, error) {
	if f, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return None, errors.Wrapf(ErrUnknown, "%q (possible: Linear, Binary, Logistic, TangensHyperbolicus)", name)
}

// Valid reports whether f is one of the four activation functions
func (f Function) Valid() bool {
	return f >= Linear && f <= TangensHyperbolicus
}

func (f Function) String() string {
	if int(f) < len(names) {
		return names[f]
	}
	return "Function(" + strconv.Itoa(int(f)) + ")"
}

// Apply computes the activation for the net input x. None returns x unchanged.
func (f Function) Apply(x float64) float64 {
	switch f {
	case Binary:
		if x >= 0 {
			return 1
		}
		return 0
	case Logistic:
		return 1 / (1 + math.Exp(-x))
	case TangensHyperbolicus:
		return math.Tanh(x)
	default:
		return x
	}
}
