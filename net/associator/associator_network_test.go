package associator

import "math"
import "math/rand"
import "testing"

import "github.com/pkg/errors"

import "github.com/neurlang/associator/activation"
import "github.com/neurlang/associator/pattern"

var (
	letterA = pattern.MustFromRows("a", ".XXX..", "X...X.", "....X.", ".XXXX.", "X...X.", "X..XX.", ".XX.X.")
	letterB = pattern.MustFromRows("b", "X.....", "X.....", "X.....", "X.XX..", "XX..X.", "X...X.", "XXXX..")
	letterC = pattern.MustFromRows("c", "..XXX.", ".X...X", "X.....", "X.....", "X.....", ".X...X", "..XXX.")
)

func collection(t *testing.T, ps ...pattern.Pattern) *pattern.Collection {
	set, err := pattern.NewCollection(ps, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func zeroWeights(n *Network) bool {
	w := n.Weights()
	r, c := w.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if w.At(i, j) != 0 {
				return false
			}
		}
	}
	return true
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		inputs  int
		outputs int
		rate    float64
		f       activation.Function
		ok      bool
	}{
		{"valid", 42, 1, 0.5, activation.Linear, true},
		{"rate_zero", 42, 3, 0, activation.Logistic, true},
		{"rate_one", 42, 3, 1, activation.Binary, true},
		{"no_function", 42, 1, 0.5, activation.None, false},
		{"zero_inputs", 0, 1, 0.5, activation.Linear, false},
		{"negative_outputs", 42, -1, 0.5, activation.Linear, false},
		{"rate_too_big", 42, 1, 1.5, activation.Linear, false},
		{"rate_negative", 42, 1, -0.1, activation.Linear, false},
		{"rate_nan", 42, 1, math.NaN(), activation.Linear, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := New(tc.inputs, tc.outputs, tc.rate, tc.f)
			if tc.ok {
				if err != nil {
					t.Fatal(err)
				}
				if r, c := n.Weights().Dims(); r != tc.inputs || c != tc.outputs || !zeroWeights(n) {
					t.Errorf("weights are not a zero %dx%d matrix", tc.inputs, tc.outputs)
				}
				if n.Trained() {
					t.Errorf("fresh network reports trained")
				}
				return
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestClassifyUntrained(t *testing.T) {
	n := MustNew(42, 1, 0.5, activation.Linear)
	for i := 0; i < 3; i++ {
		if _, err := n.Classify(letterA); !errors.Is(err, ErrUntrained) {
			t.Fatalf("attempt %d: expected ErrUntrained, got %v", i, err)
		}
	}
	if _, err := n.Activations(letterA); !errors.Is(err, ErrUntrained) {
		t.Errorf("expected ErrUntrained, got %v", err)
	}
}

func TestTrainSinglePatternOnline(t *testing.T) {
	n := MustNew(42, 1, 0.5, activation.Linear)
	if err := n.Train(collection(t, letterA), false, 1, nil); err != nil {
		t.Fatal(err)
	}
	answer, err := n.Classify(letterA)
	if err != nil {
		t.Fatal(err)
	}
	if answer != "a" {
		t.Errorf("expected a, got %s", answer)
	}
}

func TestTrainLettersBatch(t *testing.T) {
	n := MustNew(42, 3, 0.5, activation.Linear)
	if err := n.Train(collection(t, letterA, letterB, letterC), true, 1, nil); err != nil {
		t.Fatal(err)
	}
	for _, p := range []pattern.Pattern{letterA, letterB, letterC} {
		answer, err := n.Classify(p)
		if err != nil {
			t.Fatal(err)
		}
		if answer != p.Label() {
			t.Errorf("expected %s, got %s", p.Label(), answer)
		}
	}
	if l := n.Labels(); len(l) != 3 || l[0] != "a" || l[1] != "b" || l[2] != "c" {
		t.Errorf("unexpected label order %v", l)
	}
}

func TestClassifyIgnoresUnlabelledOutputs(t *testing.T) {
	n := MustNew(42, 5, 0.5, activation.Linear)
	if err := n.Train(collection(t, letterA, letterB, letterC), true, 1, nil); err != nil {
		t.Fatal(err)
	}
	if act, err := n.Activations(letterA); err != nil || len(act) != 5 {
		t.Fatalf("expected 5 activations, got %v (%v)", act, err)
	}
	for _, p := range []pattern.Pattern{letterA, letterB, letterC} {
		answer, err := n.Classify(p)
		if err != nil {
			t.Fatal(err)
		}
		if answer != p.Label() {
			t.Errorf("expected %s, got %q", p.Label(), answer)
		}
	}
}

func TestTrainConverges(t *testing.T) {
	testCases := []struct {
		name   string
		f      activation.Function
		rate   float64
		epochs int
	}{
		{"linear", activation.Linear, 0.02, 200},
		{"logistic", activation.Logistic, 0.5, 100},
		{"tanh", activation.TangensHyperbolicus, 0.1, 100},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := MustNew(42, 3, tc.rate, tc.f)
			err := n.Train(collection(t, letterA, letterB, letterC), false, tc.epochs, rand.New(rand.NewSource(5)))
			if err != nil {
				t.Fatal(err)
			}
			for _, p := range []pattern.Pattern{letterA, letterB, letterC} {
				if answer, _ := n.Classify(p); answer != p.Label() {
					t.Errorf("expected %s, got %s", p.Label(), answer)
				}
			}
		})
	}
}

func TestDeltaRule(t *testing.T) {
	first := pattern.MustFromRows("a", "X.")
	second := pattern.MustFromRows("a", "XX")

	testCases := []struct {
		name  string
		batch bool
		want  [2]float64
	}{
		// online: w = [0.5 0]; then output 0.5 and w += 0.25 * [1 1]
		{"online", false, [2]float64{0.75, 0.25}},
		// batch: both patterns see zero weights
		{"batch", true, [2]float64{1, 0.5}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := MustNew(2, 1, 0.5, activation.Linear)
			if err := n.Train(collection(t, first, second), tc.batch, 1, nil); err != nil {
				t.Fatal(err)
			}
			w := n.Weights()
			for j, want := range tc.want {
				if got := w.At(j, 0); math.Abs(got-want) > 1e-12 {
					t.Errorf("w[%d][0] = %v, want %v", j, got, want)
				}
			}
		})
	}
}

func TestTrainDeterministic(t *testing.T) {
	var results [2]*Network
	for i := range results {
		results[i] = MustNew(42, 3, 0.1, activation.Logistic)
		err := results[i].Train(collection(t, letterA, letterB, letterC), false, 5, rand.New(rand.NewSource(11)))
		if err != nil {
			t.Fatal(err)
		}
	}
	a, b := results[0].Weights(), results[1].Weights()
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if a.At(i, j) != b.At(i, j) {
				t.Fatalf("weights differ at %d,%d with the same seed", i, j)
			}
		}
	}
}

func TestTrainTooManyCategories(t *testing.T) {
	n := MustNew(42, 2, 0.5, activation.Linear)
	err := n.Train(collection(t, letterA, letterB, letterC), true, 3, nil)
	if !errors.Is(err, ErrInappropriateData) {
		t.Fatalf("expected ErrInappropriateData, got %v", err)
	}
	if !zeroWeights(n) {
		t.Errorf("weights modified by failed training")
	}
	if n.Trained() {
		t.Errorf("failed training marked the network trained")
	}
}

func TestTrainWrongSize(t *testing.T) {
	n := MustNew(10, 2, 0.5, activation.Linear)
	err := n.Train(collection(t, letterA), true, 1, nil)
	if !errors.Is(err, ErrInappropriateData) {
		t.Fatalf("expected ErrInappropriateData, got %v", err)
	}
	if err := n.Train(nil, true, 1, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestClassifyWrongSize(t *testing.T) {
	n := MustNew(42, 1, 0.5, activation.Linear)
	if err := n.Train(collection(t, letterA), false, 1, nil); err != nil {
		t.Fatal(err)
	}
	_, err := n.Classify(pattern.MustFromRows("x", "X.", ".X"))
	if !errors.Is(err, ErrInappropriateData) {
		t.Errorf("expected ErrInappropriateData, got %v", err)
	}
}

func TestClassifyTieLowestIndex(t *testing.T) {
	// zero epochs leave all weights zero, every output is equal
	n := MustNew(42, 3, 0.5, activation.Logistic)
	if err := n.Train(collection(t, letterC, letterA, letterB), false, 0, nil); err != nil {
		t.Fatal(err)
	}
	if answer, _ := n.Classify(letterA); answer != "c" {
		t.Errorf("tie not broken towards the first neuron, got %s", answer)
	}
	act, err := n.Activations(letterA)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range act {
		if v != 0.5 {
			t.Errorf("activation %d = %v, want 0.5", i, v)
		}
	}
}

func BenchmarkTrain(b *testing.B) {
	set, _ := pattern.NewCollection([]pattern.Pattern{letterA, letterB, letterC}, nil)
	for i := 0; i < b.N; i++ {
		n := MustNew(42, 3, 0.1, activation.Logistic)
		n.Train(set, false, 10, nil)
	}
}
