package pattern

import "math/rand"

import "github.com/pkg/errors"

// ErrEmpty is returned when a collection would hold no patterns
var ErrEmpty = errors.New("empty pattern collection")

// Collection is an ordered, non-empty group of equally sized patterns sharing one random source.
type Collection struct {
	patterns []Pattern
	rng      *rand.Rand
}

// LabelGroup is one distinct label together with every pattern carrying it
type LabelGroup struct {
	Label    string
	Patterns []Pattern
}

// NewCollection creates a collection over a copy of patterns. A nil rng is
// replaced by a time seeded one.
func NewCollection(patterns []Pattern, rng *rand.Rand) (*Collection, error) {
	if len(patterns) == 0 {
		return nil, ErrEmpty
	}
	for i, p := range patterns {
		if p.Size() == 0 || p.label == "" {
			return nil, errors.Wrapf(ErrMalformed, "pattern %d is not initialized", i)
		}
		if p.height != patterns[0].height || p.width != patterns[0].width {
			return nil, errors.Wrapf(ErrDimensionMismatch, "pattern %d (%q) is %dx%d, pattern 0 is %dx%d",
				i, p.label, p.height, p.width, patterns[0].height, patterns[0].width)
		}
	}
	return &Collection{
		patterns: append([]Pattern(nil), patterns...),
		rng:      source(rng),
	}, nil
}

// Len returns the number of patterns
func (c *Collection) Len() int {
	return len(c.patterns)
}

// At returns the n-th pattern in insertion order
func (c *Collection) At(n int) Pattern {
	return c.patterns[n]
}

// Patterns returns the patterns in insertion order
func (c *Collection) Patterns() []Pattern {
	return append([]Pattern(nil), c.patterns...)
}

// Height returns the row count shared by all patterns
func (c *Collection) Height() int {
	return c.patterns[0].height
}

// Width returns the column count shared by all patterns
func (c *Collection) Width() int {
	return c.patterns[0].width
}

// Rand returns the random source of the collection
func (c *Collection) Rand() *rand.Rand {
	return c.rng
}

// ChooseRandomly picks a pattern uniformly at random
func (c *Collection) ChooseRandomly() Pattern {
	return c.patterns[c.rng.Intn(len(c.patterns))]
}

// CreateRandomized builds a new collection of count randomly chosen patterns,
// each inverted in 0 to maxChanges random cells. With includeOriginals the
// unmodified patterns of c are appended. The result shares c's random source.
func (c *Collection) CreateRandomized(count, maxChanges int, includeOriginals bool) (*Collection, error) {
	if count < 0 || maxChanges < 0 {
		return nil, errors.Wrapf(ErrMalformed, "create randomized: negative count %d or max changes %d", count, maxChanges)
	}
	var out = make([]Pattern, 0, count+len(c.patterns))
	for i := 0; i < count; i++ {
		var changed = c.ChooseRandomly().clone()
		if maxChanges > 0 {
			var changes = c.rng.Intn(maxChanges + 1)
			for j := 0; j < changes; j++ {
				changed = changed.ChangeRandomly(c.rng)
			}
		}
		out = append(out, changed)
	}
	if includeOriginals {
		out = append(out, c.patterns...)
	}
	return NewCollection(out, c.rng)
}

// DistinctLabels groups the patterns by label, in order of first appearance
func (c *Collection) DistinctLabels() (o []LabelGroup) {
	var index = make(map[string]int)
	for _, p := range c.patterns {
		n, ok := index[p.label]
		if !ok {
			n = len(o)
			index[p.label] = n
			o = append(o, LabelGroup{Label: p.label})
		}
		o[n].Patterns = append(o[n].Patterns, p)
	}
	return
}

// Labels returns the distinct labels in order of first appearance
func (c *Collection) Labels() []string {
	var groups = c.DistinctLabels()
	var o = make([]string, len(groups))
	for i, g := range groups {
		o[i] = g.Label
	}
	return o
}

// RelevantBitCount counts the cells set in at least one pattern plus the
// cells clear in at least one pattern. A cell that varies counts twice.
func (c *Collection) RelevantBitCount() (o int) {
	var size = c.patterns[0].Size()
	var anySet = make([]bool, size)
	var anyClear = make([]bool, size)
	for _, p := range c.patterns {
		for row := 0; row < p.height; row++ {
			for col := 0; col < p.width; col++ {
				var n = row*p.width + col
				if p.cells[n] {
					anySet[n] = true
				} else {
					anyClear[n] = true
				}
			}
		}
	}
	for n := 0; n < size; n++ {
		if anySet[n] {
			o++
		}
		if anyClear[n] {
			o++
		}
	}
	return
}

// Order returns the presentation order of the patterns: insertion order when
// rng is nil, otherwise a fresh random permutation drawn from rng.
func (c *Collection) Order(rng *rand.Rand) []int {
	var o = make([]int, len(c.patterns))
	for i := range o {
		o[i] = i
	}
	if rng != nil {
		rng.Shuffle(len(o), func(i, j int) { o[i], o[j] = o[j], o[i] })
	}
	return o
}
