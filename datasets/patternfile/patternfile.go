package patternfile

import "bufio"
import "io"
import "math/rand"
import "os"
import "strconv"
import "strings"
import "unicode/utf8"

import "github.com/pkg/errors"

import "github.com/neurlang/associator/activation"
import "github.com/neurlang/associator/learning"
import "github.com/neurlang/associator/pattern"

// ErrSyntax is returned for lines the loader can't understand
var ErrSyntax = errors.New("pattern file syntax error")

// File is the content of a pattern file
type File struct {
	HyperParameters learning.HyperParameters
	Patterns        []pattern.Pattern
}

// Collection groups the loaded bitmaps into a collection drawing from rng
func (f *File) Collection(rng *rand.Rand) (*pattern.Collection, error) {
	return pattern.NewCollection(f.Patterns, rng)
}

// LoadFile loads the pattern file name
func LoadFile(name string) (*File, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "load pattern file")
	}
	defer file.Close()
	return Load(file)
}

type loader struct {
	File

	line  int
	name  string
	label string
	rows  []string
}

// Load reads a pattern file from r, settings not present keep learning.Defaults.
func Load(r io.Reader) (*File, error) {
	var l = loader{File: File{HyperParameters: learning.Defaults()}}

	var sc = bufio.NewScanner(r)
	for sc.Scan() {
		l.line++
		if err := l.parse(strings.TrimSpace(sc.Text())); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read pattern file")
	}
	if l.rows != nil {
		return nil, errors.Wrapf(ErrSyntax, "line %d: incomplete bitmap %q", l.line, l.label)
	}
	return &l.File, nil
}

func (l *loader) parse(line string) error {
	if l.rows != nil {
		return l.row(line)
	}
	if line == "" {
		return nil
	}
	var parts = strings.Split(line, "=")
	switch len(parts) {
	case 1:
		l.label, l.name = l.name, ""
		l.rows = []string{}
		return l.row(line)
	case 2:
		return l.set(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	}
	return errors.Wrapf(ErrSyntax, "line %d: %q", l.line, line)
}

// row adds a bitmap row, finishing the bitmap after height rows
func (l *loader) row(line string) error {
	var h = &l.HyperParameters
	if n := utf8.RuneCountInString(line); n != h.Width {
		return errors.Wrapf(ErrSyntax, "line %d: bitmap row has %d characters, width is %d", l.line, n, h.Width)
	}
	l.rows = append(l.rows, line)
	if len(l.rows) < h.Height {
		return nil
	}
	p, err := pattern.FromRows(l.label, l.rows)
	if err != nil {
		return errors.Wrapf(err, "line %d", l.line)
	}
	l.Patterns = append(l.Patterns, p)
	l.rows = nil
	return nil
}

func (l *loader) set(key, value string) (err error) {
	var h = &l.HyperParameters
	switch key {
	case "width":
		h.Width, err = l.atLeast(key, value, 1)
	case "height":
		h.Height, err = l.atLeast(key, value, 1)
	case "laps":
		h.Epochs, err = l.atLeast(key, value, 1)
	case "numberOfRandomSamples":
		h.RandomSamples, err = l.atLeast(key, value, 0)
	case "maxErrorsPerSample":
		h.MaxChangesPerSample, err = l.atLeast(key, value, 0)
		if err == nil && h.MaxChangesPerSample > learning.MaxChangesPerSample {
			err = errors.Wrapf(ErrSyntax, "line %d: %s above %d", l.line, key, learning.MaxChangesPerSample)
		}
	case "epsilon":
		h.LearningRate, err = strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.Wrapf(ErrSyntax, "line %d: %s: %v", l.line, key, err)
		}
		if !(h.LearningRate >= 0 && h.LearningRate <= 1) {
			err = errors.Wrapf(ErrSyntax, "line %d: %s outside of 0.0 - 1.0", l.line, key)
		}
	case "name":
		l.name = value
	case "learnmode":
		h.Batch, err = l.choice(key, value, "batch", "online")
	case "mode":
		h.Interactive, err = l.choice(key, value, "interactive", "batch")
	case "presentOriginals":
		h.PresentOriginals = value == "yes"
	case "activation_function":
		h.Activation, err = activation.Parse(value)
		if err != nil {
			err = errors.Wrapf(err, "line %d", l.line)
		}
	default:
		err = errors.Wrapf(ErrSyntax, "line %d: unknown key %q", l.line, key)
	}
	return
}

func (l *loader) atLeast(key, value string, min int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(ErrSyntax, "line %d: %s: %v", l.line, key, err)
	}
	if n < min {
		return 0, errors.Wrapf(ErrSyntax, "line %d: %s below %d", l.line, key, min)
	}
	return n, nil
}

// choice reports true for yes and false for no, anything else is an error
func (l *loader) choice(key, value, yes, no string) (bool, error) {
	switch value {
	case yes:
		return true, nil
	case no:
		return false, nil
	}
	return false, errors.Wrapf(ErrSyntax, "line %d: %s must be %q or %q", l.line, key, yes, no)
}
