// Package learning holds the hyperparameters of a training run
package learning

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/pkg/errors"

	"github.com/neurlang/associator/activation"
)

// ErrInvalid is returned by Validate
var ErrInvalid = errors.New("invalid hyperparameters")

// MaxChangesPerSample bounds the random cell inversions applied to one test sample
const MaxChangesPerSample = 10

type HyperParameters struct {
	Width  int // columns of every bitmap
	Height int // rows of every bitmap

	LearningRate float64             // delta rule learning rate, 0.0 - 1.0
	Epochs       int                 // number of passes over the training set
	Batch        bool                // update weights once per epoch instead of after each pattern
	Activation   activation.Function // activation of the output neurons

	RandomSamples       int  // number of randomized test samples
	MaxChangesPerSample int  // at most this many inverted cells per test sample
	PresentOriginals    bool // also test the unmodified training patterns

	Interactive bool  // present every test sample and wait for the user
	Seed        int64 // seed of the random source, 0 seeds from true rng

	l *log.Logger
}

// Defaults returns the settings used when a pattern file doesn't override them
func Defaults() HyperParameters {
	return HyperParameters{
		Width:               6,
		Height:              8,
		LearningRate:        0.5,
		Epochs:              10,
		RandomSamples:       10,
		MaxChangesPerSample: 2,
		PresentOriginals:    true,
	}
}

// Validate reports the first unusable setting
func (h *HyperParameters) Validate() error {
	switch {
	case h.Width < 1:
		return errors.Wrapf(ErrInvalid, "width %d too small", h.Width)
	case h.Height < 1:
		return errors.Wrapf(ErrInvalid, "height %d too small", h.Height)
	case !(h.LearningRate >= 0 && h.LearningRate <= 1):
		return errors.Wrapf(ErrInvalid, "learning rate %v outside of 0.0 - 1.0", h.LearningRate)
	case h.Epochs < 1:
		return errors.Wrapf(ErrInvalid, "epoch count %d too small", h.Epochs)
	case !h.Activation.Valid():
		return errors.Wrap(ErrInvalid, "no activation function")
	case h.RandomSamples < 0:
		return errors.Wrapf(ErrInvalid, "random sample count %d too small", h.RandomSamples)
	case h.MaxChangesPerSample < 0 || h.MaxChangesPerSample > MaxChangesPerSample:
		return errors.Wrapf(ErrInvalid, "max changes per sample %d outside of 0 - %d", h.MaxChangesPerSample, MaxChangesPerSample)
	}
	return nil
}

// SetLogger appends the run log to filename
func (h *HyperParameters) SetLogger(filename string) error {
	outfile, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return errors.Wrap(err, "open log")
	}
	h.SetLogWriter(outfile)
	return nil
}

// SetLogWriter sends the run log to w
func (h *HyperParameters) SetLogWriter(w io.Writer) {
	h.l = log.New(w, "", log.LstdFlags)
}

// Printf logs to the configured logger, if any
func (h *HyperParameters) Printf(format string, v ...interface{}) {
	if h.l != nil {
		h.l.Printf(format, v...)
	}
}

// Rand creates the random source of the run. A zero Seed is first replaced by one from true rng.
func (h *HyperParameters) Rand() *rand.Rand {
	if h.Seed == 0 {
		var b [8]byte
		_, err := crypto_rand.Read(b[:])
		if err == nil {
			h.Seed = int64(binary.LittleEndian.Uint64(b[:]))
		}
		if h.Seed == 0 {
			h.Seed = 1
		}
	}
	return rand.New(rand.NewSource(h.Seed))
}
