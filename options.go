package serbench

import (
	"errors"
	"fmt"
)

// An Option configures a Benchmark built by New.
type Option func(*Benchmark) error

var errNoCodecs = errors.New("serbench: at least one codec is required")

// DefaultSizes are the dataset sizes measured when no Sizes option is given.
func DefaultSizes() []int {
	return []int{1, 10, 100, 1000, 10000}
}

// Sizes sets the dataset sizes to measure, in the order they are reported.
func Sizes(sizes ...int) Option {
	return Option(func(b *Benchmark) error {
		for _, s := range sizes {
			if s < 0 {
				return fmt.Errorf("serbench: invalid dataset size %d", s)
			}
		}
		b.sizes = append([]int(nil), sizes...)
		return nil
	})
}

// WithCodecs sets the codecs to measure, in the order they are reported.
func WithCodecs(codecs ...Codec) Option {
	return Option(func(b *Benchmark) error {
		if len(codecs) == 0 {
			return errNoCodecs
		}
		for _, c := range codecs {
			if c == nil {
				return errors.New("serbench: nil codec")
			}
		}
		b.codecs = append([]Codec(nil), codecs...)
		return nil
	})
}

// Repeat sets how many times each operation is timed; the mean is reported.
func Repeat(n int) Option {
	return Option(func(b *Benchmark) error {
		if n < 1 {
			return fmt.Errorf("serbench: invalid repeat count %d", n)
		}
		b.repeat = n
		return nil
	})
}

// Parallel measures all sizes concurrently. Reports keep the size order.
func Parallel(on bool) Option {
	return Option(func(b *Benchmark) error {
		b.parallel = on
		return nil
	})
}

// Verify checks, outside the timed section, that every decoded dataset
// equals the generated one. It is on by default.
func Verify(on bool) Option {
	return Option(func(b *Benchmark) error {
		b.verify = on
		return nil
	})
}
