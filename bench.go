package serbench

import (
	"errors"
	"fmt"
	"io"

	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/sync/errgroup"
)

var errMismatch = errors.New("decoded dataset differs from the generated one")

// A Timing holds the measurements of one codec for one dataset size.
type Timing struct {
	Codec        string // Codec.Label
	Encode       int64  // milliseconds
	Decode       int64  // milliseconds
	EncodedBytes int
}

// A Result holds the measurements of every codec for one dataset size.
type Result struct {
	Size    int
	Timings []Timing
}

// A Benchmark times the round trip of generated datasets through a list of
// codecs. A Benchmark holds no state between runs and may be run repeatedly.
type Benchmark struct {
	sizes    []int
	codecs   []Codec
	repeat   int
	parallel bool
	verify   bool
}

// New returns a Benchmark measuring DefaultSizes with DefaultCodecs, timing
// every operation once and verifying every round trip, as modified by opts.
func New(opts ...Option) (*Benchmark, error) {
	b := &Benchmark{
		sizes:  DefaultSizes(),
		codecs: DefaultCodecs(),
		repeat: 1,
		verify: true,
	}
	for _, o := range opts {
		if err := o(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Run measures every size and writes a report block for each to w. Sizes
// are reported as soon as they are measured unless the benchmark runs in
// parallel. The first codec failure stops the run.
func (b *Benchmark) Run(w io.Writer) error {
	if b.parallel {
		results, err := b.Collect()
		if err != nil {
			return err
		}
		return WriteReport(w, results)
	}

	for _, size := range b.sizes {
		r, err := b.measureSize(size)
		if err != nil {
			return err
		}
		if err := WriteReport(w, []Result{r}); err != nil {
			return err
		}
	}
	return nil
}

// Collect measures every size and returns the results in size order.
func (b *Benchmark) Collect() ([]Result, error) {
	results := make([]Result, len(b.sizes))

	if !b.parallel {
		for i, size := range b.sizes {
			r, err := b.measureSize(size)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return results, nil
	}

	var g errgroup.Group
	for i, size := range b.sizes {
		i, size := i, size
		g.Go(func() error {
			r, err := b.measureSize(size)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (b *Benchmark) measureSize(size int) (Result, error) {
	people := Generate(size)
	logx.Debugw("generated dataset", logx.Field("size", size))

	r := Result{Size: size, Timings: make([]Timing, 0, len(b.codecs))}
	for _, c := range b.codecs {
		t, err := b.measureCodec(c, people)
		if err != nil {
			return Result{}, fmt.Errorf("serbench: %d people: %s: %w", size, c.Name(), err)
		}
		logx.Debugw("measured codec",
			logx.Field("size", size),
			logx.Field("codec", c.Name()),
			logx.Field("bytes", t.EncodedBytes),
			logx.Field("encodeMs", t.Encode),
			logx.Field("decodeMs", t.Decode))
		r.Timings = append(r.Timings, t)
	}
	return r, nil
}

// measureCodec times c.Encode, then times c.Decode on the bytes captured by
// the timed encode. Verification happens after both timings.
func (b *Benchmark) measureCodec(c Codec, people Dataset) (Timing, error) {
	t := Timing{Codec: c.Label()}

	var (
		encoded []byte
		err     error
	)
	t.Encode = Sample(b.repeat, func() {
		encoded, err = c.Encode(people)
	})
	if err != nil {
		return t, err
	}
	t.EncodedBytes = len(encoded)

	var decoded Dataset
	t.Decode = Sample(b.repeat, func() {
		decoded, err = c.Decode(encoded)
	})
	if err != nil {
		return t, err
	}

	if b.verify && !decoded.Equal(people) {
		return t, errMismatch
	}
	return t, nil
}
