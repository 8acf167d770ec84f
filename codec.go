package serbench

import (
	"fmt"
	"sort"
	"strings"
)

// A Codec converts a Dataset to and from one serialization format.
//
// Encode fails only with an *EncodeError and Decode only with a *ParseError.
// Decode never returns a partially populated Dataset: a document that is
// truncated, malformed or missing any field of any person is rejected.
//
// For every Dataset d accepted by Encode, decoding the result yields a
// Dataset equal to d. Codecs are safe for concurrent use.
type Codec interface {
	// Name is the lowercase identifier accepted by Lookup.
	Name() string
	// Label is the name of the format as printed in reports.
	Label() string
	Encode(d Dataset) ([]byte, error)
	Decode(data []byte) (Dataset, error)
}

type codecOptionReceiver interface {
	setIndent(string) error
}

// A CodecOption configures a codec built by Lookup.
type CodecOption func(codecOptionReceiver) error

// Indent makes the codec pretty-print its output, using i once per level of
// nesting. Only the XML and JSON codecs support indentation.
func Indent(i string) CodecOption {
	return CodecOption(func(o codecOptionReceiver) error {
		return o.setIndent(i)
	})
}

type configurableCodec interface {
	Codec
	codecOptionReceiver
}

// noOptions is embedded by codecs that accept no CodecOption.
type noOptions struct{}

func (noOptions) setIndent(string) error {
	return ErrUnsupportedOption
}

var codecConstructors = map[string]func() configurableCodec{
	"xml":  func() configurableCodec { return &xmlCodec{} },
	"json": func() configurableCodec { return &jsonCodec{} },
	"yaml": func() configurableCodec { return yamlCodec{} },
	"cbor": func() configurableCodec { return cborCodec{} },
	"bson": func() configurableCodec { return bsonCodec{} },
}

// Codecs returns the names of every codec known to Lookup, sorted.
func Codecs() []string {
	names := make([]string, 0, len(codecConstructors))
	for n := range codecConstructors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a new codec for the named format. Names are case-insensitive.
func Lookup(name string, opts ...CodecOption) (Codec, error) {
	ctor, ok := codecConstructors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("serbench: unknown codec %q (known: %s)", name, strings.Join(Codecs(), ", "))
	}

	c := ctor()
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, fmt.Errorf("%w: %s", err, c.Name())
		}
	}
	return c, nil
}

// DefaultCodecs returns the XML codec followed by the JSON codec.
func DefaultCodecs() []Codec {
	return []Codec{&xmlCodec{}, &jsonCodec{}}
}
