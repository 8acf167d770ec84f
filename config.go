package serbench

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// A Config describes a benchmark run in YAML:
//
//	sizes: [1, 10, 100]
//	codecs: [xml, json, cbor]
//	repeat: 5
//	parallel: false
//	verify: true
//	indent: "  "
//
// Every key is optional; omitted keys keep the defaults of New.
type Config struct {
	Sizes    []int    `yaml:"sizes"`
	Codecs   []string `yaml:"codecs"`
	Repeat   int      `yaml:"repeat"`
	Parallel bool     `yaml:"parallel"`
	Verify   *bool    `yaml:"verify"`
	// Indent is applied to the codecs that support it and ignored by the rest.
	Indent string `yaml:"indent"`
}

// LoadConfig reads a Config from r. Unknown keys are an error.
func LoadConfig(r io.Reader) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("serbench: invalid config: %w", err)
	}
	return c, nil
}

// ReadConfigFile reads a Config from the named YAML file.
func ReadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadConfig(f)
}

// Options converts c into the options understood by New.
func (c *Config) Options() ([]Option, error) {
	var opts []Option
	if len(c.Sizes) > 0 {
		opts = append(opts, Sizes(c.Sizes...))
	}
	if len(c.Codecs) > 0 {
		codecs := make([]Codec, 0, len(c.Codecs))
		for _, name := range c.Codecs {
			codec, err := c.lookup(name)
			if err != nil {
				return nil, err
			}
			codecs = append(codecs, codec)
		}
		opts = append(opts, WithCodecs(codecs...))
	} else if c.Indent != "" {
		codecs := make([]Codec, 0, 2)
		for _, d := range DefaultCodecs() {
			codec, err := c.lookup(d.Name())
			if err != nil {
				return nil, err
			}
			codecs = append(codecs, codec)
		}
		opts = append(opts, WithCodecs(codecs...))
	}
	if c.Repeat != 0 {
		opts = append(opts, Repeat(c.Repeat))
	}
	if c.Parallel {
		opts = append(opts, Parallel(true))
	}
	if c.Verify != nil {
		opts = append(opts, Verify(*c.Verify))
	}
	return opts, nil
}

func (c *Config) lookup(name string) (Codec, error) {
	if c.Indent == "" {
		return Lookup(name)
	}
	codec, err := Lookup(name, Indent(c.Indent))
	if errors.Is(err, ErrUnsupportedOption) {
		return Lookup(name)
	}
	return codec, err
}
