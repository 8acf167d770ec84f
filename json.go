package serbench

import (
	"github.com/bytedance/sonic"
)

var jsonAPI = sonic.Config{
	DisallowUnknownFields: true,
	ValidateString:        true,
}.Froze()

// jsonCodec encodes a Dataset as a JSON array of objects with the keys
// "name", "age" and "address"; an address is an object with the keys
// "street" and "city". Unknown keys are rejected on decode.
type jsonCodec struct {
	indent string
}

func (c *jsonCodec) Name() string  { return "json" }
func (c *jsonCodec) Label() string { return "JSON" }

func (c *jsonCodec) setIndent(i string) error {
	c.indent = i
	return nil
}

func (c *jsonCodec) Encode(d Dataset) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if c.indent != "" {
		data, err = jsonAPI.MarshalIndent(orEmpty(d), "", c.indent)
	} else {
		data, err = jsonAPI.Marshal(orEmpty(d))
	}
	if err != nil {
		return nil, encodeError("JSON", err)
	}
	return data, nil
}

func (c *jsonCodec) Decode(data []byte) (Dataset, error) {
	if len(data) == 0 {
		return nil, parseError("JSON", errEmptyDocument)
	}

	var people *[]wirePerson
	if err := jsonAPI.Unmarshal(data, &people); err != nil {
		return nil, parseError("JSON", err)
	}
	return datasetFromWire("JSON", people)
}
