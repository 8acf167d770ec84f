package serbench

import (
	"bytes"

	"gopkg.in/yaml.v2"
)

// yamlCodec encodes a Dataset as a YAML sequence of mappings using the same
// keys as the JSON codec. Unknown and duplicate keys are rejected on decode.
type yamlCodec struct {
	noOptions
}

func (yamlCodec) Name() string  { return "yaml" }
func (yamlCodec) Label() string { return "YAML" }

func (yamlCodec) Encode(d Dataset) ([]byte, error) {
	data, err := yaml.Marshal(orEmpty(d))
	if err != nil {
		return nil, encodeError("YAML", err)
	}
	return data, nil
}

func (yamlCodec) Decode(data []byte) (Dataset, error) {
	// An empty stream is a valid YAML document that holds nothing at all.
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, parseError("YAML", errEmptyDocument)
	}

	var people *[]wirePerson
	if err := yaml.UnmarshalStrict(data, &people); err != nil {
		return nil, parseError("YAML", err)
	}
	return datasetFromWire("YAML", people)
}
