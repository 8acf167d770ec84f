package serbench

import (
	"github.com/fxamacker/cbor/v2"
)

var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error
	cborEncMode, err = cbor.EncOptions{Sort: cbor.SortCanonical}.EncMode()
	if err != nil {
		panic(err)
	}
	cborDecMode, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// cborCodec encodes a Dataset as a CBOR array of maps keyed like the JSON
// codec, with map keys in canonical order.
type cborCodec struct {
	noOptions
}

func (cborCodec) Name() string  { return "cbor" }
func (cborCodec) Label() string { return "CBOR" }

func (cborCodec) Encode(d Dataset) ([]byte, error) {
	data, err := cborEncMode.Marshal(orEmpty(d))
	if err != nil {
		return nil, encodeError("CBOR", err)
	}
	return data, nil
}

func (cborCodec) Decode(data []byte) (Dataset, error) {
	if len(data) == 0 {
		return nil, parseError("CBOR", errEmptyDocument)
	}

	var people *[]wirePerson
	if err := cborDecMode.Unmarshal(data, &people); err != nil {
		return nil, parseError("CBOR", err)
	}
	return datasetFromWire("CBOR", people)
}
