package serbench

import (
	"go.mongodb.org/mongo-driver/bson"
)

// A BSON document is always a map, so the list of people is stored under the
// "people" key of the top-level document.
type bsonDocument struct {
	People Dataset `bson:"people"`
}

type bsonWireDocument struct {
	People *[]wirePerson `bson:"people"`
}

// bsonCodec encodes a Dataset as a BSON document whose "people" array holds
// one embedded document per person, keyed like the JSON codec.
type bsonCodec struct {
	noOptions
}

func (bsonCodec) Name() string  { return "bson" }
func (bsonCodec) Label() string { return "BSON" }

func (bsonCodec) Encode(d Dataset) ([]byte, error) {
	data, err := bson.Marshal(bsonDocument{People: orEmpty(d)})
	if err != nil {
		return nil, encodeError("BSON", err)
	}
	return data, nil
}

func (bsonCodec) Decode(data []byte) (Dataset, error) {
	if len(data) == 0 {
		return nil, parseError("BSON", errEmptyDocument)
	}

	var doc bsonWireDocument
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, parseError("BSON", err)
	}
	return datasetFromWire("BSON", doc.People)
}
