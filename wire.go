package serbench

import (
	"errors"
	"fmt"
)

// The wire types mirror Person and Address with pointer fields, so that the
// library-backed decoders can tell a missing field from a zero value.

type wireAddress struct {
	Street *string `json:"street" yaml:"street" cbor:"street" bson:"street"`
	City   *string `json:"city" yaml:"city" cbor:"city" bson:"city"`
}

type wirePerson struct {
	Name    *string      `json:"name" yaml:"name" cbor:"name" bson:"name"`
	Age     *int         `json:"age" yaml:"age" cbor:"age" bson:"age"`
	Address *wireAddress `json:"address" yaml:"address" cbor:"address" bson:"address"`
}

func (w *wirePerson) person() (Person, error) {
	switch {
	case w.Name == nil:
		return Person{}, missingFieldError{"name", "person"}
	case w.Age == nil:
		return Person{}, missingFieldError{"age", "person"}
	case w.Address == nil:
		return Person{}, missingFieldError{"address", "person"}
	case w.Address.Street == nil:
		return Person{}, missingFieldError{"street", "address"}
	case w.Address.City == nil:
		return Person{}, missingFieldError{"city", "address"}
	}

	return Person{
		Name: *w.Name,
		Age:  *w.Age,
		Address: Address{
			Street: *w.Address.Street,
			City:   *w.Address.City,
		},
	}, nil
}

// datasetFromWire converts decoded records, rejecting the whole document if
// any record is incomplete. A nil list means the document held null or
// nothing at all.
func datasetFromWire(format string, people *[]wirePerson) (Dataset, error) {
	if people == nil {
		return nil, parseError(format, errors.New("document holds no list of people"))
	}

	d := make(Dataset, len(*people))
	for i := range *people {
		p, err := (*people)[i].person()
		if err != nil {
			return nil, parseError(format, fmt.Errorf("person %d: %w", i, err))
		}
		d[i] = p
	}
	return d, nil
}

// orEmpty keeps a nil Dataset from being encoded as a null document.
func orEmpty(d Dataset) Dataset {
	if d == nil {
		return Dataset{}
	}
	return d
}
