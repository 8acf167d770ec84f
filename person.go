package serbench

import "strconv"

// An Address is the postal address embedded in every Person.
type Address struct {
	Street string `json:"street" yaml:"street" cbor:"street" bson:"street"`
	City   string `json:"city" yaml:"city" cbor:"city" bson:"city"`
}

// A Person is a single record of a Dataset.
type Person struct {
	Name    string  `json:"name" yaml:"name" cbor:"name" bson:"name"`
	Age     int     `json:"age" yaml:"age" cbor:"age" bson:"age"`
	Address Address `json:"address" yaml:"address" cbor:"address" bson:"address"`
}

// A Dataset is the ordered list of people generated for one benchmark size.
type Dataset []Person

// Equal reports whether d and o hold the same people in the same order.
// A nil Dataset is equal to an empty one.
func (d Dataset) Equal(o Dataset) bool {
	if len(d) != len(o) {
		return false
	}
	for i := range d {
		if d[i] != o[i] {
			return false
		}
	}
	return true
}

// Generate returns count people whose fields are derived from their index:
// the person at index i is named "Person <i+1>", is 20+(i%30) years old and
// lives at "Street <i+1>" in "City <i+1>". A count of zero or less yields an
// empty, non-nil Dataset.
func Generate(count int) Dataset {
	if count < 0 {
		count = 0
	}

	people := make(Dataset, count)
	for i := range people {
		n := strconv.Itoa(i + 1)
		people[i] = Person{
			Name: "Person " + n,
			Age:  20 + (i % 30),
			Address: Address{
				Street: "Street " + n,
				City:   "City " + n,
			},
		}
	}
	return people
}
