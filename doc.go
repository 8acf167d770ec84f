// Package serbench measures the wall-clock cost of encoding and decoding a
// synthetic list of people through interchangeable serialization formats.
// XML and JSON are measured by default; YAML, CBOR and BSON can be added.
// The mapping between the data model and each format is described in the
// documentation for the individual codecs.
package serbench
