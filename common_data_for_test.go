package serbench

import (
	"testing"
)

type nilWriter int

func (w nilWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func subtest(t *testing.T, name string, f func(t *testing.T)) {
	t.Run(name, f)
}

var twoPeople = Dataset{
	{Name: "Person 1", Age: 20, Address: Address{Street: "Street 1", City: "City 1"}},
	{Name: "Person 2", Age: 21, Address: Address{Street: "Street 2", City: "City 2"}},
}

const twoPeopleAsXML = xmlHEADER +
	`<people>` +
	`<person><name>Person 1</name><age>20</age><address><street>Street 1</street><city>City 1</city></address></person>` +
	`<person><name>Person 2</name><age>21</age><address><street>Street 2</street><city>City 2</city></address></person>` +
	`</people>`

const twoPeopleAsJSON = `[` +
	`{"name":"Person 1","age":20,"address":{"street":"Street 1","city":"City 1"}},` +
	`{"name":"Person 2","age":21,"address":{"street":"Street 2","city":"City 2"}}` +
	`]`

// awkwardPeople holds values that need escaping in every text format.
var awkwardPeople = Dataset{
	{Name: "", Age: 0, Address: Address{Street: "", City: ""}},
	{Name: `<Tom & "Jerry">`, Age: -1, Address: Address{Street: "Rue de l'Église", City: "東京"}},
	{Name: " padded ", Age: 1 << 30, Address: Address{Street: "line\nbreak\ttab", City: "yes"}},
	{Name: "null", Age: 99, Address: Address{Street: "- dash", City: "{brace}: colon"}},
}

// allSizes are the dataset sizes every codec must round-trip.
var allSizes = []int{0, 1, 10, 100, 1000, 10000}
