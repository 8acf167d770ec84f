package serbench

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kr/pretty"
)

func BenchmarkXMLGenerate(b *testing.B) {
	people := Generate(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := newXMLDatasetGenerator(nilWriter(0))
		d.generateDocument(people)
	}
}

func BenchmarkXMLParse(b *testing.B) {
	data, _ := (&xmlCodec{}).Encode(Generate(1000))
	buf := bytes.NewReader(data)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StartTimer()
		d := newXMLDatasetParser(buf)
		d.parseDocument()
		b.StopTimer()
		buf.Seek(0, 0)
	}
}

func TestXMLGenerate(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := newXMLDatasetGenerator(buf).generateDocument(twoPeople); err != nil {
		t.Fatal(err)
	}
	if buf.String() != twoPeopleAsXML {
		t.Log("Expected:", twoPeopleAsXML)
		t.Log("Received:", buf.String())
		t.Fail()
	}
}

func TestXMLGenerateEmpty(t *testing.T) {
	data, err := (&xmlCodec{}).Encode(Dataset{})
	if err != nil {
		t.Fatal(err)
	}
	if want := xmlHEADER + "<people></people>"; string(data) != want {
		t.Fatalf("expected %q, got %q", want, data)
	}
}

func TestXMLGenerateIndent(t *testing.T) {
	expected := xmlHEADER + `<people>
	<person>
		<name>Person 1</name>
		<age>20</age>
		<address>
			<street>Street 1</street>
			<city>City 1</city>
		</address>
	</person>
</people>`

	c, err := Lookup("xml", Indent("\t"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := c.Encode(twoPeople[:1])
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != expected {
		t.Fatalf("unexpected indented document:\n%s", data)
	}

	people, err := c.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if !people.Equal(twoPeople[:1]) {
		t.Fatalf("indented round trip: %v", pretty.Diff(twoPeople[:1], people))
	}
}

func TestXMLParse(t *testing.T) {
	people, err := newXMLDatasetParser(bytes.NewReader([]byte(twoPeopleAsXML))).parseDocument()
	if err != nil {
		t.Fatal(err)
	}
	if !people.Equal(twoPeople) {
		t.Fatalf("unexpected people: %v", pretty.Diff(twoPeople, people))
	}
}

func TestXMLParseTolerates(t *testing.T) {
	docs := []struct {
		Name string
		Data string
	}{
		{"No declaration", `<people><person><name>A</name><age>1</age><address><street>S</street><city>C</city></address></person></people>`},
		{"Comments and whitespace", "<!-- people -->\n<people>\n  <!-- first -->\n  <person> <name>A</name> <age> 1 </age> <address> <street>S</street> <city>C</city> </address> </person>\n</people>\n"},
		{"Fields out of order", `<people><person><address><city>C</city><street>S</street></address><age>1</age><name>A</name></person></people>`},
		{"Self-closing strings", `<people><person><name/><age>1</age><address><street/><city>C</city></address></person></people>`},
		{"CDATA and entities", `<people><person><name><![CDATA[A]]></name><age>1</age><address><street>S</street><city>&#67;</city></address></person></people>`},
	}

	for _, doc := range docs {
		subtest(t, doc.Name, func(t *testing.T) {
			people, err := (&xmlCodec{}).Decode([]byte(doc.Data))
			if err != nil {
				t.Fatal(err)
			}
			if len(people) != 1 || people[0].Age != 1 || people[0].Address.City != "C" {
				t.Fatalf("unexpected people: %# v", pretty.Formatter(people))
			}
		})
	}
}

func TestXMLEncodeRejectsUnrepresentableText(t *testing.T) {
	for _, name := range []string{"nul\x00byte", "bad \xff utf-8", "escape \x1b"} {
		people := Dataset{{Name: name, Age: 1, Address: Address{Street: "S", City: "C"}}}
		_, err := (&xmlCodec{}).Encode(people)

		var encErr *EncodeError
		if !errors.As(err, &encErr) {
			t.Fatalf("%q: expected an *EncodeError, got %v", name, err)
		}
		if encErr.Format != "XML" || !errors.Is(err, errInvalidXMLText) {
			t.Fatalf("%q: unexpected error %v", name, err)
		}
	}
}
