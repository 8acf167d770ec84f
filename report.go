package serbench

import (
	"bufio"
	"io"
	"strconv"
)

// WriteReport writes one block per result to w:
//
//	Testing with 10 people:
//	XML Serialization Time: 0 ms
//	XML Deserialization Time: 0 ms
//	JSON Serialization Time: 0 ms
//	JSON Deserialization Time: 0 ms
//
// Each block lists its codecs in measurement order and ends with a blank line.
func WriteReport(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		bw.WriteString("Testing with ")
		bw.WriteString(strconv.Itoa(r.Size))
		bw.WriteString(" people:\n")
		for _, t := range r.Timings {
			writeTiming(bw, t.Codec, "Serialization", t.Encode)
			writeTiming(bw, t.Codec, "Deserialization", t.Decode)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func writeTiming(bw *bufio.Writer, label, direction string, ms int64) {
	bw.WriteString(label)
	bw.WriteByte(' ')
	bw.WriteString(direction)
	bw.WriteString(" Time: ")
	bw.WriteString(strconv.FormatInt(ms, 10))
	bw.WriteString(" ms\n")
}
