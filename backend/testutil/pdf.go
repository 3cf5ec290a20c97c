package testutil

import (
	"bytes"
	"compress/zlib"
	"io"
	"testing"
	"unicode/utf16"
)

var (
	streamStart = []byte("stream\n")
	streamEnd   = []byte("\nendstream")
)

// PDFStreams inflates every Flate-compressed stream of a PDF and joins them.
// Streams that are not zlib data are skipped.
func PDFStreams(tb testing.TB, doc []byte) []byte {
	tb.Helper()

	var out bytes.Buffer
	rest := doc
	for {
		i := bytes.Index(rest, streamStart)
		if i < 0 {
			break
		}
		rest = rest[i+len(streamStart):]
		j := bytes.Index(rest, streamEnd)
		if j < 0 {
			break
		}
		body := rest[:j]
		rest = rest[j+len(streamEnd):]

		zr, err := zlib.NewReader(bytes.NewReader(body))
		if err != nil {
			continue
		}
		_, _ = io.Copy(&out, zr)
		_ = zr.Close()
	}
	return out.Bytes()
}

// UTF16BE encodes s the way Unicode fonts store text in PDF content streams.
func UTF16BE(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, 2*len(units))
	for _, u := range units {
		out = append(out, byte(u>>8), byte(u))
	}
	return out
}
