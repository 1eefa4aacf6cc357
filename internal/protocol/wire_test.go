package protocol

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"
)

// Wire-building helpers shared by the decoder tests. They mirror the
// relay's encoding side, which this module deliberately does not ship.

func appendTag(b []byte, tag string) []byte {
	return append(b, tag...)
}

func appendInt32(b []byte, v int32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(v))
	return append(b, tmp[:]...)
}

// appendStr appends an i32-length-prefixed present string.
func appendStr(b []byte, s string) []byte {
	b = appendInt32(b, int32(len(s)))
	return append(b, s...)
}

// appendNullStr appends the explicit null string (length -1).
func appendNullStr(b []byte) []byte {
	return appendInt32(b, -1)
}

// appendShortString appends a u8-length-prefixed string (lon/ptr/tim
// layout).
func appendShortString(b []byte, s string) []byte {
	b = append(b, byte(len(s)))
	return append(b, s...)
}

// buildFrame wraps a raw (uncompressed) payload into one complete
// frame: length header, compression flag, zlib stream.
func buildFrame(t *testing.T, payload []byte) []byte {
	t.Helper()
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(payload); err != nil {
		t.Fatalf("compress payload: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zlib writer: %v", err)
	}
	frameLen := 5 + compressed.Len()
	out := appendInt32(nil, int32(frameLen))
	out = append(out, 1)
	return append(out, compressed.Bytes()...)
}
