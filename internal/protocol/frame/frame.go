// Package frame owns the outer relay frame layout:
//
//	[4 bytes big-endian total length][1 byte compression flag][zlib payload]
//
// The length counts the whole frame, its own four bytes and the flag
// included.
package frame

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// LengthLen is the size of the length prefix.
	LengthLen = 4
	// HeaderLen is the size of the length prefix plus compression flag.
	HeaderLen = 5
)

var (
	ErrShortHeader   = errors.New("frame: short length header")
	ErrShortFlag     = errors.New("frame: missing compression flag")
	ErrFrameTooLarge = errors.New("frame: declared length exceeds limit")
)

// Limits constrains decode memory use.
type Limits struct {
	MaxFrameBytes uint32
}

func DefaultLimits() Limits {
	return Limits{MaxFrameBytes: 8 * 1024 * 1024}
}

// Check validates a declared frame length against the limits.
func (l Limits) Check(length uint32) error {
	if length > l.MaxFrameBytes {
		return fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, length, l.MaxFrameBytes)
	}
	return nil
}

// Length returns the declared total frame length from the first four
// bytes.
func Length(b []byte) (uint32, error) {
	if len(b) < LengthLen {
		return 0, ErrShortHeader
	}
	return binary.BigEndian.Uint32(b), nil
}

// Compression reports the compression flag at byte offset 4.
func Compression(b []byte) (bool, error) {
	if len(b) < HeaderLen {
		return false, ErrShortFlag
	}
	return b[4] == 1, nil
}

// Inflate strips the frame header and zlib-inflates the payload.
//
// Inflation is unconditional: every frame observed from the relay is
// compressed regardless of what the flag says. Compression stays
// exposed for callers that ever meet an uncompressed frame.
func Inflate(b []byte) ([]byte, error) {
	if len(b) < HeaderLen {
		return nil, ErrShortFlag
	}
	zr, err := zlib.NewReader(bytes.NewReader(b[HeaderLen:]))
	if err != nil {
		return nil, fmt.Errorf("frame: open zlib stream: %w", err)
	}
	defer zr.Close()
	payload, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("frame: inflate payload: %w", err)
	}
	return payload, nil
}
