package protocol

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Every decoder below takes a slice positioned just past the element's
// 3-char type tag and returns how many bytes it consumed. Callers
// advance by exactly that amount; nothing reads past its container.

func readInt32(b []byte) (int32, error) {
	if len(b) < 4 {
		return 0, fmt.Errorf("%w: need 4 bytes for int, have %d", ErrMalformedBinary, len(b))
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// readShortString reads a u8-length-prefixed string (lon/ptr/tim wire
// layout).
func readShortString(b []byte) (int, string, error) {
	if len(b) < 1 {
		return 0, "", fmt.Errorf("%w: missing length byte", ErrMalformedBinary)
	}
	n := int(b[0])
	if len(b) < 1+n {
		return 0, "", fmt.Errorf("%w: short value: need %d bytes, have %d", ErrMalformedBinary, n, len(b)-1)
	}
	return 1 + n, lossyString(b[1 : 1+n]), nil
}

// readLongString reads an i32-length-prefixed string (str/buf wire
// layout). Length 0 is the present empty string; length -1 is the
// distinct null case, reported via the bool. Any other negative length
// is undefined input.
func readLongString(b []byte) (n int, s string, null bool, err error) {
	size, err := readInt32(b)
	if err != nil {
		return 0, "", false, err
	}
	switch {
	case size == 0:
		return 4, "", false, nil
	case size == -1:
		return 4, "", true, nil
	case size < 0:
		return 0, "", false, fmt.Errorf("%w: invalid string length %d", ErrMalformedBinary, size)
	}
	end := 4 + int(size)
	if len(b) < end {
		return 0, "", false, fmt.Errorf("%w: short string: need %d bytes, have %d", ErrMalformedBinary, size, len(b)-4)
	}
	return end, lossyString(b[4:end]), false, nil
}

// lossyString replaces invalid UTF-8 with U+FFFD; malformed text is
// never fatal.
func lossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}

func decodeChar(b []byte) (int, Value, error) {
	if len(b) < 1 {
		return 0, nil, fmt.Errorf("%w: missing char byte", ErrMalformedBinary)
	}
	return 1, Char(rune(b[0])), nil
}

func decodeInt(b []byte) (int, Value, error) {
	v, err := readInt32(b)
	if err != nil {
		return 0, nil, err
	}
	return 4, Int(v), nil
}

func decodeLong(b []byte) (int, Value, error) {
	n, digits, err := readShortString(b)
	if err != nil {
		return 0, nil, err
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: long is not a decimal integer: %q", ErrMalformedBinary, digits)
	}
	return n, Long(v), nil
}

func decodeStr(b []byte) (int, Value, error) {
	n, s, null, err := readLongString(b)
	if err != nil {
		return 0, nil, err
	}
	if null {
		return n, StrNull{}, nil
	}
	return n, Str(s), nil
}

func decodeBuf(b []byte) (int, Value, error) {
	n, s, null, err := readLongString(b)
	if err != nil {
		return 0, nil, err
	}
	if null {
		return n, BufNull{}, nil
	}
	return n, Buf(s), nil
}

// decodePointer keeps the digits exactly as transmitted, "0x"-prefixed.
// A zero-length digit payload is the null pointer, "0x0".
func decodePointer(b []byte) (int, Ptr, error) {
	n, digits, err := readShortString(b)
	if err != nil {
		return 0, "", err
	}
	if digits == "" {
		digits = "0"
	}
	return n, Ptr("0x" + digits), nil
}

func decodeTime(b []byte) (int, Value, error) {
	n, s, err := readShortString(b)
	if err != nil {
		return 0, nil, err
	}
	return n, Time(s), nil
}
