package protocol

import "fmt"

const tagLen = 3

// readTag reads the 3-char ASCII type tag in front of every element.
func readTag(b []byte) (string, error) {
	if len(b) < tagLen {
		return "", fmt.Errorf("%w: short type tag", ErrMalformedBinary)
	}
	return lossyString(b[:tagLen]), nil
}

// decodeValue dispatches a tag to its decoder. The tag set is closed;
// anything else is ErrUnknownType carrying the offending tag text.
func decodeValue(tag string, b []byte) (int, Value, error) {
	switch tag {
	case "chr":
		return decodeChar(b)
	case "int":
		return decodeInt(b)
	case "lon":
		return decodeLong(b)
	case "str":
		return decodeStr(b)
	case "buf":
		return decodeBuf(b)
	case "ptr":
		n, p, err := decodePointer(b)
		if err != nil {
			return 0, nil, err
		}
		return n, p, nil
	case "tim":
		return decodeTime(b)
	case "arr":
		return decodeArray(b)
	case "hda":
		return decodeHdata(b)
	default:
		return 0, nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}
}

// decodePayload walks a sequence of tagged elements until the buffer is
// exhausted exactly. A truncated trailing element surfaces as the
// decoder's own ErrMalformedBinary; there is no partial recovery.
func decodePayload(b []byte) ([]Value, error) {
	values := make([]Value, 0, 8)
	for pos := 0; pos < len(b); {
		tag, err := readTag(b[pos:])
		if err != nil {
			return nil, err
		}
		pos += tagLen
		n, v, err := decodeValue(tag, b[pos:])
		if err != nil {
			return nil, err
		}
		pos += n
		values = append(values, v)
	}
	return values, nil
}
