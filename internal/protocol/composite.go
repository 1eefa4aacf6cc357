package protocol

import (
	"fmt"
	"strings"
)

// decodeArray reads one element-type tag, a count, then that many
// elements of the one declared type. The wire cannot express a
// heterogeneous array.
func decodeArray(b []byte) (int, Value, error) {
	elemTag, err := readTag(b)
	if err != nil {
		return 0, nil, err
	}
	pos := tagLen
	count, err := readInt32(b[pos:])
	if err != nil {
		return 0, nil, err
	}
	pos += 4
	if count < 0 {
		return 0, nil, fmt.Errorf("%w: negative array count %d", ErrMalformedBinary, count)
	}

	items := make(Array, 0, count)
	switch elemTag {
	case "str":
		for i := int32(0); i < count; i++ {
			n, v, err := decodeStr(b[pos:])
			if err != nil {
				return 0, nil, err
			}
			pos += n
			items = append(items, v)
		}
	case "int":
		for i := int32(0); i < count; i++ {
			n, v, err := decodeInt(b[pos:])
			if err != nil {
				return 0, nil, err
			}
			pos += n
			items = append(items, v)
		}
	default:
		return 0, nil, fmt.Errorf("%w: array element %q", ErrUnknownType, elemTag)
	}
	return pos, items, nil
}

// decodeHdata reads the class path, the declared key schema and the row
// count, then per row the path-derived pointers followed by each field
// in declared order. Fields carry no length prefix of their own, so a
// malformed field poisons everything after it.
func decodeHdata(b []byte) (int, Value, error) {
	pos, path, null, err := readLongString(b)
	if err != nil {
		return 0, nil, fmt.Errorf("hdata path: %w", err)
	}
	if null {
		return 0, nil, fmt.Errorf("%w: hdata with null path", ErrMalformedBinary)
	}

	n, decl, null, err := readLongString(b[pos:])
	if err != nil {
		return 0, nil, fmt.Errorf("hdata keys: %w", err)
	}
	if null {
		return 0, nil, fmt.Errorf("%w: hdata with null key declaration", ErrMalformedBinary)
	}
	pos += n

	rowCount, err := readInt32(b[pos:])
	if err != nil {
		return 0, nil, fmt.Errorf("hdata row count: %w", err)
	}
	pos += 4
	if rowCount < 0 {
		return 0, nil, fmt.Errorf("%w: negative hdata row count %d", ErrMalformedBinary, rowCount)
	}

	keys, err := parseHdataKeys(decl)
	if err != nil {
		return 0, nil, err
	}

	perRow := strings.Count(path, "/") + 1
	h := Hdata{
		Path:     path,
		Keys:     keys,
		Pointers: make([]Ptr, 0, perRow*int(rowCount)),
		Rows:     make([]HdataRow, 0, rowCount),
	}
	for r := int32(0); r < rowCount; r++ {
		for p := 0; p < perRow; p++ {
			n, ptr, err := decodePointer(b[pos:])
			if err != nil {
				return 0, nil, fmt.Errorf("hdata row %d pointer: %w", r, err)
			}
			pos += n
			h.Pointers = append(h.Pointers, ptr)
		}
		row := make(HdataRow, len(keys))
		for _, key := range keys {
			n, v, err := decodeValue(key.Type, b[pos:])
			if err != nil {
				return 0, nil, fmt.Errorf("hdata row %d field %q: %w", r, key.Name, err)
			}
			pos += n
			row[key.Name] = v
		}
		h.Rows = append(h.Rows, row)
	}
	return pos, h, nil
}

// parseHdataKeys splits the comma-separated "name:type" declaration
// that fixes each row's field order.
func parseHdataKeys(decl string) ([]HdataKey, error) {
	parts := strings.Split(decl, ",")
	keys := make([]HdataKey, 0, len(parts))
	for _, part := range parts {
		name, typ, ok := strings.Cut(part, ":")
		if !ok || name == "" || typ == "" {
			return nil, fmt.Errorf("%w: hdata key declaration %q", ErrMalformedBinary, part)
		}
		keys = append(keys, HdataKey{Name: name, Type: typ})
	}
	return keys, nil
}
