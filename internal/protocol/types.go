package protocol

import "strings"

// Kind identifies the wire type of a decoded Value. The set is closed:
// a new tag is a protocol version change, not an extension point.
type Kind uint8

const (
	KindChar Kind = iota
	KindInt
	KindLong
	KindString
	KindStringNull
	KindBuffer
	KindBufferNull
	KindPointer
	KindTime
	KindArray
	KindHdata
)

func (k Kind) String() string {
	switch k {
	case KindChar:
		return "char"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindString:
		return "string"
	case KindStringNull:
		return "string-null"
	case KindBuffer:
		return "buffer"
	case KindBufferNull:
		return "buffer-null"
	case KindPointer:
		return "pointer"
	case KindTime:
		return "time"
	case KindArray:
		return "array"
	case KindHdata:
		return "hdata"
	default:
		return "unknown"
	}
}

// Value is one decoded wire element.
type Value interface {
	Kind() Kind
}

// Char is a single Unicode scalar decoded from one byte.
type Char rune

// Int is a signed 32-bit integer.
type Int int32

// Long is a signed 64-bit integer, transmitted as a decimal string.
type Long int64

// Str is a present string; absence is StrNull, never the empty Str.
type Str string

// StrNull is an explicitly absent string.
type StrNull struct{}

// Buf is a present opaque blob, lossily decoded as text.
type Buf string

// BufNull is an explicitly absent buffer.
type BufNull struct{}

// Ptr is a remote object handle rendered as "0x" + hex digits.
// The null pointer renders as "0x0".
type Ptr string

// Time is a decimal timestamp kept verbatim as text.
type Time string

// Array is an ordered, homogeneously-typed element sequence.
type Array []Value

func (Char) Kind() Kind    { return KindChar }
func (Int) Kind() Kind     { return KindInt }
func (Long) Kind() Kind    { return KindLong }
func (Str) Kind() Kind     { return KindString }
func (StrNull) Kind() Kind { return KindStringNull }
func (Buf) Kind() Kind     { return KindBuffer }
func (BufNull) Kind() Kind { return KindBufferNull }
func (Ptr) Kind() Kind     { return KindPointer }
func (Time) Kind() Kind    { return KindTime }
func (Array) Kind() Kind   { return KindArray }
func (Hdata) Kind() Kind   { return KindHdata }

// HdataKey is one declared field: its name and 3-char wire type.
type HdataKey struct {
	Name string
	Type string
}

// HdataRow maps declared field names to their decoded values. Field
// order is the Keys order on the owning Hdata, not the map's.
type HdataRow map[string]Value

// Hdata is the compound-object encoding: a slash-separated class path,
// the declared field schema, the pointers for all rows flattened in
// decode order, and the rows themselves.
type Hdata struct {
	Path     string
	Keys     []HdataKey
	Pointers []Ptr
	Rows     []HdataRow
}

// PointersPerRow derives how many pointers precede each row's fields:
// one per class named in the path.
func (h Hdata) PointersPerRow() int {
	return strings.Count(h.Path, "/") + 1
}

// Message is one decoded frame: its identifier and the ordered values
// of its payload. Frames carrying a null identifier get the default id
// "test" (the relay's out-of-band test frames).
type Message struct {
	ID   string
	Data []Value
}
