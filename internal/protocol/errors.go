package protocol

import "errors"

var (
	ErrMalformedBinary = errors.New("protocol: malformed binary data")
	ErrUnknownType     = errors.New("protocol: unknown type tag")
)
