package protocol

import (
	"fmt"

	"github.com/danmuck/relaywire/internal/protocol/frame"
)

// defaultMessageID names frames whose wire identifier is null; the
// relay sends those for out-of-band test frames.
const defaultMessageID = "test"

// DecodeMessage decodes the complete bytes of exactly one frame. It is
// the stateless entry point for callers that already have message
// boundaries; the streaming session sits on top of it.
func DecodeMessage(raw []byte) (*Message, error) {
	payload, err := frame.Inflate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBinary, err)
	}

	skip, id, null, err := readLongString(payload)
	if err != nil {
		return nil, fmt.Errorf("message id: %w", err)
	}
	if null {
		id = defaultMessageID
	}

	data, err := decodePayload(payload[skip:])
	if err != nil {
		return nil, err
	}
	return &Message{ID: id, Data: data}, nil
}
