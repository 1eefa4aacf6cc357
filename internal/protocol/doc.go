// Package protocol decodes the relay wire format into typed values.
//
// Ownership boundary:
// - the closed Value union (one variant per 3-char wire tag)
// - primitive and composite (arr/hda) value decoders
// - whole-frame message decoding on top of protocol/frame
//
// The command (encoding) side of the protocol and protocol-level
// semantics (whether an hdata path names a real object) live outside
// this package.
package protocol
