// Package session owns the streaming reassembler: one background
// worker per session that turns arbitrary-sized byte chunks into an
// ordered stream of decoded messages.
//
// Ownership boundary:
// - the byte accumulator and frame extraction loop
// - the producer (chunks in) and consumer (results out) endpoints
// - the fail-fast policy after the first decode error
//
// The channels are the only cross-goroutine boundary; the accumulator
// and decoded values are owned by the worker until handed off.
package session
