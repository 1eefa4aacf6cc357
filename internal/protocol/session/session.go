package session

import (
	"github.com/rs/zerolog"

	"github.com/danmuck/relaywire/internal/protocol"
	"github.com/danmuck/relaywire/internal/protocol/frame"
)

// Result is one reassembler output: a decoded message, or the first
// and only error the session will ever emit.
type Result struct {
	Msg *protocol.Message
	Err error
}

// Config sizes a session's channels and frame limits.
type Config struct {
	Limits     frame.Limits
	ChanBuffer int
	Logger     zerolog.Logger
}

func DefaultConfig() Config {
	return Config{
		Limits:     frame.DefaultLimits(),
		ChanBuffer: 64,
		Logger:     zerolog.Nop(),
	}
}

// Session owns one reassembler worker. Feed bytes in any chunking; the
// worker extracts complete frames in FIFO order and decodes them
// strictly serialized, so Results preserves input frame order.
type Session struct {
	in  chan []byte
	out chan Result
}

// New starts the background worker and returns the session endpoints.
func New(cfg Config) *Session {
	if cfg.ChanBuffer <= 0 {
		cfg.ChanBuffer = DefaultConfig().ChanBuffer
	}
	if cfg.Limits.MaxFrameBytes == 0 {
		cfg.Limits = frame.DefaultLimits()
	}
	s := &Session{
		in:  make(chan []byte, cfg.ChanBuffer),
		out: make(chan Result, cfg.ChanBuffer),
	}
	go s.run(cfg)
	return s
}

// Feed hands one chunk of raw bytes to the worker. Chunk boundaries
// are arbitrary: a frame may span chunks and a chunk may carry several
// frames. The worker owns the slice from here on; callers must not
// mutate it after Feed returns.
func (s *Session) Feed(chunk []byte) {
	s.in <- chunk
}

// Input is the raw producer endpoint behind Feed.
func (s *Session) Input() chan<- []byte {
	return s.in
}

// Results is the consumer endpoint. It is closed when the input closes
// and all buffered frames were handled, or after the first error.
func (s *Session) Results() <-chan Result {
	return s.out
}

// Close ends the input stream; the worker finishes whatever is
// buffered and closes Results without emitting an error.
func (s *Session) Close() {
	close(s.in)
}

func (s *Session) run(cfg Config) {
	defer close(s.out)
	var buf []byte
	for chunk := range s.in {
		buf = append(buf, chunk...)
		for len(buf) > frame.LengthLen {
			length, err := frame.Length(buf)
			if err != nil {
				s.fail(cfg, err)
				return
			}
			if err := cfg.Limits.Check(length); err != nil {
				s.fail(cfg, err)
				return
			}
			if uint32(len(buf)) < length {
				// Short final frame: wait for more bytes.
				break
			}
			raw := buf[:length]
			msg, err := protocol.DecodeMessage(raw)
			if err != nil {
				s.fail(cfg, err)
				return
			}
			buf = buf[length:]
			cfg.Logger.Debug().
				Str("id", msg.ID).
				Int("values", len(msg.Data)).
				Uint32("frame_bytes", length).
				Msg("frame decoded")
			s.out <- Result{Msg: msg}
		}
	}
}

// fail emits the one fatal error and permanently stops processing.
// Input is still drained (and discarded) until the producer closes it,
// so a producer unaware of the failure never blocks.
func (s *Session) fail(cfg Config, err error) {
	cfg.Logger.Error().Err(err).Msg("decode failed, session halted")
	s.out <- Result{Err: err}
	go func() {
		for range s.in {
		}
	}()
}
