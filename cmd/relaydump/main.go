// relaydump replays a captured relay byte stream through a decoding
// session and logs every message it contains.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/danmuck/relaywire/internal/config"
	"github.com/danmuck/relaywire/internal/logging"
	"github.com/danmuck/relaywire/internal/protocol/frame"
	"github.com/danmuck/relaywire/internal/protocol/session"
)

func main() {
	var (
		configPath string
		inputPath  string
		chunkSize  int
	)
	pflag.StringVarP(&configPath, "config", "c", "", "path to relaywire.toml")
	pflag.StringVarP(&inputPath, "input", "i", "-", "capture file of raw relay frames (- for stdin)")
	pflag.IntVar(&chunkSize, "chunk-size", 4096, "read size used when feeding the session")
	pflag.Parse()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if chunkSize <= 0 {
		fmt.Fprintln(os.Stderr, "relaydump: chunk-size must be positive")
		os.Exit(1)
	}

	logging.Apply(logging.Config{
		Level:     logging.ParseLevel(cfg.Log.Level),
		Timestamp: cfg.Log.Timestamp,
		NoColor:   cfg.Log.NoColor,
	})
	log := logging.Logger("relaydump")

	var in io.Reader = os.Stdin
	if inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			log.Fatal().Err(err).Msg("open capture")
		}
		defer f.Close()
		in = f
	}

	sess := session.New(session.Config{
		Limits:     frame.Limits{MaxFrameBytes: cfg.Session.MaxFrameBytes},
		ChanBuffer: cfg.Session.ChanBuffer,
		Logger:     logging.Logger("session"),
	})

	go feed(sess, in, chunkSize, log)

	for res := range sess.Results() {
		if res.Err != nil {
			log.Error().Err(res.Err).Msg("decode failed, stream abandoned")
			os.Exit(1)
		}
		log.Info().
			Str("id", res.Msg.ID).
			Int("values", len(res.Msg.Data)).
			Msg("message")
		for i, v := range res.Msg.Data {
			log.Debug().Int("index", i).Stringer("kind", v.Kind()).Msg("value")
		}
	}
}

// feed copies the capture into the session in fixed-size chunks; the
// session is free to see frames split or coalesced arbitrarily.
func feed(sess *session.Session, in io.Reader, chunkSize int, log zerolog.Logger) {
	defer sess.Close()
	buf := make([]byte, chunkSize)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			sess.Feed(chunk)
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("read capture")
			return
		}
	}
}
