package testlog

import (
	"testing"

	"github.com/danmuck/relaywire/internal/logging"
)

func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	logger := logging.Logger("test")
	logger.Debug().Str("test", t.Name()).Msg("start")
}
