package loggertest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schmitthub/tsinit/internal/iostreams"
	"github.com/schmitthub/tsinit/internal/logger"
	"github.com/schmitthub/tsinit/internal/logger/loggertest"
)

var (
	_ iostreams.Logger = (*loggertest.TestLogger)(nil)
	_ iostreams.Logger = logger.Global{}
)

func TestNew_CapturesOutput(t *testing.T) {
	tl := loggertest.New()

	tl.Info().Str("project", "demo").Msg("hello world")

	assert.Contains(t, tl.Output(), "hello world")
	assert.Contains(t, tl.Output(), `"project":"demo"`)
}

func TestNew_Reset(t *testing.T) {
	tl := loggertest.New()

	tl.Info().Msg("first message")
	tl.Reset()
	assert.Empty(t, tl.Output())

	tl.Warn().Msg("second message")
	assert.Contains(t, tl.Output(), "second message")
}

func TestNewNop_DiscardsOutput(t *testing.T) {
	tl := loggertest.NewNop()

	tl.Error().Msg("should be discarded")

	assert.Empty(t, tl.Output())
}
