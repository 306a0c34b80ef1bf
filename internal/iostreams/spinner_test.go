package iostreams

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinnerFrame(t *testing.T) {
	cs := NewColorScheme(false, "none")

	assert.Equal(t, "⠋ Loading", SpinnerFrame(0, "Loading", cs))
	assert.Equal(t, "⠙", SpinnerFrame(1, "", cs))
	assert.Equal(t, "⠋", SpinnerFrame(len(spinnerFrames), "", cs))
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerRunner_AnimatesAndClears(t *testing.T) {
	w := &syncBuffer{}
	r := newSpinnerRunner("Installing", NewColorScheme(false, "none"), w)
	r.Start()

	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(w.String()), []byte("Installing"))
	}, 2*time.Second, 20*time.Millisecond)

	r.Stop()
	r.Stop() // second stop is a no-op

	assert.True(t, bytes.HasSuffix([]byte(w.String()), []byte("\r\033[K")))
}

func TestIOStreams_SpinnerUpdatesLabel(t *testing.T) {
	w := &syncBuffer{}
	ios := &IOStreams{Out: &bytes.Buffer{}, ErrOut: w}
	ios.SetProgressIndicatorEnabled(true)

	ios.StartSpinner("first")
	ios.StartSpinner("second")

	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(w.String()), []byte("second"))
	}, 2*time.Second, 20*time.Millisecond)

	ios.StopSpinner()
	ios.StopSpinner()
}
