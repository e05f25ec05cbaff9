package lifecycle

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptAnswers(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("3 4\nQuit\n"), &out)

	line, err := p.Prompt(context.Background(), "size: ")
	require.NoError(t, err)
	assert.Equal(t, "3 4", line)
	assert.Equal(t, "size: ", out.String())

	_, err = p.Prompt(context.Background(), "> ")
	assert.ErrorIs(t, err, ErrQuit)

	_, err = p.Prompt(context.Background(), "> ")
	assert.ErrorIs(t, err, ErrQuit, "end of input")
}

func TestPromptCancelledWhileWaiting(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := NewLinePrompter(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := p.Prompt(ctx, "> ")
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("prompt kept waiting for input after cancel")
	}

	go func() { _, _ = io.WriteString(w, "h 0 0 1\n") }()
	line, err := p.Prompt(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "h 0 0 1", line, "a line typed after the cancel is not lost")
}
