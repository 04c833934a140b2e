package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/config"
)

func TestRunApp(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	conf := &config.Config{LogLevel: "info", Opponent: "bot", PlayerMark: "O", BotSeed: 3}
	out := &bytes.Buffer{}

	// When: running with no input at all
	err := RunApp(logger, conf, strings.NewReader(""), out)

	// Then: the bot opened, the human was asked once and the app stopped cleanly
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Player O, choose a board (1-9) [suggested")
}

// firstWrite signals once something was written.
type firstWrite struct {
	once    sync.Once
	written chan struct{}
}

func (that *firstWrite) Write(p []byte) (int, error) {
	that.once.Do(func() { close(that.written) })
	return len(p), nil
}

func TestRun_ClosesInputOnCancel(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	conf := &config.Config{LogLevel: "info", Opponent: "human", PlayerMark: "X", BotSeed: 1}

	// Given: a game waiting on an input that never sends anything
	reader, writer := io.Pipe()
	out := &firstWrite{written: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-out.written
		cancel()
	}()

	// When: the context is canceled while the game waits for input
	err := run(ctx, logger, conf, reader, out)

	// Then: run returns and the input is closed, which releases the pending read
	require.NoError(t, err)
	_, err = writer.Write([]byte("1\n"))
	require.ErrorIs(t, err, io.ErrClosedPipe)
}
