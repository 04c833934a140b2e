package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/config"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/repository"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/service"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/usecase"
	"github.com/rocketscienceinc/ultimate-tictactoe/transport/terminal"
)

// RunApp - runs one game on the given terminal streams.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return run(ctx, logger, conf, in, out)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	seed := conf.BotSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gameRepo := repository.NewGameRepository()
	botService := service.NewBotService(seed)
	gameManager := usecase.NewGameManager(logger, gameRepo, botService)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting game", "opponent", conf.Opponent, "player_mark", conf.Mark().String())
		server := terminal.New(logger, gameManager, conf.Opponent, conf.Mark())
		errCh <- server.Run(ctx, in, out)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("terminal error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")

		// the game goroutine may be blocked in a read, closing the input releases it.
		// A blocking terminal is not interrupted by Close, that goroutine ends with the process.
		if closer, ok := in.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				log.Error("could not close input", "error", err)
			}
		}

		return nil
	}
}
