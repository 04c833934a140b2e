package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/render"
)

type uGame interface {
	CreateGame(ctx context.Context, opponent string, humanMark entity.Mark) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID, playerID string, board, cell int) (*entity.Game, error)
	EndGame(ctx context.Context, id string)
}

// Server - plays one game on a text terminal.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	opponent  string
	humanMark entity.Mark
}

func New(logger *slog.Logger, uGame uGame, opponent string, humanMark entity.Mark) *Server {
	return &Server{
		logger: logger.With("component", "terminal"),
		uGame:  uGame,

		opponent:  opponent,
		humanMark: humanMark,
	}
}

// Run - reads moves from in and writes boards to out until the game ends,
// the input is exhausted or ctx is canceled.
func (that *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Run")

	game, err := that.uGame.CreateGame(ctx, that.opponent, that.humanMark)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	defer that.uGame.EndGame(ctx, game.ID)

	scanner := bufio.NewScanner(in)
	writer := &printer{out: out}

	for !game.IsFinished() {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		player := game.PlayerByMark(game.Turn)
		if player == nil {
			return fmt.Errorf("no player holds mark %s", game.Turn)
		}

		writer.println(render.Render(&game.Board, render.NoHighlight))

		prompt := fmt.Sprintf("Player %s, choose a board (1-9)", game.Turn)
		if suggested := game.SuggestedBoard(); suggested != 0 {
			prompt += fmt.Sprintf(" [suggested %d]", suggested)
		}

		board, err := that.ask(scanner, writer, prompt)
		if errors.Is(err, io.EOF) {
			log.Info("input closed, leaving game", "game_id", game.ID)
			return writer.err
		}
		if errors.Is(err, apperror.ErrInvalidInput) {
			continue
		}
		if err != nil {
			return err
		}

		writer.println(render.Render(&game.Board, board))

		cell, err := that.ask(scanner, writer, fmt.Sprintf("Player %s, choose a cell on board %d (1-9)", game.Turn, board))
		if errors.Is(err, io.EOF) {
			log.Info("input closed, leaving game", "game_id", game.ID)
			return writer.err
		}
		if errors.Is(err, apperror.ErrInvalidInput) {
			continue
		}
		if err != nil {
			return err
		}

		next, err := that.uGame.MakeTurn(ctx, game.ID, player.ID, board, cell)
		if err != nil {
			log.Debug("turn rejected", "error", err)
			writer.printf("Invalid move: %s\n", describe(err))
			continue
		}

		game = next
	}

	writer.println(render.Render(&game.Board, render.NoHighlight))

	if game.IsTie() {
		writer.println("No moves left, the game is a draw.")
	} else {
		writer.printf("Player %s wins!\n", game.Winner)
	}

	return writer.err
}

// ask - prompts and reads a number in 1..9. Invalid input is reported and returned as ErrInvalidInput.
func (that *Server) ask(scanner *bufio.Scanner, writer *printer, prompt string) (int, error) {
	writer.printf("%s: ", prompt)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		return 0, io.EOF
	}

	text := strings.TrimSpace(scanner.Text())

	value, err := strconv.Atoi(text)
	if err != nil || value < 1 || value > 9 {
		writer.printf("%q is not a number between 1 and 9\n", text)
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, text)
	}

	return value, nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "this cell is already taken"
	case errors.Is(err, apperror.ErrInvalidCellIndex):
		return "there is no such cell"
	case errors.Is(err, apperror.ErrInvalidBoardIndex):
		return "there is no such board"
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "it's not your turn"
	default:
		return err.Error()
	}
}

// printer - remembers the first write error so the game loop stays readable.
type printer struct {
	out io.Writer
	err error
}

func (that *printer) printf(format string, args ...any) {
	if that.err != nil {
		return
	}

	_, that.err = fmt.Fprintf(that.out, format, args...)
}

func (that *printer) println(text string) {
	that.printf("%s\n", text)
}
