package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService - creates a bot that plays random legal moves.
func NewBotService(seed int64) BotService {
	return &botService{
		rnd: rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

// MakeTurn - plays one move for the bot player of the game.
// The suggested board is preferred while it has a free cell.
func (that *botService) MakeTurn(game *entity.Game) (entity.Move, error) {
	botPlayer := game.PlayerByMark(game.Turn)
	if botPlayer == nil || !botPlayer.IsBot() {
		return entity.Move{}, ErrBotNotFound
	}

	move, err := that.chooseMove(game)
	if err != nil {
		return entity.Move{}, err
	}

	if err = game.MakeTurn(botPlayer.Mark, move.Board, move.Cell); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}

func (that *botService) chooseMove(game *entity.Game) (entity.Move, error) {
	if suggested := game.SuggestedBoard(); suggested != 0 {
		board, err := game.Board.Board(suggested)
		if err == nil {
			if cells := board.Available(); len(cells) > 0 {
				return entity.Move{Board: suggested, Cell: cells[that.rnd.Intn(len(cells))]}, nil
			}
		}
	}

	moves := game.Board.Moves()
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return moves[that.rnd.Intn(len(moves))], nil
}
