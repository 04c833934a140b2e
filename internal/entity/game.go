package entity

import (
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const (
	OpponentHuman = "human"
	OpponentBot   = "bot"
)

// Game - a single match played on a MetaBoard.
type Game struct {
	ID       string
	Board    MetaBoard
	Winner   Mark
	Status   string
	Turn     Mark
	Moves    int
	LastCell int
	Players  []*Player
	Opponent string
}

func NewGame(id, opponent string, first Mark) *Game {
	return &Game{
		ID:       id,
		Turn:     first,
		Status:   StatusWaiting,
		Opponent: opponent,
	}
}

// Start - moves a waiting game to ongoing.
func (that *Game) Start() {
	if that.IsWaiting() {
		that.Status = StatusOngoing
	}
}

// MakeTurn - plays mark on cell of board and advances the turn.
func (that *Game) MakeTurn(mark Mark, board, cell int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Play(mark, board, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Moves++
	that.LastCell = cell
	that.Turn = mark.Opponent()

	that.UpdateGameState()

	return nil
}

// UpdateGameState - finishes the game once the meta board has a winner or no move is left.
func (that *Game) UpdateGameState() {
	if winner := that.Board.Victory(); winner != MarkEmpty {
		that.finish(winner)
		return
	}

	// the meta board never reports a draw, the session ends it once every cell is taken
	if that.Board.IsFull() {
		that.finish(MarkEmpty)
	}
}

func (that *Game) finish(winner Mark) {
	that.Winner = winner
	that.Status = StatusFinished
	that.Turn = MarkEmpty
}

// SuggestedBoard - board matching the last played cell, 0 before the first move.
// It is only a hint for the player, any board stays playable.
func (that *Game) SuggestedBoard() int {
	return that.LastCell
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsTie() bool {
	return that.IsFinished() && that.Winner == MarkEmpty
}

func (that *Game) IsWithBot() bool {
	return that.Opponent == OpponentBot
}

// PlayerByMark - returns the player holding mark, or nil.
func (that *Game) PlayerByMark(mark Mark) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

// PlayerByID - returns the player with id, or nil.
func (that *Game) PlayerByID(id string) *Player {
	for _, player := range that.Players {
		if player.ID == id {
			return player
		}
	}

	return nil
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}
