package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
)

// Move - a legal (board, cell) pair, both in 1..9.
type Move struct {
	Board int
	Cell  int
}

// MetaBoard - 3x3 arrangement of boards. Boards and cells use the same 1..9 numbering.
// The zero value is an empty game.
type MetaBoard struct {
	grid [3][3]Board
}

// Play - puts mark on cellIndex of the board at boardIndex.
// Any board may be targeted, including one that already has a winner.
func (that *MetaBoard) Play(mark Mark, boardIndex, cellIndex int) error {
	board, err := that.Board(boardIndex)
	if err != nil {
		return err
	}

	if err = board.Play(mark, cellIndex); err != nil {
		if errors.Is(err, apperror.ErrInvalidPosition) {
			return fmt.Errorf("%w on board %d: %w", apperror.ErrInvalidCellIndex, boardIndex, err)
		}

		return fmt.Errorf("board %d: %w", boardIndex, err)
	}

	return nil
}

// Board - returns the sub-board at index.
func (that *MetaBoard) Board(index int) (*Board, error) {
	row, col, ok := PositionToCoords(index)
	if !ok {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardIndex, index)
	}

	return &that.grid[row][col], nil
}

// At - returns the sub-board at row and col, both in 0..2.
func (that *MetaBoard) At(row, col int) *Board {
	return &that.grid[row][col]
}

// Victories - builds a board whose cells are the winners of each sub-board.
func (that *MetaBoard) Victories() Board {
	var winners [3][3]Mark
	for row := range 3 {
		for col := range 3 {
			winners[row][col] = that.grid[row][col].Victory()
		}
	}

	return NewBoardFromGrid(winners)
}

// Victory - returns the winner of the whole game, or MarkEmpty.
func (that *MetaBoard) Victory() Mark {
	victories := that.Victories()
	return victories.Victory()
}

// Moves - returns every legal move, ordered by board then cell.
func (that *MetaBoard) Moves() []Move {
	moves := make([]Move, 0, 81)
	for index := range 9 {
		board := &that.grid[index/3][index%3]
		for _, cell := range board.Available() {
			moves = append(moves, Move{Board: index + 1, Cell: cell})
		}
	}

	return moves
}

func (that *MetaBoard) IsFull() bool {
	for row := range 3 {
		for col := range 3 {
			if !that.grid[row][col].IsFull() {
				return false
			}
		}
	}

	return true
}
