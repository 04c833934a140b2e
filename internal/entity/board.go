package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
)

// WinCombos - every line of a board in scan order: rows, columns, main diagonal, anti-diagonal.
// Cells are flat indexes, 0 is the top-left corner.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// marks that can win, in the order they are checked.
var contenders = [2]Mark{MarkX, MarkO}

type winnerState uint8

const (
	winnerUnknown winnerState = iota
	winnerNone
	winnerFound
)

// Board - a single 3x3 tic-tac-toe grid.
//
// Positions are numbered as follows:
//
//	1 | 2 | 3
//	--+---+--
//	4 | 5 | 6
//	--+---+--
//	7 | 8 | 9
type Board struct {
	grid [3][3]Mark

	state  winnerState
	winner Mark
}

// NewBoardFromGrid - builds a board with the given cells already set.
func NewBoardFromGrid(grid [3][3]Mark) Board {
	return Board{grid: grid}
}

// PositionToCoords - maps a position in 1..9 to its row and column.
func PositionToCoords(position int) (int, int, bool) {
	if position < 1 || position > 9 {
		return 0, 0, false
	}

	return (position - 1) / 3, (position - 1) % 3, true
}

// Play - puts mark at position. Only X and O can be played.
// The cached winner is kept once a winner exists.
func (that *Board) Play(mark Mark, position int) error {
	row, col, ok := PositionToCoords(position)
	if !ok {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidPosition, position)
	}

	if mark != MarkX && mark != MarkO {
		return fmt.Errorf("%w: %d", apperror.ErrUnknownMark, mark)
	}

	if that.grid[row][col] != MarkEmpty {
		return fmt.Errorf("%w: position %d", apperror.ErrCellOccupied, position)
	}

	that.grid[row][col] = mark

	if that.state == winnerNone {
		that.state = winnerUnknown
	}

	return nil
}

// Victory - returns the mark owning a full line, or MarkEmpty.
func (that *Board) Victory() Mark {
	switch that.state {
	case winnerFound:
		return that.winner
	case winnerNone:
		return MarkEmpty
	case winnerUnknown:
	}

	winner := that.scan()
	if winner == MarkEmpty {
		that.state = winnerNone
	} else {
		that.state = winnerFound
		that.winner = winner
	}

	return winner
}

func (that *Board) scan() Mark {
	for _, mark := range contenders {
		for _, combo := range WinCombos {
			if that.at(combo[0]) == mark && that.at(combo[1]) == mark && that.at(combo[2]) == mark {
				return mark
			}
		}
	}

	return MarkEmpty
}

func (that *Board) at(index int) Mark {
	return that.grid[index/3][index%3]
}

// At - returns the mark at row and col, both in 0..2.
func (that *Board) At(row, col int) Mark {
	return that.grid[row][col]
}

// Cell - returns the mark at position.
func (that *Board) Cell(position int) (Mark, error) {
	row, col, ok := PositionToCoords(position)
	if !ok {
		return MarkEmpty, fmt.Errorf("%w: got %d", apperror.ErrInvalidPosition, position)
	}

	return that.grid[row][col], nil
}

// Available - returns the empty positions in ascending order.
func (that *Board) Available() []int {
	positions := make([]int, 0, 9)
	for index := range 9 {
		if that.at(index) == MarkEmpty {
			positions = append(positions, index+1)
		}
	}

	return positions
}

func (that *Board) IsFull() bool {
	return len(that.Available()) == 0
}

func (that *Board) String() string {
	lines := make([]string, 0, 5)
	for row, line := range that.grid {
		lines = append(lines, fmt.Sprintf("%s | %s | %s", line[0], line[1], line[2]))
		if row < 2 {
			lines = append(lines, "--+---+--")
		}
	}

	return strings.Join(lines, "\n")
}
