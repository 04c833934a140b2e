// Package render draws a MetaBoard as a fixed 36x36 character grid.
package render

import (
	"strings"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

const (
	// Size - number of lines and columns of a rendered meta board.
	Size = 3 * blockSize

	// NoHighlight - highlight value that disables the move overlay.
	NoHighlight = 0

	blockSize = 12
	stride    = 4
)

// separators inside a block, in block-local coordinates.
var separators = [2]int{3, 7}

// Render - returns the meta board as 36 newline-joined lines of 36 characters.
//
// When highlight is a board index in 1..9 the cells of that board show the digits 1..9
// instead of their marks, so a player can see which number selects which cell.
// Any other highlight value draws the board as is.
func Render(meta *entity.MetaBoard, highlight int) string {
	grid := emptyGrid()

	drawMarks(&grid, meta)

	if highlight >= 1 && highlight <= 9 {
		drawOverlay(&grid, highlight)
	}

	lines := make([]string, 0, Size)
	for _, line := range grid {
		lines = append(lines, string(line[:]))
	}

	return strings.Join(lines, "\n")
}

// emptyGrid - draws the frame of every board.
func emptyGrid() [Size][Size]rune {
	var grid [Size][Size]rune
	for row := range grid {
		for col := range grid[row] {
			grid[row][col] = ' '
		}
	}

	for blockRow := range 3 {
		for blockCol := range 3 {
			top, left := blockRow*blockSize, blockCol*blockSize

			for _, sep := range separators {
				for offset := range blockSize - 1 {
					grid[top+sep][left+offset] = '-'
					grid[top+offset][left+sep] = '|'
				}
			}

			for _, row := range separators {
				for _, col := range separators {
					grid[top+row][left+col] = '+'
				}
			}
		}
	}

	return grid
}

func drawMarks(grid *[Size][Size]rune, meta *entity.MetaBoard) {
	for boardRow := range 3 {
		for boardCol := range 3 {
			board := meta.At(boardRow, boardCol)
			top, left := origin(boardRow, boardCol)

			for line := range 3 {
				for column := range 3 {
					grid[top+stride*line][left+stride*column] = board.At(line, column).Glyph()
				}
			}
		}
	}
}

func drawOverlay(grid *[Size][Size]rune, highlight int) {
	top, left := origin((highlight-1)/3, (highlight-1)%3)

	for index := range 9 {
		grid[top+stride*(index/3)][left+stride*(index%3)] = rune('1' + index)
	}
}

// origin - position of the top-left cell of a board.
func origin(boardRow, boardCol int) (int, int) {
	return boardRow*blockSize + 1, boardCol*blockSize + 1
}
