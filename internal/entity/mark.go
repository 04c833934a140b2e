package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
)

// Mark - occupant of a single cell.
type Mark int

const (
	MarkEmpty Mark = iota
	MarkX
	MarkO
)

// Glyph - returns the character used to draw the mark.
func (that Mark) Glyph() rune {
	switch that {
	case MarkX:
		return 'X'
	case MarkO:
		return 'O'
	default:
		return ' '
	}
}

func (that Mark) String() string {
	return string(that.Glyph())
}

// Opponent - returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}

// ParseMark - parses "X" or "O", case-insensitive.
func ParseMark(value string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "X":
		return MarkX, nil
	case "O":
		return MarkO, nil
	default:
		return MarkEmpty, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, value)
	}
}
