package apperror

import "errors"

// board errors.
var (
	ErrInvalidPosition   = errors.New("position must be between 1 and 9")
	ErrInvalidCellIndex  = errors.New("invalid cell index")
	ErrInvalidBoardIndex = errors.New("invalid board index")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrUnknownMark       = errors.New("unknown mark")
)

// game session errors.
var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameIsNotStarted  = errors.New("game is not started")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnknownGameStatus = errors.New("unknown game status")
)
