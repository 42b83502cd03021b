package game

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedState = errors.New("malformed state")
	ErrOutOfBounds    = errors.New("cell out of board bounds")
	ErrDuplicateCell  = errors.New("duplicate cell")
	ErrAlreadyGuessed = errors.New("cell already guessed")
	ErrGameOver       = errors.New("game is over - no attacks allowed")
)

func errOutOfBounds(c Cell, b Board) error {
	return fmt.Errorf("%w: %w: %v on %dx%d board", ErrMalformedState, ErrOutOfBounds, c, b.Size, b.Size)
}

func errDuplicate(c Cell) error {
	return fmt.Errorf("%w: %w: %v", ErrMalformedState, ErrDuplicateCell, c)
}
