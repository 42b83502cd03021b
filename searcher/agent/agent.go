package agent

import (
	"battleship/experiments/metrics"
	"battleship/game"
	"errors"
)

var ErrNoTarget = errors.New("no cell left to attack")

type Agent interface {
	// FindTarget returns the cell player should attack next and performance
	// metrics (if collected) from the search
	FindTarget(session *game.Session, player int) (game.Cell, metrics.SearchMetric, error)
}
