package engine

import (
	"battleship/game"
	"fmt"

	"golang.org/x/exp/rand"
)

// NewSession places both fleets at random and opens a session.
func NewSession(board game.Board, fleet []game.ShipClass, names [2]string, rng *rand.Rand) (*game.Session, error) {
	var fleets [2][]game.Ship
	for i := range fleets {
		ships, err := game.PlaceFleet(board, fleet, rng)
		if err != nil {
			return nil, fmt.Errorf("failed to place fleet of %s: %w", names[i], err)
		}
		fleets[i] = ships
	}
	return game.NewSession(board, names, fleets)
}
