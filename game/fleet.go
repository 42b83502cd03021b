package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const maxPlacementAttempts = 1000

// ShipClass is a named ship length in a fleet.
type ShipClass struct {
	Name   string
	Length int
}

// StandardFleet is the classic five-ship fleet.
var StandardFleet = []ShipClass{
	{Name: "Carrier", Length: 5},
	{Name: "Battleship", Length: 4},
	{Name: "Cruiser", Length: 3},
	{Name: "Submarine", Length: 3},
	{Name: "Destroyer", Length: 2},
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Ship is a placed ship.
type Ship struct {
	ShipClass
	Cells []Cell
}

// NewShip lays a ship of the given class from origin along orientation.
func NewShip(class ShipClass, origin Cell, o Orientation) Ship {
	cells := make([]Cell, class.Length)
	for i := range cells {
		if o == Horizontal {
			cells[i] = Cell{Row: origin.Row, Col: origin.Col + i}
		} else {
			cells[i] = Cell{Row: origin.Row + i, Col: origin.Col}
		}
	}
	return Ship{ShipClass: class, Cells: cells}
}

// Occupied collects every ship cell into a validated set. Overlapping or
// out-of-bounds ships make the set malformed.
func Occupied(b Board, ships []Ship) (OccupiedSet, error) {
	cells := []Cell{}
	for _, ship := range ships {
		cells = append(cells, ship.Cells...)
	}
	return NewOccupiedSet(b, cells...)
}

// PlaceFleet places every ship at a random orientation and origin, retrying
// until it neither leaves the board nor overlaps an earlier ship.
func PlaceFleet(b Board, fleet []ShipClass, rng *rand.Rand) ([]Ship, error) {
	taken := map[Cell]bool{}
	ships := make([]Ship, 0, len(fleet))
	for _, class := range fleet {
		if class.Length <= 0 || class.Length > b.Size {
			return nil, fmt.Errorf("%s of length %d does not fit a %dx%d board", class.Name, class.Length, b.Size, b.Size)
		}

		placed := false
		for attempt := 0; attempt < maxPlacementAttempts && !placed; attempt++ {
			o := Orientation(rng.Intn(2))
			origin := Cell{Row: rng.Intn(b.Size), Col: rng.Intn(b.Size)}
			ship := NewShip(class, origin, o)
			if !fits(b, ship, taken) {
				continue
			}
			for _, c := range ship.Cells {
				taken[c] = true
			}
			ships = append(ships, ship)
			placed = true
		}
		if !placed {
			return nil, fmt.Errorf("failed to place %s after %d attempts", class.Name, maxPlacementAttempts)
		}
	}
	return ships, nil
}

func fits(b Board, ship Ship, taken map[Cell]bool) bool {
	for _, c := range ship.Cells {
		if !b.InBounds(c) || taken[c] {
			return false
		}
	}
	return true
}

// FleetFor trims StandardFleet to what fits a board of the given size: ships
// no longer than a side, covering at most a third of the board.
func FleetFor(b Board) []ShipClass {
	limit := max(b.Area()/3, 2)
	fleet := []ShipClass{}
	total := 0
	for _, class := range StandardFleet {
		if class.Length <= b.Size && total+class.Length <= limit {
			fleet = append(fleet, class)
			total += class.Length
		}
	}
	return fleet
}
