package game

import "fmt"

const DefaultBoardSize = 10

// Cell is a single grid coordinate, 0-indexed.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board is the fixed N×N coordinate space shared by both sides.
type Board struct {
	Size int
}

func NewBoard(size int) Board {
	if size <= 0 {
		panic("board size must be positive")
	}
	return Board{Size: size}
}

func (b Board) Area() int {
	return b.Size * b.Size
}

func (b Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.Size && c.Col >= 0 && c.Col < b.Size
}

// CellAt maps a scan index in [0, Area) to its cell.
func (b Board) CellAt(i int) Cell {
	return Cell{Row: i / b.Size, Col: i % b.Size}
}

// Cells enumerates the board in scan order: row-major, column-minor.
func (b Board) Cells() []Cell {
	cells := make([]Cell, 0, b.Area())
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			cells = append(cells, Cell{Row: row, Col: col})
		}
	}
	return cells
}

// Available returns the cells not present in history, in scan order.
func (b Board) Available(history GuessHistory) []Cell {
	cells := make([]Cell, 0, max(b.Area()-history.Len(), 0))
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			c := Cell{Row: row, Col: col}
			if !history.Contains(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}
