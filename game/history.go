package game

import "fmt"

// GuessHistory is the chronological, append-only record of cells one side
// has attacked. A cell appears at most once.
type GuessHistory struct {
	order []Cell
	seen  map[Cell]struct{}
}

func NewGuessHistory(b Board, cells ...Cell) (GuessHistory, error) {
	h := GuessHistory{
		order: make([]Cell, 0, len(cells)),
		seen:  make(map[Cell]struct{}, len(cells)),
	}
	for _, c := range cells {
		if !b.InBounds(c) {
			return GuessHistory{}, errOutOfBounds(c, b)
		}
		if h.Contains(c) {
			return GuessHistory{}, errDuplicate(c)
		}
		h.order = append(h.order, c)
		h.seen[c] = struct{}{}
	}
	return h, nil
}

func MustGuessHistory(b Board, cells ...Cell) GuessHistory {
	h, err := NewGuessHistory(b, cells...)
	if err != nil {
		panic(err)
	}
	return h
}

func (h GuessHistory) Contains(c Cell) bool {
	_, ok := h.seen[c]
	return ok
}

func (h GuessHistory) Len() int {
	return len(h.order)
}

// Cells returns a copy of the history in chronological order.
func (h GuessHistory) Cells() []Cell {
	out := make([]Cell, len(h.order))
	copy(out, h.order)
	return out
}

// Last returns the most recent guess.
func (h GuessHistory) Last() (Cell, bool) {
	if len(h.order) == 0 {
		return Cell{}, false
	}
	return h.order[len(h.order)-1], true
}

// With returns a new history extended by c. The receiver is not modified, so
// sibling search branches can each extend the same parent history.
func (h GuessHistory) With(c Cell) GuessHistory {
	if h.Contains(c) {
		panic(fmt.Sprintf("cell %v already guessed", c))
	}
	order := make([]Cell, len(h.order), len(h.order)+1)
	copy(order, h.order)
	seen := make(map[Cell]struct{}, len(h.seen)+1)
	for k := range h.seen {
		seen[k] = struct{}{}
	}
	seen[c] = struct{}{}
	return GuessHistory{order: append(order, c), seen: seen}
}
