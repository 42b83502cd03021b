package game

import (
	"maps"
	"slices"
)

// OccupiedSet holds the cells still carrying an un-hit ship segment for one
// side. It only ever shrinks.
type OccupiedSet struct {
	cells map[Cell]struct{}
}

// NewOccupiedSet validates cells against the board and rejects duplicates.
func NewOccupiedSet(b Board, cells ...Cell) (OccupiedSet, error) {
	set := OccupiedSet{cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		if !b.InBounds(c) {
			return OccupiedSet{}, errOutOfBounds(c, b)
		}
		if set.Contains(c) {
			return OccupiedSet{}, errDuplicate(c)
		}
		set.cells[c] = struct{}{}
	}
	return set, nil
}

// MustOccupiedSet is NewOccupiedSet for fixtures known to be valid.
func MustOccupiedSet(b Board, cells ...Cell) OccupiedSet {
	set, err := NewOccupiedSet(b, cells...)
	if err != nil {
		panic(err)
	}
	return set
}

func (s OccupiedSet) Contains(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

func (s OccupiedSet) Len() int {
	return len(s.cells)
}

func (s OccupiedSet) Empty() bool {
	return len(s.cells) == 0
}

func (s OccupiedSet) Clone() OccupiedSet {
	return OccupiedSet{cells: maps.Clone(s.cells)}
}

// Without returns a copy of the set minus c. The receiver is left untouched.
func (s OccupiedSet) Without(c Cell) OccupiedSet {
	clone := s.Clone()
	if clone.cells != nil {
		delete(clone.cells, c)
	}
	return clone
}

// Remove deletes c in place and reports whether it was present. Only call it
// on a set the caller owns outright, such as a fresh Clone.
func (s *OccupiedSet) Remove(c Cell) bool {
	if !s.Contains(c) {
		return false
	}
	delete(s.cells, c)
	return true
}

// Cells lists the set in scan order.
func (s OccupiedSet) Cells() []Cell {
	cells := slices.Collect(maps.Keys(s.cells))
	slices.SortFunc(cells, compareCells)
	return cells
}

func compareCells(a, b Cell) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}
