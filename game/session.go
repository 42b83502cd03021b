package game

import (
	"fmt"

	"github.com/google/uuid"
)

const NoWinner = -1

// Player is one side of a session: its placed fleet, the cells of it still
// afloat, and the guesses it has made against the other side.
type Player struct {
	Name    string
	Ships   []Ship
	Afloat  OccupiedSet
	Guesses GuessHistory
	Sunk    []string
}

// AttackResult reports the resolution of a single attack.
type AttackResult struct {
	Attacker int
	Cell     Cell
	Outcome  Outcome
	Sunk     string // name of the ship sunk by this attack, "" otherwise
	Winner   bool
}

// Session owns the authoritative mutable state of one game. Searchers only
// ever see copies of it through BeliefState.
type Session struct {
	ID      string
	Board   Board
	Players [2]*Player
	Current int // index of the player to move
	Turn    int
	winner  int
}

func NewSession(b Board, names [2]string, fleets [2][]Ship) (*Session, error) {
	s := &Session{
		ID:     uuid.NewString()[:6],
		Board:  b,
		winner: NoWinner,
	}
	for i := range s.Players {
		afloat, err := Occupied(b, fleets[i])
		if err != nil {
			return nil, fmt.Errorf("fleet of %s: %w", names[i], err)
		}
		s.Players[i] = &Player{
			Name:    names[i],
			Ships:   fleets[i],
			Afloat:  afloat,
			Guesses: MustGuessHistory(b),
		}
	}
	return s, nil
}

func opponent(player int) int {
	return 1 - player
}

// Winner returns the index of the winning player or NoWinner.
func (s *Session) Winner() int {
	return s.winner
}

func (s *Session) Over() bool {
	return s.winner != NoWinner
}

// Attack resolves the current player's attack on cell and passes the turn.
func (s *Session) Attack(cell Cell) (AttackResult, error) {
	if s.Over() {
		return AttackResult{}, ErrGameOver
	}
	if !s.Board.InBounds(cell) {
		return AttackResult{}, errOutOfBounds(cell, s.Board)
	}
	attacker := s.Players[s.Current]
	defender := s.Players[opponent(s.Current)]
	if attacker.Guesses.Contains(cell) {
		return AttackResult{}, fmt.Errorf("%w: %v by %s", ErrAlreadyGuessed, cell, attacker.Name)
	}

	result := AttackResult{Attacker: s.Current, Cell: cell}
	result.Outcome, defender.Afloat = Strike(cell, defender.Afloat)
	attacker.Guesses = attacker.Guesses.With(cell)

	if result.Outcome == Hit {
		if ship, ok := defender.sunkBy(cell); ok {
			defender.Sunk = append(defender.Sunk, ship.Name)
			result.Sunk = ship.Name
		}
		if defender.Afloat.Empty() {
			s.winner = s.Current
			result.Winner = true
		}
	}

	s.Current = opponent(s.Current)
	s.Turn++
	return result, nil
}

// sunkBy returns the ship containing cell if none of its cells remain afloat.
func (p *Player) sunkBy(cell Cell) (Ship, bool) {
	for _, ship := range p.Ships {
		contains := false
		afloat := false
		for _, c := range ship.Cells {
			if c == cell {
				contains = true
			}
			if p.Afloat.Contains(c) {
				afloat = true
			}
		}
		if contains && !afloat {
			return ship, true
		}
	}
	return Ship{}, false
}

// BeliefState builds the search state for player. With perfect information
// the opponent's afloat cells are exact; otherwise every cell the player has
// not yet attacked is treated as possibly occupied.
func (s *Session) BeliefState(player int, perfect bool) State {
	me := s.Players[player]
	them := s.Players[opponent(player)]

	believed := them.Afloat.Clone()
	if !perfect {
		believed = MustOccupiedSet(s.Board, s.Board.Available(me.Guesses)...)
	}

	return State{
		Board:           s.Board,
		OwnShips:        me.Afloat.Clone(),
		OpponentShips:   believed,
		OwnGuesses:      me.Guesses,
		OpponentGuesses: them.Guesses,
	}
}
