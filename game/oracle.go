package game

type Outcome int

const (
	Miss Outcome = iota
	Hit
)

func (o Outcome) String() string {
	if o == Hit {
		return "hit"
	}
	return "miss"
}

// Evaluate classifies an attack on c. It never modifies occupied: on a hit the
// caller removes c exactly once, usually through Strike.
func Evaluate(c Cell, occupied OccupiedSet) Outcome {
	if occupied.Contains(c) {
		return Hit
	}
	return Miss
}

// Strike evaluates c and returns the resulting set: a copy without c on a hit,
// the same set on a miss.
func Strike(c Cell, occupied OccupiedSet) (Outcome, OccupiedSet) {
	outcome := Evaluate(c, occupied)
	if outcome == Hit {
		return outcome, occupied.Without(c)
	}
	return outcome, occupied
}
