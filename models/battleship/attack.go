package battleship

type Outcome uint8

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeDestroyed
	OutcomeRepeatMiss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeDestroyed:
		return "destroyed"
	case OutcomeRepeatMiss:
		return "repeat miss"
	default:
		return "miss"
	}
}

// Attack resolves a strike by player attacker at (row, col).
//
// Out of bounds strikes, empty cells, wreckage and segments that were
// already hit are all misses. Striking a ship's start cell destroys it
// regardless of the state of its other segments.
func (b *Board) Attack(attacker, row, col int) Outcome {
	c := NewCoordinates(row, col)
	if !b.grid.InBounds(c) {
		return OutcomeMiss
	}

	if b.history != nil && b.history.mark(c) {
		return OutcomeRepeatMiss
	}

	slot := b.grid.At(c)
	if slot == PositionStateEmpty {
		return OutcomeMiss
	}

	ship := b.ships[slot]
	if ship.IsDestroyed() {
		return OutcomeMiss
	}

	var outcome Outcome
	switch {
	case c == ship.Start:
		b.sink(ship)
		outcome = OutcomeDestroyed

	case !ship.hitSegment(ship.segmentOf(c)):
		return OutcomeMiss

	case ship.isSunk():
		b.sink(ship)
		outcome = OutcomeDestroyed

	default:
		outcome = OutcomeHit
	}

	if b.notify != nil {
		b.notify(HitReport{
			Attacker:    attacker,
			Ship:        ship.Type,
			Coordinates: c,
			Outcome:     outcome,
		})
	}
	return outcome
}

// sink is the only place a ship leaves the remaining count.
func (b *Board) sink(ship *Ship) {
	ship.destroy()
	b.shipsRemaining--
}

// AttackedCells is always 0 when attacks are not remembered.
func (b *Board) AttackedCells() int {
	if b.history == nil {
		return 0
	}
	return b.history.count()
}
