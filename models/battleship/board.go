package battleship

import (
	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

// MaxBoardArea caps rows*cols so an oversized board fails construction
// instead of exhausting memory.
const MaxBoardArea = 1 << 20

// RepeatAttackRule decides what attacking an already attacked cell means.
type RepeatAttackRule uint8

const (
	// Attacks are not remembered; repeating one resolves it again.
	RepeatAttackAllowed RepeatAttackRule = iota
	// Attacked cells are remembered and a repeat yields OutcomeRepeatMiss.
	RepeatAttackLosesTurn
)

func ParseRepeatAttackRule(s string) (RepeatAttackRule, error) {
	switch s {
	case "", "allow":
		return RepeatAttackAllowed, nil
	case "lose-turn":
		return RepeatAttackLosesTurn, nil
	default:
		return 0, cerr.ErrUnknownRepeatAttackRule(s)
	}
}

func (r RepeatAttackRule) String() string {
	if r == RepeatAttackLosesTurn {
		return "lose-turn"
	}
	return "allow"
}

type HitReport struct {
	Attacker    int
	Ship        ShipType
	Coordinates Coordinates
	Outcome     Outcome
}

// HitNotifier receives a report for every Hit or Destroyed outcome.
type HitNotifier func(HitReport)

type Board struct {
	grid           Grid
	ships          []*Ship
	shipsRemaining int
	history        *attackHistory
	notify         HitNotifier
}

type BoardOption func(*Board)

func WithRepeatAttackRule(rule RepeatAttackRule) BoardOption {
	return func(b *Board) {
		if rule == RepeatAttackLosesTurn {
			b.history = newAttackHistory(b.grid.Rows())
		} else {
			b.history = nil
		}
	}
}

func WithHitNotifier(notify HitNotifier) BoardOption {
	return func(b *Board) {
		b.notify = notify
	}
}

// NewBoard allocates an empty rows x cols board with room for capacity ships.
func NewBoard(rows, cols, capacity int, opts ...BoardOption) (*Board, error) {
	if rows < 1 || cols < 1 || rows > MaxBoardArea/cols {
		return nil, cerr.ErrBoardSize(rows, cols)
	}
	if capacity < 0 {
		return nil, cerr.ErrShipCapacity(capacity)
	}

	b := &Board{
		grid:  NewGrid(rows, cols),
		ships: make([]*Ship, capacity),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func (b *Board) Rows() int {
	return b.grid.Rows()
}

func (b *Board) Cols() int {
	return b.grid.Cols()
}

func (b *Board) Capacity() int {
	return len(b.ships)
}

func (b *Board) ShipsRemaining() int {
	return b.shipsRemaining
}

// ShipsPlaced counts the occupied slots.
func (b *Board) ShipsPlaced() int {
	placed := 0
	for _, sh := range b.ships {
		if sh != nil {
			placed++
		}
	}
	return placed
}

func (b *Board) RepeatAttackRule() RepeatAttackRule {
	if b.history != nil {
		return RepeatAttackLosesTurn
	}
	return RepeatAttackAllowed
}

// Ship returns a copy of the ship stored in slot.
func (b *Board) Ship(slot int) (Ship, bool) {
	if slot < 0 || slot >= len(b.ships) || b.ships[slot] == nil {
		return Ship{}, false
	}
	return b.ships[slot].clone(), true
}

// ShipAt returns the slot of the ship covering c.
func (b *Board) ShipAt(c Coordinates) (int, bool) {
	if !b.grid.InBounds(c) {
		return 0, false
	}
	slot := b.grid.At(c)
	return slot, slot != PositionStateEmpty
}

// ValidatePlacement checks a placement without touching the board and
// reports why it is rejected.
func (b *Board) ValidatePlacement(tag, orientation byte, row, col int) error {
	st, err := ParseShipType(tag)
	if err != nil {
		return err
	}
	o, err := ParseOrientation(orientation)
	if err != nil {
		return err
	}

	footprint := o.footprint(NewCoordinates(row, col), st.Length())
	for _, c := range footprint {
		if !b.grid.InBounds(c) {
			return cerr.ErrXorYOutOfGridBound(c.Row, c.Col)
		}
	}
	for _, c := range footprint {
		if b.grid.At(c) != PositionStateEmpty {
			return cerr.ErrPositionAlreadyTaken(c.Row, c.Col)
		}
	}
	return nil
}

func (b *Board) IsValidPlacement(tag, orientation byte, row, col int) bool {
	return b.ValidatePlacement(tag, orientation, row, col) == nil
}

// PlaceShip commits a validated placement into slot. A rejected placement
// leaves the board untouched.
func (b *Board) PlaceShip(tag, orientation byte, row, col, slot int) error {
	if err := b.ValidatePlacement(tag, orientation, row, col); err != nil {
		return err
	}
	if slot < 0 || slot >= len(b.ships) || b.ships[slot] != nil {
		return cerr.ErrShipSlotUnavailable(slot, len(b.ships))
	}

	// Both already validated above
	st, _ := ParseShipType(tag)
	o, _ := ParseOrientation(orientation)

	ship := NewShip(st, o, NewCoordinates(row, col))
	for _, c := range ship.Footprint() {
		b.grid.set(c, slot)
	}
	b.ships[slot] = ship
	b.shipsRemaining++
	return nil
}

// Snapshot maps every cell to 0 when empty or to the length of the ship
// covering it. Rows are 0-indexed.
func (b *Board) Snapshot() [][]int {
	snapshot := make([][]int, b.grid.Rows())
	for i, row := range b.grid {
		snapshot[i] = make([]int, len(row))
		for j, slot := range row {
			if slot != PositionStateEmpty {
				snapshot[i][j] = b.ships[slot].Length()
			}
		}
	}
	return snapshot
}
