package battleship

// Area divisors per ship type, largest ship first.
var fleetDivisors = map[ShipType]int{
	ShipTypeCarrier:    70,
	ShipTypeBattleship: 55,
	ShipTypeCruiser:    40,
	ShipTypeDestroyer:  30,
	ShipTypeSubmarine:  20,
}

type FleetEntry struct {
	Type  ShipType
	Count int
}

// Fleet is the number of ships of each type each player places on a board.
type Fleet []FleetEntry

// NewFleet derives the per-type counts from the board area.
func NewFleet(rows, cols int) Fleet {
	area := rows * cols
	fleet := make(Fleet, 0, len(fleetDivisors))
	for _, st := range ShipTypes() {
		fleet = append(fleet, FleetEntry{Type: st, Count: area / fleetDivisors[st]})
	}
	return fleet
}

func (f Fleet) Total() int {
	total := 0
	for _, e := range f {
		total += e.Count
	}
	return total
}

func (f Fleet) CountOf(st ShipType) int {
	for _, e := range f {
		if e.Type == st {
			return e.Count
		}
	}
	return 0
}

// Order expands the fleet into the sequence in which ships are placed.
func (f Fleet) Order() []ShipType {
	order := make([]ShipType, 0, f.Total())
	for _, e := range f {
		for i := 0; i < e.Count; i++ {
			order = append(order, e.Type)
		}
	}
	return order
}
