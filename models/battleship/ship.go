package battleship

import (
	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

const UnknownShipName = "Unknown"

// ShipType is the tag character identifying a ship class.
type ShipType byte

const (
	ShipTypeCarrier    ShipType = 'S'
	ShipTypeBattleship ShipType = 'Y'
	ShipTypeCruiser    ShipType = 'B'
	ShipTypeDestroyer  ShipType = 'L'
	ShipTypeSubmarine  ShipType = 'A'
)

type shipClass struct {
	length int
	name   string
}

var shipCatalog = map[ShipType]shipClass{
	ShipTypeCarrier:    {length: 5, name: "Shinano"},
	ShipTypeBattleship: {length: 4, name: "Yamato"},
	ShipTypeCruiser:    {length: 3, name: "Belfast"},
	ShipTypeDestroyer:  {length: 2, name: "Laffey"},
	ShipTypeSubmarine:  {length: 1, name: "Albacore"},
}

// ShipTypes returns the five ship types ordered from the largest to the smallest.
func ShipTypes() []ShipType {
	return []ShipType{
		ShipTypeCarrier,
		ShipTypeBattleship,
		ShipTypeCruiser,
		ShipTypeDestroyer,
		ShipTypeSubmarine,
	}
}

// ParseShipType resolves a tag case-insensitively.
func ParseShipType(tag byte) (ShipType, error) {
	if tag >= 'a' && tag <= 'z' {
		tag -= 'a' - 'A'
	}
	st := ShipType(tag)
	if _, prs := shipCatalog[st]; !prs {
		return 0, cerr.ErrUnknownShipType(tag)
	}
	return st, nil
}

func LengthOf(tag byte) (int, error) {
	st, err := ParseShipType(tag)
	if err != nil {
		return 0, err
	}
	return shipCatalog[st].length, nil
}

// NameOf never fails; unrecognized tags are labeled UnknownShipName.
func NameOf(tag byte) string {
	st, err := ParseShipType(tag)
	if err != nil {
		return UnknownShipName
	}
	return shipCatalog[st].name
}

func (st ShipType) Length() int {
	return shipCatalog[st].length
}

func (st ShipType) Name() string {
	return NameOf(byte(st))
}

type Ship struct {
	Type        ShipType
	Start       Coordinates
	Orientation Orientation

	hitMask   []bool
	hits      int
	destroyed bool
}

func NewShip(st ShipType, orientation Orientation, start Coordinates) *Ship {
	return &Ship{
		Type:        st,
		Start:       start,
		Orientation: orientation,
		hitMask:     make([]bool, st.Length()),
	}
}

func (sh *Ship) Length() int {
	return len(sh.hitMask)
}

func (sh *Ship) Hits() int {
	return sh.hits
}

func (sh *Ship) IsDestroyed() bool {
	return sh.destroyed
}

func (sh *Ship) IsSegmentHit(segment int) bool {
	return sh.hitMask[segment]
}

// Footprint lists the cells occupied by the ship, segment 0 first.
func (sh *Ship) Footprint() []Coordinates {
	return sh.Orientation.footprint(sh.Start, sh.Length())
}

// segmentOf assumes c lies within the footprint.
func (sh *Ship) segmentOf(c Coordinates) int {
	if sh.Orientation == OrientationHorizontal {
		return c.Col - sh.Start.Col
	}
	return sh.Start.Row - c.Row
}

// hitSegment reports whether the segment was fresh.
func (sh *Ship) hitSegment(segment int) bool {
	if sh.hitMask[segment] {
		return false
	}
	sh.hitMask[segment] = true
	sh.hits++
	return true
}

func (sh *Ship) isSunk() bool {
	return sh.hits == sh.Length()
}

func (sh *Ship) destroy() {
	sh.destroyed = true
}

func (sh *Ship) clone() Ship {
	c := *sh
	c.hitMask = append([]bool(nil), sh.hitMask...)
	return c
}
