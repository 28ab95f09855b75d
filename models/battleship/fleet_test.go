package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFleet(t *testing.T) {
	tests := []struct {
		name          string
		rows          int
		cols          int
		expectedCount map[ShipType]int
		expectedTotal int
	}{
		{
			name: "tiny board has no ships",
			rows: 1, cols: 5,
			expectedCount: map[ShipType]int{},
			expectedTotal: 0,
		},
		{
			name: "ten by ten",
			rows: 10, cols: 10,
			expectedCount: map[ShipType]int{
				ShipTypeCarrier:    1,
				ShipTypeBattleship: 1,
				ShipTypeCruiser:    2,
				ShipTypeDestroyer:  3,
				ShipTypeSubmarine:  5,
			},
			expectedTotal: 12,
		},
		{
			name: "four by ten",
			rows: 4, cols: 10,
			expectedCount: map[ShipType]int{
				ShipTypeCruiser:   1,
				ShipTypeDestroyer: 1,
				ShipTypeSubmarine: 2,
			},
			expectedTotal: 4,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fleet := NewFleet(test.rows, test.cols)
			for _, st := range ShipTypes() {
				assert.Equal(t, test.expectedCount[st], fleet.CountOf(st), "type %c", st)
			}
			assert.Equal(t, test.expectedTotal, fleet.Total())
			assert.Len(t, fleet.Order(), test.expectedTotal)
		})
	}
}

func TestFleetOrderLargestFirst(t *testing.T) {
	order := NewFleet(10, 10).Order()
	expected := []ShipType{
		ShipTypeCarrier,
		ShipTypeBattleship,
		ShipTypeCruiser, ShipTypeCruiser,
		ShipTypeDestroyer, ShipTypeDestroyer, ShipTypeDestroyer,
		ShipTypeSubmarine, ShipTypeSubmarine, ShipTypeSubmarine, ShipTypeSubmarine, ShipTypeSubmarine,
	}
	assert.Equal(t, expected, order)
}
