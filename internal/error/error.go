package error

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidShipType          = errors.New("invalid ship type")
	ErrInvalidPlacement         = errors.New("invalid ship placement")
	ErrInvalidOrientation       = fmt.Errorf("%w: orientation must be H or V", ErrInvalidPlacement)
	ErrPlacementOutOfBounds     = fmt.Errorf("%w: ship goes out of bounds", ErrInvalidPlacement)
	ErrPlacementCollision       = fmt.Errorf("%w: position already taken by another ship", ErrInvalidPlacement)
	ErrInvalidShipSlot          = fmt.Errorf("%w: ship slot unavailable", ErrInvalidPlacement)
	ErrInvalidBoardSize         = errors.New("board rows and cols must be at least 1 and the area within limits")
	ErrInvalidRepeatAttackRule  = errors.New("invalid repeat attack rule")
	ErrInvalidShipCapacity      = errors.New("ship capacity must not be negative")
	ErrGameFinished             = errors.New("game is already finished")
	ErrGameNotExists            = errors.New("game does not exist")
	ErrMalformedInput           = errors.New("malformed input")
	ErrUnexpectedEndOfInput     = errors.New("unexpected end of input")
	ErrPlacementRetriesExceeded = errors.New("placement retries exceeded")
)

func ErrUnknownShipType(tag byte) error {
	return fmt.Errorf("%w: %q", ErrInvalidShipType, tag)
}

func ErrUnknownOrientation(orientation byte) error {
	return fmt.Errorf("%w, got %q", ErrInvalidOrientation, orientation)
}

func ErrXorYOutOfGridBound(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrPlacementOutOfBounds, row, col)
}

func ErrPositionAlreadyTaken(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrPlacementCollision, row, col)
}

func ErrShipSlotUnavailable(slot, capacity int) error {
	return fmt.Errorf("%w\tslot: %d\tcapacity: %d", ErrInvalidShipSlot, slot, capacity)
}

func ErrBoardSize(rows, cols int) error {
	return fmt.Errorf("%w\trows: %d\tcols: %d", ErrInvalidBoardSize, rows, cols)
}

func ErrUnknownRepeatAttackRule(rule string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRepeatAttackRule, rule)
}

func ErrShipCapacity(capacity int) error {
	return fmt.Errorf("%w\tcapacity: %d", ErrInvalidShipCapacity, capacity)
}

func ErrGameNotExist(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotExists, gameUuid)
}

func ErrGameAlreadyFinished(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameFinished, gameUuid)
}

func ErrInvalidToken(expected, token string) error {
	return fmt.Errorf("%w: expected %s, got %q", ErrMalformedInput, expected, token)
}

func ErrMissingToken(expected string) error {
	return fmt.Errorf("%w: missing %s", ErrUnexpectedEndOfInput, expected)
}

func ErrRetriesExceeded(player, retries int) error {
	return fmt.Errorf("%w\tplayer: %d\tretries: %d", ErrPlacementRetriesExceeded, player, retries)
}
