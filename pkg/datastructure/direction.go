package datastructure

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is the prevailing wind of a zone.
type Direction uint8

const (
	NORTH Direction = iota
	SOUTH
	EAST
	WEST

	NUM_DIRECTIONS = 4
)

var ErrInvalidDirection = errors.New("invalid wind direction")

func (d Direction) String() string {
	switch d {
	case NORTH:
		return "N"
	case SOUTH:
		return "S"
	case EAST:
		return "E"
	case WEST:
		return "W"
	default:
		return "?"
	}
}

func (d Direction) IsValid() bool {
	return d < NUM_DIRECTIONS
}

// ParseDirection accepts the single character compass codes N, S, E, W (any case).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N":
		return NORTH, nil
	case "S":
		return SOUTH, nil
	case "E":
		return EAST, nil
	case "W":
		return WEST, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
