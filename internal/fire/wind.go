package fire

import (
	"fmt"
	"strings"
)

// Direction is the compass direction the wind blows toward.
type Direction uint8

const (
	None Direction = iota
	North
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// Offset is a (row, col) displacement.
type Offset struct {
	DR, DC int
}

// neighbors lists the eight neighbour offsets in the order the step engine
// visits them. North is row-1.
var neighbors = [8]Offset{
	{-1, 0},  // N
	{1, 0},   // S
	{0, 1},   // E
	{0, -1},  // W
	{-1, 1},  // NE
	{-1, -1}, // NW
	{1, 1},   // SE
	{1, -1},  // SW
}

var directionNames = [...]string{"none", "N", "S", "E", "W", "NE", "NW", "SE", "SW"}

// Offset returns the neighbour offset matching the direction.
// None returns (0, 0), which matches no neighbour.
func (d Direction) Offset() Offset {
	if d == None || int(d) > len(neighbors) {
		return Offset{}
	}
	return neighbors[d-1]
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Directions returns the eight compass directions in neighbour order.
func Directions() []Direction {
	return []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
}

// ParseDirection accepts the labels N, S, E, W, NE, NW, SE, SW and "none"
// (or an empty string), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || s == "NONE" {
		return None, nil
	}
	for i := 1; i < len(directionNames); i++ {
		if directionNames[i] == s {
			return Direction(i), nil
		}
	}
	return None, fmt.Errorf("fire: unknown wind direction %q: %w", s, ErrInvalidParameter)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Wind is a direction plus a speed, nominally 0..100.
type Wind struct {
	Direction Direction
	Speed     float64
}

// Effect returns the wind effect applied when fire spreads along off.
// The aligned neighbour gets the full speed, every other one a quarter.
func (w Wind) Effect(off Offset) float64 {
	if w.Direction != None && off == w.Direction.Offset() {
		return w.Speed
	}
	return w.Speed / 4
}

func (w Wind) String() string {
	return fmt.Sprintf("%s@%g", w.Direction, w.Speed)
}
