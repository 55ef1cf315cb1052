package grid

// Direction is one of the eight compass directions, numbered clockwise
// from North.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var offsets = [...]Point{
	North:     {-1, 0},
	NorthEast: {-1, 1},
	East:      {0, 1},
	SouthEast: {1, 1},
	South:     {1, 0},
	SouthWest: {1, -1},
	West:      {0, -1},
	NorthWest: {-1, -1},
}

var names = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Offset is the unit step taken when moving in d.
func (d Direction) Offset() Point { return offsets[d] }

// Advance moves p one step in d.
func (d Direction) Advance(p Point) Point { return p.Add(offsets[d]) }

// TurnClockwise rotates d by angle degrees. The angle is rounded down to a
// multiple of 45 and may be negative or larger than a full turn.
func (d Direction) TurnClockwise(angle int) Direction {
	angle %= 360
	if angle < 0 {
		angle += 360
	}
	return Direction((int(d) + angle/45) % 8)
}

// TurnCounterClockwise rotates d by angle degrees the other way.
func (d Direction) TurnCounterClockwise(angle int) Direction {
	return d.TurnClockwise(-angle)
}

// Opposite is d turned half a revolution.
func (d Direction) Opposite() Direction { return d.TurnClockwise(180) }

func (d Direction) String() string {
	if d < North || d > NorthWest {
		return "?"
	}
	return names[d]
}
