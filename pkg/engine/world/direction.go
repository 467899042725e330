package world

// Direction is a step across one level of the grid. Grid coordinates are
// x (column, growing east) and y (row, growing south), so North lowers y.
// Directions never change z.
type Direction int

const (
	North Direction = iota
	East
	South
	West

	// NoDirection is returned for input that does not move.
	NoDirection Direction = -1
)

type step struct {
	name   string
	dx, dy int
}

// Indexed by Direction; the order is clockwise so the opposite is two away.
var steps = [...]step{
	North: {"North", 0, -1},
	East:  {"East", 1, 0},
	South: {"South", 0, 1},
	West:  {"West", -1, 0},
}

// AllDirections lists the cardinal directions clockwise from North.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return steps[d].name
}

// IsValid reports whether d is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	return d >= North && int(d) < len(steps)
}

// Opposite returns the reverse direction. Invalid directions are returned
// unchanged.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % Direction(len(steps))
}

// Delta returns the x and y offsets of one step in d, or 0,0 when d is not a
// cardinal direction.
func (d Direction) Delta() (dx, dy int) {
	if !d.IsValid() {
		return 0, 0
	}
	return steps[d].dx, steps[d].dy
}
