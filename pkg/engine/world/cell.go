// Package world provides generic tile-grid primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Object is anything that can be placed in a cell.
type Object interface {
	ObjectKind() string
}

// Cell represents a single tile of the grid.
type Cell struct {
	Name string

	// Grid position, Z is the level
	X int
	Y int
	Z int

	// Floor cells can be walked on; everything else is wall
	Floor bool

	Visited bool

	// objects in placement order
	objects []Object
}

// NewCell creates a new cell at the given position
func NewCell(x, y, z int, name string) *Cell {
	return &Cell{
		Name: name,
		X:    x,
		Y:    y,
		Z:    z,
	}
}

// Objects returns the objects in the cell in the order they were placed
func (c *Cell) Objects() []Object {
	if c == nil {
		return nil
	}
	return c.objects
}

// HasObjects returns true if anything has been placed in the cell
func (c *Cell) HasObjects() bool {
	return c != nil && len(c.objects) > 0
}

// AddObject appends an object to the cell
func (c *Cell) AddObject(o Object) {
	if c == nil || o == nil {
		return
	}
	c.objects = append(c.objects, o)
}

// RemoveObject removes the first occurrence of o, keeping the order of the
// rest. Returns false if o was not in the cell.
func (c *Cell) RemoveObject(o Object) bool {
	if c == nil {
		return false
	}
	for i, existing := range c.objects {
		if existing == o {
			c.objects = append(c.objects[:i], c.objects[i+1:]...)
			return true
		}
	}
	return false
}

// FindObject returns the first object of the given kind, or nil
func (c *Cell) FindObject(kind string) Object {
	for _, o := range c.Objects() {
		if o.ObjectKind() == kind {
			return o
		}
	}
	return nil
}
