package world

import "fmt"

// Grid is a stack of equally sized levels of cells
type Grid struct {
	levels []map[int]map[int]*Cell // z -> y -> x
	width  int
	height int

	startCell *Cell
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(width, height, levels int) *Grid {
	g := &Grid{}
	g.Build(width, height, levels)
	return g
}

// Width returns the number of columns on each level
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows on each level
func (g *Grid) Height() int {
	return g.height
}

// Levels returns the number of levels
func (g *Grid) Levels() int {
	return len(g.levels)
}

// StartCell returns the starting cell
func (g *Grid) StartCell() *Cell {
	return g.startCell
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(x, y, z int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height && z >= 0 && z < len(g.levels)
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(x, y, z int) *Cell {
	if g == nil || !g.IsValidPosition(x, y, z) {
		return nil
	}
	row, found := g.levels[z][y]
	if !found {
		return nil
	}
	return row[x]
}

// GetCellRelative returns the cell adjacent to c on the same level
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	dx, dy := dir.Delta()
	return g.GetCell(c.X+dx, c.Y+dy, c.Z)
}

// SetStartCellAt sets the starting cell by position. Returns false if out of bounds.
func (g *Grid) SetStartCellAt(x, y, z int) bool {
	cell := g.GetCell(x, y, z)
	if cell == nil {
		return false
	}
	g.startCell = cell
	return true
}

// MarkAsFloor marks the cell at the given position as walkable. Returns false if out of bounds.
func (g *Grid) MarkAsFloor(x, y, z int) bool {
	cell := g.GetCell(x, y, z)
	if cell == nil {
		return false
	}
	cell.Floor = true
	return true
}

// MarkAsFloorWithName marks a cell as walkable and names it
func (g *Grid) MarkAsFloorWithName(x, y, z int, name string) bool {
	if !g.MarkAsFloor(x, y, z) {
		return false
	}
	g.GetCell(x, y, z).Name = name
	return true
}

// Place adds an object to the cell at the given position. Returns false if out of bounds.
func (g *Grid) Place(x, y, z int, o Object) bool {
	cell := g.GetCell(x, y, z)
	if cell == nil {
		return false
	}
	cell.AddObject(o)
	return true
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height, levels int) {
	if width <= 0 || height <= 0 || levels <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.levels = make([]map[int]map[int]*Cell, levels)
	g.startCell = nil

	for z := range levels {
		g.levels[z] = make(map[int]map[int]*Cell, height)
		for y := range height {
			g.levels[z][y] = make(map[int]*Cell, width)
			for x := range width {
				g.levels[z][y][x] = NewCell(x, y, z, fmt.Sprintf("%v:%v:%v", x, y, z))
			}
		}
	}
}

// ForEachCell iterates over all cells, level by level, row by row
func (g *Grid) ForEachCell(fn func(cell *Cell)) {
	for z := range g.levels {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if cell := g.GetCell(x, y, z); cell != nil {
					fn(cell)
				}
			}
		}
	}
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.width <= 0 || g.height <= 0 || len(g.levels) == 0 {
		return "Grid has invalid dimensions"
	}

	if g.startCell == nil {
		return "Grid has no start cell"
	}

	if !g.startCell.Floor {
		return "Start cell is not marked as floor"
	}

	return ""
}
