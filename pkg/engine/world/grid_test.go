package world

import "testing"

type testObject struct{ kind string }

func (o *testObject) ObjectKind() string { return o.kind }

func TestNewGrid_Dimensions(t *testing.T) {
	g := NewGrid(4, 3, 2)
	if g.Width() != 4 || g.Height() != 3 || g.Levels() != 2 {
		t.Fatalf("dimensions = %dx%dx%d, want 4x3x2", g.Width(), g.Height(), g.Levels())
	}
	count := 0
	g.ForEachCell(func(c *Cell) { count++ })
	if count != 24 {
		t.Errorf("ForEachCell visited %d cells, want 24", count)
	}
}

func TestGetCell_Bounds(t *testing.T) {
	g := NewGrid(2, 2, 1)
	for _, pos := range [][3]int{{-1, 0, 0}, {0, -1, 0}, {2, 0, 0}, {0, 2, 0}, {0, 0, 1}, {0, 0, -1}} {
		if c := g.GetCell(pos[0], pos[1], pos[2]); c != nil {
			t.Errorf("GetCell(%v) = %v, want nil", pos, c)
		}
	}
	c := g.GetCell(1, 0, 0)
	if c == nil || c.X != 1 || c.Y != 0 || c.Z != 0 {
		t.Fatalf("GetCell(1,0,0) = %+v", c)
	}

	var nilGrid *Grid
	if nilGrid.GetCell(0, 0, 0) != nil {
		t.Error("nil grid GetCell != nil")
	}
}

func TestGetCellRelative(t *testing.T) {
	g := NewGrid(3, 3, 1)
	center := g.GetCell(1, 1, 0)
	tests := []struct {
		dir  Direction
		x, y int
	}{
		{North, 1, 0},
		{South, 1, 2},
		{East, 2, 1},
		{West, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got := g.GetCellRelative(center, tt.dir)
			if got == nil || got.X != tt.x || got.Y != tt.y {
				t.Errorf("GetCellRelative(center, %v) = %+v, want (%d,%d)", tt.dir, got, tt.x, tt.y)
			}
			if back := g.GetCellRelative(got, tt.dir.Opposite()); back != center {
				t.Errorf("opposite of %v did not return to center", tt.dir)
			}
		})
	}
	if g.GetCellRelative(g.GetCell(0, 0, 0), North) != nil {
		t.Error("north of top-left should be nil")
	}
}

func TestDirection_Invalid(t *testing.T) {
	for _, d := range []Direction{NoDirection, Direction(4), Direction(-7)} {
		if d.IsValid() {
			t.Errorf("%d.IsValid() = true", d)
		}
		if dx, dy := d.Delta(); dx != 0 || dy != 0 {
			t.Errorf("%d.Delta() = %d,%d, want 0,0", d, dx, dy)
		}
		if d.Opposite() != d {
			t.Errorf("%d.Opposite() = %d, want unchanged", d, d.Opposite())
		}
		if d.String() != "Unknown" {
			t.Errorf("%d.String() = %q", d, d.String())
		}
	}
	if g := NewGrid(3, 3, 1); g.GetCellRelative(g.GetCell(1, 1, 0), NoDirection) != nil {
		t.Error("GetCellRelative with NoDirection should be nil")
	}
}

func TestCellObjects_KeepPlacementOrder(t *testing.T) {
	g := NewGrid(1, 1, 1)
	a, b, c := &testObject{"a"}, &testObject{"door"}, &testObject{"door"}
	for _, o := range []Object{a, b, c} {
		if !g.Place(0, 0, 0, o) {
			t.Fatal("Place returned false")
		}
	}
	cell := g.GetCell(0, 0, 0)
	if got := cell.FindObject("door"); got != b {
		t.Errorf("FindObject(door) = %v, want first door", got)
	}
	if !cell.RemoveObject(b) {
		t.Fatal("RemoveObject returned false")
	}
	objs := cell.Objects()
	if len(objs) != 2 || objs[0] != a || objs[1] != c {
		t.Errorf("objects after remove = %v", objs)
	}
	if cell.RemoveObject(b) {
		t.Error("second RemoveObject returned true")
	}
	if g.Place(5, 5, 0, a) {
		t.Error("Place out of bounds returned true")
	}
}

func TestValidate(t *testing.T) {
	g := NewGrid(2, 2, 1)
	if msg := g.Validate(); msg != "Grid has no start cell" {
		t.Errorf("Validate() = %q", msg)
	}
	g.SetStartCellAt(0, 0, 0)
	if msg := g.Validate(); msg != "Start cell is not marked as floor" {
		t.Errorf("Validate() = %q", msg)
	}
	g.MarkAsFloorWithName(0, 0, 0, "Hall")
	if msg := g.Validate(); msg != "" {
		t.Errorf("Validate() = %q, want empty", msg)
	}
	if g.StartCell().Name != "Hall" {
		t.Errorf("start cell name = %q", g.StartCell().Name)
	}
}
