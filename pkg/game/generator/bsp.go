package generator

import (
	"math/rand/v2"

	"kickdoor/pkg/game/kick"
	"kickdoor/pkg/game/scenario"
)

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minRoomSize = 4 // Minimum size of a room
	roomPadding = 2 // Padding between room and node edge
)

// Chance of a generated door starting locked or open
const (
	lockedChance = 0.3
	openChance   = 0.15
)

// BSPGenerator generates buildings using Binary Space Partitioning. Every
// corridor gets a door where it leaves each of the rooms it joins.
type BSPGenerator struct {
	width, height int
	rng           *rand.Rand
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a room within a BSP leaf node
type bspRoom struct {
	x, y, width, height int
}

func (r *bspRoom) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.width && y >= r.y && y < r.y+r.height
}

func (r *bspRoom) center() (int, int) {
	return r.x + r.width/2, r.y + r.height/2
}

type point struct{ x, y int }

// NewBSP returns a BSP generator. Sizes too small to hold a room are raised.
func NewBSP(rng *rand.Rand, width, height int) *BSPGenerator {
	return &BSPGenerator{
		width:  max(width, minNodeSize+2),
		height: max(height, minNodeSize+2),
		rng:    rng,
	}
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// Generate lays out a fresh building
func (g *BSPGenerator) Generate(name string) *scenario.Scenario {
	s := &scenario.Scenario{Name: name, Width: g.width, Height: g.height, Levels: 1}

	// Leave a 1 cell border for the perimeter wall
	root := &bspNode{x: 1, y: 1, width: g.width - 2, height: g.height - 2}
	g.split(root)
	g.createRooms(root)

	rooms := collectRooms(root)
	for _, r := range rooms {
		s.Floors = append(s.Floors, scenario.Rect{X1: r.x, Y1: r.y, X2: r.x + r.width - 1, Y2: r.y + r.height - 1})
	}

	doors := map[point]bool{}
	g.connectRooms(s, root, rooms, doors)

	startX, startY := rooms[0].center()
	s.Player = &scenario.PlayerSpec{
		X:      startX,
		Y:      startY,
		Name:   "Survivor",
		Traits: g.traits(),
		Skills: map[string]int{
			"strength": g.rng.IntN(4),
			"fitness":  g.rng.IntN(4),
		},
	}
	return s
}

// split recursively splits a BSP node
func (g *BSPGenerator) split(node *bspNode) {
	canSplitX := node.width >= minNodeSize*2
	canSplitY := node.height >= minNodeSize*2

	var horizontal bool
	switch {
	case canSplitX && canSplitY:
		if node.width == node.height {
			horizontal = g.rng.IntN(2) == 0
		} else {
			horizontal = node.height > node.width
		}
	case canSplitY:
		horizontal = true
	case canSplitX:
		horizontal = false
	default:
		return
	}

	if horizontal {
		at := minNodeSize + g.rng.IntN(node.height-minNodeSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: at}
		node.right = &bspNode{x: node.x, y: node.y + at, width: node.width, height: node.height - at}
	} else {
		at := minNodeSize + g.rng.IntN(node.width-minNodeSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: at, height: node.height}
		node.right = &bspNode{x: node.x + at, y: node.y, width: node.width - at, height: node.height}
	}

	g.split(node.left)
	g.split(node.right)
}

// createRooms creates rooms in leaf nodes. A room never reaches the right or
// bottom edge of its node, so neighbouring rooms are always walled apart.
func (g *BSPGenerator) createRooms(node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			g.createRooms(node.left)
		}
		if node.right != nil {
			g.createRooms(node.right)
		}
		return
	}

	width := minRoomSize + g.rng.IntN(node.width-minRoomSize-roomPadding+1)
	height := minRoomSize + g.rng.IntN(node.height-minRoomSize-roomPadding+1)

	node.room = &bspRoom{
		x:      node.x + g.rng.IntN(node.width-width),
		y:      node.y + g.rng.IntN(node.height-height),
		width:  width,
		height: height,
	}
}

// connectRooms joins a room from each subtree with an L-shaped corridor
func (g *BSPGenerator) connectRooms(s *scenario.Scenario, node *bspNode, rooms []*bspRoom, doors map[point]bool) {
	if node.left == nil || node.right == nil {
		return
	}

	from := g.pickRoom(node.left)
	to := g.pickRoom(node.right)
	fx, fy := from.center()
	tx, ty := to.center()

	var path []point
	if g.rng.IntN(2) == 0 {
		path = append(horizontal(fy, fx, tx), vertical(tx, fy, ty)...)
	} else {
		path = append(vertical(fx, fy, ty), horizontal(ty, fx, tx)...)
	}

	for _, p := range path {
		if roomAt(rooms, p) == nil {
			s.Floors = append(s.Floors, scenario.Rect{X1: p.x, Y1: p.y, X2: p.x, Y2: p.y})
		}
	}
	g.placeDoor(s, doorway(path, rooms), doors)
	g.placeDoor(s, doorway(reversed(path), rooms), doors)

	g.connectRooms(s, node.left, rooms, doors)
	g.connectRooms(s, node.right, rooms, doors)
}

func (g *BSPGenerator) placeDoor(s *scenario.Scenario, p *point, doors map[point]bool) {
	if p == nil || doors[*p] {
		return
	}
	doors[*p] = true

	d := scenario.DoorSpec{
		X:      p.x,
		Y:      p.y,
		Sprite: doorSprites[g.rng.IntN(len(doorSprites))],
	}
	switch roll := g.rng.Float64(); {
	case roll < lockedChance:
		d.Locked = true
	case roll < lockedChance+openChance:
		d.Open = true
	}
	if g.rng.IntN(4) == 0 {
		maxHealth := 100.0
		health := float64(10 + g.rng.IntN(90))
		d.MaxHealth, d.Health = &maxHealth, &health
	}
	s.Doors = append(s.Doors, d)
}

func (g *BSPGenerator) traits() []string {
	pool := []kick.Trait{kick.TraitAthletic, kick.TraitStrong, kick.TraitBrawler, kick.TraitWeak, kick.TraitFeeble}
	var traits []string
	for _, t := range pool {
		if g.rng.IntN(3) == 0 {
			traits = append(traits, string(t))
		}
	}
	return traits
}

// pickRoom returns a room from a subtree, picking randomly between leaves
func (g *BSPGenerator) pickRoom(node *bspNode) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var left, right *bspRoom
	if node.left != nil {
		left = g.pickRoom(node.left)
	}
	if node.right != nil {
		right = g.pickRoom(node.right)
	}
	switch {
	case left != nil && right != nil:
		if g.rng.IntN(2) == 0 {
			return left
		}
		return right
	case left != nil:
		return left
	default:
		return right
	}
}

// doorway returns the first corridor cell after the path leaves the room it
// starts in, or nil if it never does.
func doorway(path []point, rooms []*bspRoom) *point {
	if len(path) == 0 {
		return nil
	}
	start := roomAt(rooms, path[0])
	if start == nil {
		return nil
	}
	for _, p := range path {
		if start.contains(p.x, p.y) {
			continue
		}
		if roomAt(rooms, p) != nil {
			// walked straight into the next room
			return nil
		}
		return &p
	}
	return nil
}

func roomAt(rooms []*bspRoom, p point) *bspRoom {
	for _, r := range rooms {
		if r.contains(p.x, p.y) {
			return r
		}
	}
	return nil
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom
	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}
	return rooms
}

// horizontal returns the cells from x1 to x2 on row y, in walking order
func horizontal(y, x1, x2 int) []point {
	var pts []point
	step := 1
	if x2 < x1 {
		step = -1
	}
	for x := x1; x != x2+step; x += step {
		pts = append(pts, point{x, y})
	}
	return pts
}

// vertical returns the cells from y1 to y2 on column x, in walking order
func vertical(x, y1, y2 int) []point {
	var pts []point
	step := 1
	if y2 < y1 {
		step = -1
	}
	for y := y1; y != y2+step; y += step {
		pts = append(pts, point{x, y})
	}
	return pts
}

func reversed(path []point) []point {
	out := make([]point, len(path))
	for i, p := range path {
		out[len(path)-1-i] = p
	}
	return out
}
