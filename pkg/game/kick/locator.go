package kick

// FindNearbyDoor returns the first door in the 3x3 block of cells centred on
// the agent, on the agent's level. Columns are scanned west to east (dx outer),
// each column north to south (dy inner), and objects in stored order. The scan
// order decides ties, not distance. It returns nil when no door is found.
func FindNearbyDoor(agent Agent, w World) Door {
	if agent == nil || w == nil {
		return nil
	}
	pos := agent.Position()
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for _, obj := range w.Objects(pos.X+dx, pos.Y+dy, pos.Z) {
				if obj == nil || obj.ObjectKind() != KindDoor {
					continue
				}
				if door, ok := obj.(Door); ok {
					return door
				}
			}
		}
	}
	return nil
}
