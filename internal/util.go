package internal

// ReconstructPath rebuilds the path ending at current from the cameFrom map.
// It stops at the first state accepted by isStart, or at a state without a
// recorded predecessor, and returns the states in start to current order.
// Only the first predecessor of each state is followed.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType][]NodeType,
	current NodeType,
	isStart func(NodeType) bool,
) []NodeType {
	path := []NodeType{current}
	for !isStart(current) {
		previousNodes := cameFrom[current]
		if len(previousNodes) == 0 {
			break
		}
		current = previousNodes[0]
		path = append(path, current)
	}
	reverse(path)
	return path
}

// ReconstructAll rebuilds every path that ends at one of goals, branching at
// each state with several recorded predecessors. Paths come out goal by goal,
// following predecessors in the order they were recorded. A predecessor
// already on the path being built is ignored, so zero-cost cycles terminate.
func ReconstructAll[NodeType comparable](
	cameFrom map[NodeType][]NodeType,
	goals []NodeType,
	isStart func(NodeType) bool,
) [][]NodeType {
	var (
		paths   [][]NodeType
		trail   []NodeType
		onTrail = make(map[NodeType]bool)
	)

	var walk func(current NodeType)
	walk = func(current NodeType) {
		trail = append(trail, current)
		onTrail[current] = true

		previousNodes := cameFrom[current]
		if isStart(current) || len(previousNodes) == 0 {
			path := make([]NodeType, len(trail))
			copy(path, trail)
			reverse(path)
			paths = append(paths, path)
		} else {
			for _, previousNode := range previousNodes {
				if !onTrail[previousNode] {
					walk(previousNode)
				}
			}
		}

		delete(onTrail, current)
		trail = trail[:len(trail)-1]
	}

	for _, goal := range goals {
		walk(goal)
	}
	return paths
}

func reverse[NodeType any](path []NodeType) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
