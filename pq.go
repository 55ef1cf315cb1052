package astar

// PriorityQueueItem is one frontier entry. Entries are never updated in
// place: a cheaper route pushes a new entry and the old one goes stale.
type PriorityQueueItem[NodeType comparable] struct {
	Node     NodeType
	GScore   float64
	FCost    float64
	Sequence int
}

// PriorityQueue is a min-heap on FCost for use with container/heap.
// Equal FCost prefers the deeper entry, then the older one.
type PriorityQueue[NodeType comparable] []*PriorityQueueItem[NodeType]

func (queue PriorityQueue[NodeType]) Len() int { return len(queue) }
func (queue PriorityQueue[NodeType]) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	if queue[i].GScore != queue[j].GScore {
		return queue[i].GScore > queue[j].GScore
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue[NodeType]) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *PriorityQueue[NodeType]) Push(x any) {
	*queue = append(*queue, x.(*PriorityQueueItem[NodeType]))
}

func (queue *PriorityQueue[NodeType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
