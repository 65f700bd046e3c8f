package core

// ReadyQueue is a FIFO of process table indices.
type ReadyQueue struct {
	items []int
}

func NewReadyQueue(capacity int) *ReadyQueue {
	return &ReadyQueue{items: make([]int, 0, capacity)}
}

func (q *ReadyQueue) Len() int {
	return len(q.items)
}

func (q *ReadyQueue) Empty() bool {
	return len(q.items) == 0
}

// Push appends index to the tail.
func (q *ReadyQueue) Push(index int) {
	q.items = append(q.items, index)
}

// Head returns the index that runs next without removing it.
func (q *ReadyQueue) Head() (int, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	return q.items[0], true
}

// Pop removes and returns the head.
func (q *ReadyQueue) Pop() (int, bool) {
	head, ok := q.Head()
	if !ok {
		return 0, false
	}
	q.items = q.items[1:]
	return head, true
}

// Requeue moves the head to the tail.
func (q *ReadyQueue) Requeue() {
	if head, ok := q.Pop(); ok {
		q.Push(head)
	}
}
