package core

import "math"

// ArrivalGate moves processes from the table into the ready queue once
// their arrival time has been reached.
type ArrivalGate struct {
	table   ProcessTable
	queue   *ReadyQueue
	pending int
}

func NewArrivalGate(table ProcessTable, queue *ReadyQueue) *ArrivalGate {
	pending := 0
	for i := range table {
		if !table[i].Arrived {
			pending++
		}
	}
	return &ArrivalGate{table: table, queue: queue, pending: pending}
}

// Admit enqueues, in table order, every process that has arrived by now
// and was not admitted before. It returns how many were admitted.
func (g *ArrivalGate) Admit(now int64) int {
	if g.pending == 0 {
		return 0
	}
	admitted := 0
	for i := range g.table {
		p := &g.table[i]
		if p.Arrived || p.ArrivalTime > now {
			continue
		}
		p.Arrived = true
		g.queue.Push(i)
		admitted++
	}
	g.pending -= admitted
	return admitted
}

// Pending is the number of processes not yet admitted.
func (g *ArrivalGate) Pending() int {
	return g.pending
}

// NextArrival returns the earliest arrival time among processes not yet
// admitted.
func (g *ArrivalGate) NextArrival() (int64, bool) {
	if g.pending == 0 {
		return 0, false
	}
	next := int64(math.MaxInt64)
	for i := range g.table {
		if p := &g.table[i]; !p.Arrived && p.ArrivalTime < next {
			next = p.ArrivalTime
		}
	}
	return next, true
}
