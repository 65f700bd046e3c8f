package schedulers

import (
	"log/slog"

	"rr-scheduler/internal/core"
	"rr-scheduler/internal/requests"
	"rr-scheduler/internal/responses"
)

// contextSwitchCost is charged whenever the CPU moves to a different process.
const contextSwitchCost = 1

type roundRobin struct {
	table  core.ProcessTable
	queue  *core.ReadyQueue
	gate   *core.ArrivalGate
	policy QuantumPolicy
	stats  statsCollector
	metric core.CpuMetric

	currentTime int64
	completed   int
	timeline    []responses.TimeSlice
}

func newRoundRobin(table core.ProcessTable, policy QuantumPolicy) *roundRobin {
	queue := core.NewReadyQueue(len(table))
	return &roundRobin{
		table:  table,
		queue:  queue,
		gate:   core.NewArrivalGate(table, queue),
		policy: policy,
	}
}

// ScheduleRoundRobin validates the request and simulates it to completion.
func ScheduleRoundRobin(request *requests.ScheduleRequests, policy QuantumPolicy) (responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	slog.Debug("running roundRobin algorithm", slog.String("quantum", policy.String()), slog.Int("processes", len(request.Jobs)))

	rr := newRoundRobin(core.NewProcessTable(request.Jobs), policy)
	rr.run()
	return rr.generateResponse(), nil
}

func (r *roundRobin) run() {
	for r.completed < len(r.table) {
		r.gate.Admit(r.currentTime)
		quantum := r.policy.Next(r.table)

		head, ok := r.queue.Head()
		if !ok {
			r.idle()
			continue
		}
		r.dispatch(head, quantum)
	}
	r.metric.TotalTime = r.currentTime
}

// idle advances the clock to the next pending arrival. Nothing can be
// dispatched before then, so this matches ticking one unit at a time.
func (r *roundRobin) idle() {
	next := r.currentTime + 1
	if r.gate.Pending() > 0 {
		if arrival, _ := r.gate.NextArrival(); arrival > next {
			next = arrival
		}
	}
	r.metric.IdleTime += next - r.currentTime
	r.currentTime = next
}

func (r *roundRobin) dispatch(index int, quantum int64) {
	p := &r.table[index]
	if !p.Started {
		p.Started = true
		p.ResponseTime = r.currentTime - p.ArrivalTime
		r.stats.recordResponse(p.ResponseTime)
	}

	slice := min(p.RemainingTime, quantum)
	start := r.currentTime
	r.currentTime += slice
	r.metric.UtilizationTime += slice
	r.timeline = append(r.timeline, responses.TimeSlice{ProcessId: p.Pid, Start: start, Stop: r.currentTime, Quantum: quantum})
	slog.Debug("process ran", slog.Int64("pid", p.Pid), slog.Int64("start", start), slog.Int64("stop", r.currentTime), slog.Int64("quantum", quantum))

	r.gate.Admit(r.currentTime)
	p.RemainingTime -= slice

	if p.RemainingTime == 0 {
		p.Completed = true
		p.CompletionTime = r.currentTime
		r.stats.recordCompletion(p)
		r.queue.Pop()
		r.completed++
		slog.Debug("process completed", slog.Int64("pid", p.Pid), slog.Int64("time", r.currentTime))
	} else {
		r.queue.Requeue()
	}

	if next, ok := r.queue.Head(); ok && next != index {
		r.currentTime += contextSwitchCost
		r.metric.ContextSwitches++
		r.metric.SwitchTime += contextSwitchCost
		slog.Debug("context switch", slog.Int64("from", p.Pid), slog.Int64("to", r.table[next].Pid), slog.Int64("time", r.currentTime))
	}
}
