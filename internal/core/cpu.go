package core

import "rr-scheduler/internal/requests"

// Process is one process table entry. Times are simulated ticks.
type Process struct {
	Pid           int64
	ArrivalTime   int64
	BurstTime     int64
	RemainingTime int64

	Started   bool
	Arrived   bool
	Completed bool

	ResponseTime   int64
	CompletionTime int64
}

// Elapsed is the CPU time the process has received so far.
func (p *Process) Elapsed() int64 {
	return p.BurstTime - p.RemainingTime
}

// Live reports whether the process is admitted and not yet finished.
func (p *Process) Live() bool {
	return p.Arrived && !p.Completed
}

func (p *Process) WaitTime() int64 {
	return p.CompletionTime - p.ArrivalTime - p.BurstTime
}

func (p *Process) TurnAroundTime() int64 {
	return p.CompletionTime - p.ArrivalTime
}

// ProcessTable owns every process of a run. Other components refer to
// entries by index.
type ProcessTable []Process

// NewProcessTable expects jobs that already passed validation.
func NewProcessTable(jobs []requests.Job) ProcessTable {
	table := make(ProcessTable, len(jobs))
	for i, job := range jobs {
		table[i] = Process{
			Pid:           job.ProcessId,
			ArrivalTime:   job.ArrivalTime,
			BurstTime:     job.BurstTime,
			RemainingTime: job.BurstTime,
		}
	}
	return table
}

// CpuMetric accumulates how the simulated CPU spent its ticks.
type CpuMetric struct {
	TotalTime       int64
	UtilizationTime int64
	IdleTime        int64
	ContextSwitches int64
	SwitchTime      int64
}
