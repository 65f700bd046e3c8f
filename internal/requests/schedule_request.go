package requests

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrMissingInteger  = errors.New("missing integer")
	ErrIntegerOverflow = errors.New("integer overflow")
	ErrNoProcesses     = errors.New("no processes")
	ErrZeroBurst       = errors.New("zero burst time")
	ErrNegativeArrival = errors.New("negative arrival time")
)

type Job struct {
	ProcessId   int64 `json:"process_id"`
	ArrivalTime int64 `json:"arrival_time"`
	BurstTime   int64 `json:"burst_time"`
}

type ScheduleRequests struct {
	Quantum string `json:"quantum"`
	Jobs    []Job  `json:"jobs"`
}

// Validate checks the jobs before a process table is built from them.
// The file parser can only produce non-negative values, so the arrival
// check matters for JSON input.
func (r *ScheduleRequests) Validate() error {
	if r == nil || len(r.Jobs) == 0 {
		return ErrNoProcesses
	}
	for _, job := range r.Jobs {
		if job.ArrivalTime < 0 {
			return fmt.Errorf("process %d: %w", job.ProcessId, ErrNegativeArrival)
		}
		if job.BurstTime <= 0 {
			return fmt.Errorf("process %d has %w", job.ProcessId, ErrZeroBurst)
		}
	}
	if _, err := r.Horizon(); err != nil {
		return err
	}
	return nil
}

// Horizon bounds the simulated clock: the last arrival, plus every burst,
// plus one context switch between consecutive ticks of work. Per-process
// totals are sums of at most len(Jobs) such values, so those must fit too.
// Jobs must have non-negative arrivals and positive bursts.
func (r *ScheduleRequests) Horizon() (int64, error) {
	var lastArrival, totalBurst int64
	var ok bool
	for _, job := range r.Jobs {
		lastArrival = max(lastArrival, job.ArrivalTime)
		if totalBurst, ok = addInt64(totalBurst, job.BurstTime); !ok {
			return 0, fmt.Errorf("total burst time: %w", ErrIntegerOverflow)
		}
	}
	horizon, ok := addInt64(lastArrival, totalBurst)
	if ok {
		horizon, ok = addInt64(horizon, totalBurst-1)
	}
	if !ok || horizon > math.MaxInt64/int64(len(r.Jobs)) {
		return 0, fmt.Errorf("simulation horizon: %w", ErrIntegerOverflow)
	}
	return horizon, nil
}

// addInt64 adds two non-negative values, reporting false on overflow.
func addInt64(a, b int64) (int64, bool) {
	if b > math.MaxInt64-a {
		return 0, false
	}
	return a + b, true
}
