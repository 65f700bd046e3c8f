package schedulers

import (
	"rr-scheduler/internal/core"
	"rr-scheduler/internal/responses"
	"rr-scheduler/internal/util"
)

// statsCollector sums the per-process events reported by the loop.
type statsCollector struct {
	totalWaitTime       int64
	totalResponseTime   int64
	totalTurnAroundTime int64
}

func (s *statsCollector) recordResponse(responseTime int64) {
	s.totalResponseTime += responseTime
}

func (s *statsCollector) recordCompletion(p *core.Process) {
	s.totalWaitTime += p.WaitTime()
	s.totalTurnAroundTime += p.TurnAroundTime()
}

func (r *roundRobin) generateResponse() responses.ScheduleResponse {
	processCount := len(r.table)
	details := make([]responses.ProcessResponse, 0, processCount)
	for i := range r.table {
		details = append(details, generateProcessDetails(&r.table[i]))
	}

	return responses.ScheduleResponse{
		Quantum:               r.policy.String(),
		TotalTime:             r.metric.TotalTime,
		IdleTime:              r.metric.IdleTime,
		ContextSwitches:       r.metric.ContextSwitches,
		AverageWaitingTime:    util.Average(r.stats.totalWaitTime, processCount),
		AverageResponseTime:   util.Average(r.stats.totalResponseTime, processCount),
		AverageTurnAroundTime: util.Average(r.stats.totalTurnAroundTime, processCount),
		CpuUtilization:        util.Ratio(r.metric.UtilizationTime, r.metric.TotalTime),
		CpuThroughput:         util.Ratio(int64(processCount), r.metric.TotalTime),
		Details:               details,
		Timeline:              r.timeline,
	}
}

func generateProcessDetails(p *core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      p.Pid,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		CompletionTime: p.CompletionTime,
		ResponseTime:   p.ResponseTime,
		TurnAroundTime: p.TurnAroundTime(),
		WaitingTime:    p.WaitTime(),
	}
}
