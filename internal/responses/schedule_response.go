package responses

type ProcessResponse struct {
	ProcessId      int64 `json:"process_id"`
	ArrivalTime    int64 `json:"arrival_time"`
	BurstTime      int64 `json:"burst_time"`
	CompletionTime int64 `json:"completion_time"`
	ResponseTime   int64 `json:"response_time"`
	TurnAroundTime int64 `json:"turn_around_time"`
	WaitingTime    int64 `json:"waiting_time"`
}

// TimeSlice is one dispatch: the process ran from Start until Stop.
type TimeSlice struct {
	ProcessId int64 `json:"process_id"`
	Start     int64 `json:"start"`
	Stop      int64 `json:"stop"`
	Quantum   int64 `json:"quantum"`
}

type ScheduleResponse struct {
	Quantum               string            `json:"quantum"`
	TotalTime             int64             `json:"total_time"`
	IdleTime              int64             `json:"idle_time"`
	ContextSwitches       int64             `json:"context_switches"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []TimeSlice       `json:"timeline,omitempty"`
}
