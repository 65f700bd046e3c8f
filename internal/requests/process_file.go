package requests

import (
	"fmt"
	"math"
	"os"
)

// maxPrealloc bounds the capacity reserved up front from the declared
// process count, which is untrusted until the triples are actually read.
const maxPrealloc = 1024

type intScanner struct {
	data []byte
	pos  int
}

// next skips leading non-digits and scans one unsigned decimal integer.
func (s *intScanner) next() (int64, error) {
	var current int64
	started := false
	for ; s.pos < len(s.data); s.pos++ {
		c := s.data[s.pos]
		if c >= '0' && c <= '9' {
			started = true
			d := int64(c - '0')
			if current > (math.MaxInt64-d)/10 {
				return 0, ErrIntegerOverflow
			}
			current = current*10 + d
		} else if started {
			break
		}
	}
	if !started {
		return 0, ErrMissingInteger
	}
	return current, nil
}

// FirstInt returns the first unsigned decimal integer found in s.
func FirstInt(s string) (int64, error) {
	scanner := intScanner{data: []byte(s)}
	return scanner.next()
}

// ParseProcesses reads a process count followed by that many
// (pid, arrival, burst) triples. Anything after the last triple is ignored.
func ParseProcesses(data []byte) (*ScheduleRequests, error) {
	scanner := intScanner{data: data}
	count, err := scanner.next()
	if err != nil {
		return nil, fmt.Errorf("process count: %w", err)
	}
	if count <= 0 {
		return nil, ErrNoProcesses
	}

	jobs := make([]Job, 0, min(count, maxPrealloc))
	for i := int64(0); i < count; i++ {
		var fields [3]int64
		for f := range fields {
			if fields[f], err = scanner.next(); err != nil {
				return nil, fmt.Errorf("process %d of %d: %w", i+1, count, err)
			}
		}
		job := Job{ProcessId: fields[0], ArrivalTime: fields[1], BurstTime: fields[2]}
		if job.BurstTime == 0 {
			return nil, fmt.Errorf("process %d has %w", job.ProcessId, ErrZeroBurst)
		}
		jobs = append(jobs, job)
	}
	request := &ScheduleRequests{Jobs: jobs}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return request, nil
}

func ReadProcessFile(path string) (*ScheduleRequests, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read process file: %w", err)
	}
	request, err := ParseProcesses(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return request, nil
}
