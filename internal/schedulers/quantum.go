package schedulers

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"rr-scheduler/internal/core"
	"rr-scheduler/internal/requests"
)

const MedianSpecifier = "median"

var ErrZeroQuantum = errors.New("zero quantum length")

// QuantumPolicy decides the time slice for the next dispatch.
type QuantumPolicy interface {
	Next(table core.ProcessTable) int64
	String() string
}

type FixedQuantum struct {
	length int64
}

func NewFixedQuantum(length int64) (FixedQuantum, error) {
	if length <= 0 {
		return FixedQuantum{}, ErrZeroQuantum
	}
	return FixedQuantum{length: length}, nil
}

func (q FixedQuantum) Next(core.ProcessTable) int64 { return q.length }

func (q FixedQuantum) String() string { return strconv.FormatInt(q.length, 10) }

// MedianQuantum recomputes the slice before every dispatch from the elapsed
// CPU time of the live processes.
type MedianQuantum struct{}

func (MedianQuantum) Next(table core.ProcessTable) int64 {
	elapsed := make([]int64, 0, len(table))
	for i := range table {
		if table[i].Live() {
			elapsed = append(elapsed, table[i].Elapsed())
		}
	}
	return Median(elapsed)
}

func (MedianQuantum) String() string { return MedianSpecifier }

// Median sorts values in place and returns their median, rounding an even
// count's midpoint half up. The result is never below 1.
func Median(values []int64) int64 {
	n := len(values)
	if n == 0 {
		return 1
	}
	slices.Sort(values)
	var median int64
	if n%2 == 1 {
		median = values[n/2]
	} else {
		lo, hi := values[n/2-1], values[n/2]
		median = lo + (hi-lo+1)/2
	}
	return max(median, 1)
}

// ParseQuantum turns a command line or request specifier into a policy.
// "median" selects MedianQuantum; anything else must contain an integer.
func ParseQuantum(specifier string) (QuantumPolicy, error) {
	if strings.TrimSpace(specifier) == MedianSpecifier {
		return MedianQuantum{}, nil
	}
	length, err := requests.FirstInt(specifier)
	if err != nil {
		return nil, fmt.Errorf("quantum %q: %w", specifier, err)
	}
	policy, err := NewFixedQuantum(length)
	if err != nil {
		return nil, err
	}
	return policy, nil
}
