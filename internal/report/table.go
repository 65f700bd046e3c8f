package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"rr-scheduler/internal/responses"
)

// PrintAverages writes the two summary lines.
func PrintAverages(w io.Writer, response responses.ScheduleResponse) error {
	_, err := fmt.Fprintf(w, "Average wait time: %.2f\nAverage response time: %.2f\n",
		response.AverageWaitingTime, response.AverageResponseTime)
	return err
}

// RenderDetails writes one row per process with the averages in the footer.
func RenderDetails(w io.Writer, response responses.ScheduleResponse) {
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Response", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Switches\n%d", response.ContextSwitches)})
	table.Render()
}

// RenderTimeline writes the dispatch history, one slice per row.
func RenderTimeline(w io.Writer, response responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Start", "Stop", "Quantum"})
	for _, s := range response.Timeline {
		table.Append([]string{
			fmt.Sprint(s.ProcessId),
			fmt.Sprint(s.Start),
			fmt.Sprint(s.Stop),
			fmt.Sprint(s.Quantum),
		})
	}
	table.SetFooter([]string{"Total", fmt.Sprint(response.TotalTime),
		fmt.Sprintf("Idle %d", response.IdleTime),
		fmt.Sprintf("CPU %.2f%%", response.CpuUtilization*100)})
	table.Render()
}
