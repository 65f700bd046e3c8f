package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rr-scheduler/config"
	"rr-scheduler/internal/responses"
)

func newTestApp(defaultQuantum string) *SchedulerHandlerImpl {
	return NewSchedulerHandlerImpl(&config.SchedulerConfig{Port: 9095, RoundRobinTimeQuantum: defaultQuantum})
}

func TestHandler_RoundRobin(t *testing.T) {
	tests := []struct {
		name           string
		defaultQuantum string
		body           string
		wantedStatus   int
		wantedWait     float64
		wantedResponse float64
		wantedQuantum  string
		wantedError    string
	}{
		{
			name:           "fixed quantum",
			defaultQuantum: "median",
			body:           `{"quantum":"2","jobs":[{"process_id":1,"arrival_time":0,"burst_time":4},{"process_id":2,"arrival_time":0,"burst_time":4}]}`,
			wantedStatus:   http.StatusOK,
			wantedWait:     5.5,
			wantedResponse: 1.5,
			wantedQuantum:  "2",
		},
		{
			name:           "falls back to configured quantum",
			defaultQuantum: "2",
			body:           `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":4},{"process_id":2,"arrival_time":0,"burst_time":4}]}`,
			wantedStatus:   http.StatusOK,
			wantedWait:     5.5,
			wantedResponse: 1.5,
			wantedQuantum:  "2",
		},
		{
			name:           "median quantum",
			defaultQuantum: "3",
			body:           `{"quantum":"median","jobs":[{"process_id":1,"arrival_time":0,"burst_time":3},{"process_id":2,"arrival_time":0,"burst_time":2}]}`,
			wantedStatus:   http.StatusOK,
			wantedWait:     5.5,
			wantedResponse: 1,
			wantedQuantum:  "median",
		},
		{
			name:           "zero quantum",
			defaultQuantum: "median",
			body:           `{"quantum":"0","jobs":[{"process_id":1,"arrival_time":0,"burst_time":4}]}`,
			wantedStatus:   http.StatusBadRequest,
			wantedError:    "zero quantum length",
		},
		{
			name:           "no jobs",
			defaultQuantum: "median",
			body:           `{"quantum":"1","jobs":[]}`,
			wantedStatus:   http.StatusBadRequest,
			wantedError:    "no processes",
		},
		{
			name:           "zero burst",
			defaultQuantum: "median",
			body:           `{"jobs":[{"process_id":9,"arrival_time":0,"burst_time":0}]}`,
			wantedStatus:   http.StatusBadRequest,
			wantedError:    "process 9 has zero burst time",
		},
		{
			name:           "negative arrival",
			defaultQuantum: "median",
			body:           `{"jobs":[{"process_id":3,"arrival_time":-2,"burst_time":1}]}`,
			wantedStatus:   http.StatusBadRequest,
			wantedError:    "process 3: negative arrival time",
		},
		{
			name:           "horizon overflows the clock",
			defaultQuantum: "median",
			body:           `{"quantum":"9223372036854775807","jobs":[{"process_id":1,"arrival_time":0,"burst_time":9223372036854775807},{"process_id":2,"arrival_time":0,"burst_time":1}]}`,
			wantedStatus:   http.StatusBadRequest,
			wantedError:    "total burst time: integer overflow",
		},
		{
			name:           "malformed body",
			defaultQuantum: "median",
			body:           `{"jobs":`,
			wantedStatus:   http.StatusBadRequest,
			wantedError:    "invalid request format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ass := assert.New(t)
			app := NewApp(newTestApp(tt.defaultQuantum))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/rr", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			ass.Equal(tt.wantedStatus, resp.StatusCode, string(body))

			if tt.wantedError != "" {
				var errBody map[string]string
				require.NoError(t, json.Unmarshal(body, &errBody))
				ass.Equal(tt.wantedError, errBody["error"])
				return
			}

			var got responses.ScheduleResponse
			require.NoError(t, json.Unmarshal(body, &got))
			ass.InDelta(tt.wantedWait, got.AverageWaitingTime, 1e-9)
			ass.InDelta(tt.wantedResponse, got.AverageResponseTime, 1e-9)
			ass.Equal(tt.wantedQuantum, got.Quantum)
		})
	}
}

func TestHandler_Health(t *testing.T) {
	app := NewApp(newTestApp("median"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}
