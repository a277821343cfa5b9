package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T, handler http.Handler, maxRetries int) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := DefaultConfig().Upstream
	cfg.APIBaseURL = server.URL
	cfg.MaxRetries = maxRetries
	cfg.RequestsPerSecond = 1000
	cfg.Burst = 10

	return NewClient(cfg, zaptest.NewLogger(t))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_FetchMETAR(t *testing.T) {
	const raw = "KSEA 121853Z 24015G25KT 10SM FEW020 22/18 A3012"

	mux := http.NewServeMux()
	mux.HandleFunc("/metar", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "KSEA", q.Get("ids"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "3", q.Get("hours"))
		writeTestJSON(t, w, []map[string]any{
			{"icaoId": "KSEA", "rawOb": raw},
			{"icaoId": "KSEA", "rawOb": "KSEA 121753Z 24012KT 10SM FEW020 21/17 A3013"},
		})
	})

	client := newTestClient(t, mux, 0)
	report, err := client.FetchMETAR(context.Background(), "KSEA")
	require.NoError(t, err)
	assert.Equal(t, RawReport{Kind: KindMETAR, Text: raw, StationID: "KSEA"}, report)
}

func TestClient_FetchTAF(t *testing.T) {
	const raw = "TAF KSEA 121720Z 1218/1324 24012G22KT P6SM FEW020"

	mux := http.NewServeMux()
	mux.HandleFunc("/taf", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "KSEA", r.URL.Query().Get("ids"))
		writeTestJSON(t, w, []map[string]any{{"icaoId": "KSEA", "rawTAF": raw}})
	})

	client := newTestClient(t, mux, 0)
	report, err := client.FetchTAF(context.Background(), "KSEA")
	require.NoError(t, err)
	assert.Equal(t, KindTAF, report.Kind)
	assert.Equal(t, raw, report.Text)
}

func TestClient_noData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/metar", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, []map[string]any{})
	})
	mux.HandleFunc("/taf", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, mux, 0)

	_, err := client.FetchMETAR(context.Background(), "KXYZ")
	assert.ErrorIs(t, err, ErrNoData)

	_, err = client.FetchTAF(context.Background(), "KXYZ")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestClient_retriesNonOKStatus(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/metar", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeTestJSON(t, w, []map[string]any{{"rawOb": "KBFI 121853Z 18008KT 10SM CLR 17/09 A3008"}})
	})

	client := newTestClient(t, mux, 2)
	report, err := client.FetchMETAR(context.Background(), "KBFI")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Contains(t, report.Text, "KBFI")
}

func TestClient_givesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/metar", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := newTestClient(t, mux, 1)
	_, err := client.FetchMETAR(context.Background(), "KSEA")
	assert.ErrorIs(t, err, ErrUpstreamFailure)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_contextCanceledDuringBackoff(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/metar", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	client := newTestClient(t, mux, 5)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.FetchMETAR(ctx, "KSEA")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestClient_FetchReports(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/metar", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, []map[string]any{{"rawOb": "KPAE 121855Z 36005KT 10SM CLR 15/07 A3010"}})
	})
	mux.HandleFunc("/taf", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client := newTestClient(t, mux, 0)
	metar, taf := client.FetchReports(context.Background(), "KPAE")

	require.NoError(t, metar.Err)
	assert.Equal(t, "KPAE 121855Z 36005KT 10SM CLR 15/07 A3010", metar.Report.Text)
	assert.ErrorIs(t, taf.Err, ErrUpstreamFailure)
}
