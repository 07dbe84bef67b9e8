package api

import (
	"bufio"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseops/inquest/pkg/events"
)

func TestGlobalStream_DeliversBroadcasts(t *testing.T) {
	f := newAPIFixture(t)

	srv := httptest.NewServer(f.router)
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/stream", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// The subscription is registered before the response headers are
	// written, so once we have headers the broadcast cannot be missed.
	f.dispatcher.Broadcast(events.GlobalCasesChannel, []byte(`{"type":"case.status_changed","case_id":"case-1"}`))

	lines := make(chan string, 1)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.HasPrefix(line, "data: ") {
				lines <- strings.TrimPrefix(line, "data: ")
				return
			}
		}
	}()

	select {
	case payload := <-lines:
		assert.Contains(t, payload, "case.status_changed")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for SSE event")
	}
}

func TestCaseStream_OwnershipEnforced(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := f.do(t, "mallory", http.MethodGet, "/api/v1/cases/case-1/stream", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, "alice", http.MethodGet, "/api/v1/cases/nope/stream", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStream_NoDispatcher(t *testing.T) {
	srv := NewServer(nil, nil, nil, nil, nil, nil, nil)
	router := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stream", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
