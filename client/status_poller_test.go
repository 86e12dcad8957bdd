package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusPoller_ReturnsURLWhenReady(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/check-video-status", r.URL.Path)
		assert.Equal(t, "node-1", r.URL.Query().Get("nodeId"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		if calls.Add(1) < 3 {
			_, _ = fmt.Fprint(w, `{"nodeId": "node-1", "videoUrl": null, "status": "pending"}`)
			return
		}
		_, _ = fmt.Fprint(w, `{"nodeId": "node-1", "videoUrl": "https://cdn.example.com/v.mp4", "status": "ready"}`)
	}))
	defer server.Close()

	poller := NewStatusPoller(server.URL, "test-token").WithTiming(time.Millisecond, 10)

	url, err := poller.Poll(context.Background(), "node-1")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/v.mp4", url)
	assert.EqualValues(t, 3, calls.Load())
}

func TestStatusPoller_NotFoundStopsImmediately(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprint(w, `{"nodeId": "ghost", "videoUrl": null, "status": "not_found"}`)
	}))
	defer server.Close()

	poller := NewStatusPoller(server.URL, "test-token").WithTiming(time.Millisecond, 10)

	_, err := poller.Poll(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 1, calls.Load())
}

func TestStatusPoller_TimesOutWhileStillPending(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = fmt.Fprint(w, `{"nodeId": "node-1", "videoUrl": null, "status": "pending"}`)
	}))
	defer server.Close()

	poller := NewStatusPoller(server.URL, "test-token").WithTiming(time.Millisecond, 4)

	_, err := poller.Poll(context.Background(), "node-1")
	assert.ErrorIs(t, err, ErrPollTimeout)
	assert.EqualValues(t, 4, calls.Load())
}

func TestStatusPoller_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"nodeId": "node-1", "videoUrl": null, "status": "pending"}`)
	}))
	defer server.Close()

	poller := NewStatusPoller(server.URL, "test-token").WithTiming(time.Minute, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := poller.Poll(ctx, "node-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatusPoller_ServerErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprint(w, `backend down`)
	}))
	defer server.Close()

	poller := NewStatusPoller(server.URL, "test-token").WithTiming(time.Millisecond, 10)

	_, err := poller.Poll(context.Background(), "node-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
