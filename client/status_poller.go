// Package client provides the caller-side polling loop for render
// completion.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrNotFound means the node disappeared or never existed; polling stops
	// immediately.
	ErrNotFound = errors.New("story node not found")
	// ErrPollTimeout means the attempt budget ran out while the video was
	// still pending.
	ErrPollTimeout = errors.New("video not ready before poll budget exhausted")
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultMaxAttempts  = 24
)

type statusResponse struct {
	NodeID   string  `json:"nodeId"`
	VideoURL *string `json:"videoUrl"`
	Status   string  `json:"status"`
}

type StatusPoller struct {
	baseURL     string
	token       string
	httpClient  *http.Client
	interval    time.Duration
	maxAttempts int
}

// NewStatusPoller polls the check-video-status endpoint at a fixed interval
// with a fixed attempt ceiling. No backoff: the render either finishes
// within the budget or the poller reports a timeout.
func NewStatusPoller(baseURL string, token string) *StatusPoller {
	return &StatusPoller{
		baseURL:     baseURL,
		token:       token,
		httpClient:  &http.Client{},
		interval:    DefaultPollInterval,
		maxAttempts: DefaultMaxAttempts,
	}
}

// WithTiming overrides interval and attempt ceiling, mainly for tests.
func (p *StatusPoller) WithTiming(interval time.Duration, maxAttempts int) *StatusPoller {
	p.interval = interval
	p.maxAttempts = maxAttempts
	return p
}

// Poll blocks until the node's video is ready and returns its URL.
func (p *StatusPoller) Poll(ctx context.Context, nodeID string) (string, error) {
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		status, err := p.check(ctx, nodeID)
		if err != nil {
			return "", err
		}

		switch status.Status {
		case "ready":
			if status.VideoURL == nil {
				return "", fmt.Errorf("status ready but no video URL returned")
			}
			return *status.VideoURL, nil
		case "not_found":
			return "", ErrNotFound
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.interval):
		}
	}

	return "", ErrPollTimeout
}

func (p *StatusPoller) check(ctx context.Context, nodeID string) (*statusResponse, error) {
	url := fmt.Sprintf("%s/check-video-status?nodeId=%s", p.baseURL, nodeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.token)

	res, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode == http.StatusNotFound {
		return &statusResponse{NodeID: nodeID, Status: "not_found"}, nil
	}
	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("status check returned %d: %s", res.StatusCode, string(body))
	}

	var status statusResponse
	if err := json.NewDecoder(res.Body).Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}
