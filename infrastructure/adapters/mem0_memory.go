package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ThoughtFull-World/tf-dreams/application/ports/outbound"
	"github.com/ThoughtFull-World/tf-dreams/config"
)

type mem0Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type mem0AddRequest struct {
	Messages []mem0Message `json:"messages"`
	UserID   string        `json:"user_id"`
}

type mem0SearchRequest struct {
	Query  string `json:"query"`
	UserID string `json:"user_id"`
}

type mem0SearchResponse struct {
	Results []struct {
		Memory string `json:"memory"`
	} `json:"results"`
}

type mem0Memory struct {
	ContentFetcher
	logger outbound.LoggerPort
	conf   *config.Mem0Config
}

// NewMem0Memory talks to the Mem0 memory service. With no API key configured
// it degrades to an empty memory, which the pipeline treats as "no extra
// context".
func NewMem0Memory(contentFetcher ContentFetcher, conf *config.Mem0Config,
	logger outbound.LoggerPort) outbound.MemoryPort {
	return &mem0Memory{
		ContentFetcher: contentFetcher,
		logger:         logger,
		conf:           conf,
	}
}

func (m *mem0Memory) Search(ctx context.Context, userID string, query string) (string, error) {
	if m.conf.ApiKey == "" {
		m.logger.Warn("MEM0_API_KEY not configured, no memories retrieved")
		return "", nil
	}

	req, err := m.getRequest(ctx, "/v1/memories/search/", mem0SearchRequest{
		Query:  query,
		UserID: userID,
	})
	if err != nil {
		return "", err
	}

	payload, err := m.FetchContent(req)
	if err != nil {
		return "", err
	}

	var res mem0SearchResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		return "", err
	}

	memories := make([]string, 0, len(res.Results))
	for _, r := range res.Results {
		memories = append(memories, r.Memory)
	}
	m.logger.DebugWithFields("retrieved memories", map[string]interface{}{
		"user_id": userID,
		"count":   len(memories),
	})

	return strings.Join(memories, "\n"), nil
}

func (m *mem0Memory) Add(ctx context.Context, userID string, content string) error {
	if m.conf.ApiKey == "" {
		m.logger.Warn("MEM0_API_KEY not configured, skipping memory storage")
		return nil
	}

	req, err := m.getRequest(ctx, "/v1/memories/", mem0AddRequest{
		Messages: []mem0Message{{Role: "user", Content: content}},
		UserID:   userID,
	})
	if err != nil {
		return err
	}

	if _, err := m.FetchContent(req); err != nil {
		return err
	}
	m.logger.Debug("memory added")

	return nil
}

func (m *mem0Memory) getRequest(ctx context.Context, path string, body interface{}) (*http.Request, error) {
	jsonPayload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.conf.ApiUrl+path, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+m.conf.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
