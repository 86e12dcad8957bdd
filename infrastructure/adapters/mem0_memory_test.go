package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ThoughtFull-World/tf-dreams/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMem0Memory_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/memories/search/", r.URL.Path)
		assert.Equal(t, "Token test-key", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "flying dream", body["query"])
		assert.Equal(t, "user-1", body["user_id"])

		_, _ = w.Write([]byte(`{"results": [{"memory": "dreamt of oceans"}, {"memory": "lucid flight"}]}`))
	}))
	defer server.Close()

	memory := NewMem0Memory(NewContentFetcher(NewZerologWrapper()), &config.Mem0Config{
		ApiUrl: server.URL,
		ApiKey: "test-key",
	}, NewZerologWrapper())

	memories, err := memory.Search(context.Background(), "user-1", "flying dream")
	require.NoError(t, err)
	assert.Equal(t, "dreamt of oceans\nlucid flight", memories)
}

func TestMem0Memory_SearchWithoutKeyIsNoop(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	memory := NewMem0Memory(NewContentFetcher(NewZerologWrapper()), &config.Mem0Config{
		ApiUrl: server.URL,
	}, NewZerologWrapper())

	memories, err := memory.Search(context.Background(), "user-1", "query")
	require.NoError(t, err)
	assert.Empty(t, memories)
	assert.False(t, called)

	require.NoError(t, memory.Add(context.Background(), "user-1", "content"))
	assert.False(t, called)
}

func TestMem0Memory_Add(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/memories/", r.URL.Path)

		var body struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
			UserID string `json:"user_id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Messages, 1)
		assert.Equal(t, "user", body.Messages[0].Role)
		assert.Equal(t, "Dream: x\nStory: y", body.Messages[0].Content)
		assert.Equal(t, "user-1", body.UserID)

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	memory := NewMem0Memory(NewContentFetcher(NewZerologWrapper()), &config.Mem0Config{
		ApiUrl: server.URL,
		ApiKey: "test-key",
	}, NewZerologWrapper())

	require.NoError(t, memory.Add(context.Background(), "user-1", "Dream: x\nStory: y"))
}

func TestMem0Memory_SearchFailureReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	memory := NewMem0Memory(NewContentFetcher(NewZerologWrapper()), &config.Mem0Config{
		ApiUrl: server.URL,
		ApiKey: "test-key",
	}, NewZerologWrapper())

	_, err := memory.Search(context.Background(), "user-1", "query")
	assert.Error(t, err)
}
