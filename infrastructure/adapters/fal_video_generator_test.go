package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ThoughtFull-World/tf-dreams/config"
	"github.com/ThoughtFull-World/tf-dreams/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFalVideoGenerator_Generate(t *testing.T) {
	var generateBody falApiRequest

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/generate", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Key fal-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&generateBody))
		_, _ = fmt.Fprintf(w, `{"video": {"url": "%s/video.mp4"}}`, server.URL)
	})
	mux.HandleFunc("/video.mp4", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("mp4 bytes"))
	})

	generator := NewFalVideoGenerator(NewContentFetcher(NewZerologWrapper()), &config.FalConfig{
		ApiUrl: server.URL + "/generate",
		ApiKey: "fal-key",
	}, NewZerologWrapper())

	video, err := generator.Generate(context.Background(), "A long walk through a silver forest.")
	require.NoError(t, err)
	assert.Equal(t, []byte("mp4 bytes"), video)

	assert.Equal(t, "Dreamy, surreal scene: A long walk through a silver forest.. Cinematic, ethereal lighting, fantasy art style.", generateBody.Prompt)
	assert.Equal(t, 32, generateBody.NumFrames)
	assert.Equal(t, 6, generateBody.NumInferenceSteps)
	assert.Equal(t, 8, generateBody.FPS)
	assert.Equal(t, 6.0, generateBody.GuidanceScale)
	assert.Equal(t, 1.3, generateBody.MotionScale)
}

func TestFalVideoGenerator_TruncatesLongStories(t *testing.T) {
	var prompt string

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/generate", func(w http.ResponseWriter, r *http.Request) {
		var body falApiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		prompt = body.Prompt
		_, _ = fmt.Fprintf(w, `{"video": {"url": "%s/video.mp4"}}`, server.URL)
	})
	mux.HandleFunc("/video.mp4", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("mp4"))
	})

	generator := NewFalVideoGenerator(NewContentFetcher(NewZerologWrapper()), &config.FalConfig{
		ApiUrl: server.URL + "/generate",
		ApiKey: "fal-key",
	}, NewZerologWrapper())

	long := strings.Repeat("a", 500)
	_, err := generator.Generate(context.Background(), long)
	require.NoError(t, err)

	expected := fmt.Sprintf("Dreamy, surreal scene: %s. Cinematic, ethereal lighting, fantasy art style.", strings.Repeat("a", 200))
	assert.Equal(t, expected, prompt)
}

func TestFalVideoGenerator_NoVideoURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	generator := NewFalVideoGenerator(NewContentFetcher(NewZerologWrapper()), &config.FalConfig{
		ApiUrl: server.URL,
		ApiKey: "fal-key",
	}, NewZerologWrapper())

	_, err := generator.Generate(context.Background(), "story")

	var generationErr *domain.GenerationError
	require.ErrorAs(t, err, &generationErr)
	assert.Equal(t, "video", generationErr.Service)
}

func TestFalVideoGenerator_FallsBackToImagesURL(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/generate", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `{"images": [{"url": "%s/video.mp4"}]}`, server.URL)
	})
	mux.HandleFunc("/video.mp4", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("mp4 bytes"))
	})

	generator := NewFalVideoGenerator(NewContentFetcher(NewZerologWrapper()), &config.FalConfig{
		ApiUrl: server.URL + "/generate",
		ApiKey: "fal-key",
	}, NewZerologWrapper())

	video, err := generator.Generate(context.Background(), "story")
	require.NoError(t, err)
	assert.Equal(t, []byte("mp4 bytes"), video)
}
