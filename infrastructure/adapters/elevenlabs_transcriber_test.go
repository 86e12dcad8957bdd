package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ThoughtFull-World/tf-dreams/application/ports/outbound"
	"github.com/ThoughtFull-World/tf-dreams/config"
	"github.com/ThoughtFull-World/tf-dreams/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElevenLabsTranscriber_Transcribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "scribe_v1", r.FormValue("model_id"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() {
			_ = file.Close()
		}()
		assert.Equal(t, "audio.webm", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text": "I dreamed of flying over mountains"}`))
	}))
	defer server.Close()

	transcriber := NewElevenLabsTranscriber(NewContentFetcher(NewZerologWrapper()), &config.ElevenLabsConfig{
		ApiUrl:  server.URL,
		ApiKey:  "test-key",
		ModelId: "scribe_v1",
	}, NewZerologWrapper())

	text, err := transcriber.Transcribe(context.Background(), outbound.TranscribeRequest{
		Audio:    []byte("webm audio"),
		MimeType: "audio/webm",
	})
	require.NoError(t, err)
	assert.Equal(t, "I dreamed of flying over mountains", text)
}

func TestElevenLabsTranscriber_EmptyTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text": ""}`))
	}))
	defer server.Close()

	transcriber := NewElevenLabsTranscriber(NewContentFetcher(NewZerologWrapper()), &config.ElevenLabsConfig{
		ApiUrl:  server.URL,
		ApiKey:  "test-key",
		ModelId: "scribe_v1",
	}, NewZerologWrapper())

	_, err := transcriber.Transcribe(context.Background(), outbound.TranscribeRequest{
		Audio:    []byte("webm audio"),
		MimeType: "audio/webm",
	})
	require.Error(t, err)

	var generationErr *domain.GenerationError
	assert.ErrorAs(t, err, &generationErr)
}

func TestElevenLabsTranscriber_ServiceDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	transcriber := NewElevenLabsTranscriber(NewContentFetcher(NewZerologWrapper()), &config.ElevenLabsConfig{
		ApiUrl:  server.URL,
		ApiKey:  "test-key",
		ModelId: "scribe_v1",
	}, NewZerologWrapper())

	_, err := transcriber.Transcribe(context.Background(), outbound.TranscribeRequest{
		Audio:    []byte("webm audio"),
		MimeType: "audio/webm",
	})

	var generationErr *domain.GenerationError
	require.ErrorAs(t, err, &generationErr)
	assert.Equal(t, "transcription", generationErr.Service)
}
