package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/ThoughtFull-World/tf-dreams/application/ports/outbound"
	"github.com/ThoughtFull-World/tf-dreams/config"
	"github.com/ThoughtFull-World/tf-dreams/domain"
)

type sttResponse struct {
	Text string `json:"text"`
}

type elevenLabsTranscriber struct {
	ContentFetcher
	logger outbound.LoggerPort
	conf   *config.ElevenLabsConfig
}

func NewElevenLabsTranscriber(contentFetcher ContentFetcher, conf *config.ElevenLabsConfig,
	logger outbound.LoggerPort) outbound.TranscriberPort {
	return &elevenLabsTranscriber{
		ContentFetcher: contentFetcher,
		logger:         logger,
		conf:           conf,
	}
}

func (t *elevenLabsTranscriber) Transcribe(ctx context.Context, req outbound.TranscribeRequest) (string, error) {
	httpReq, err := t.getRequest(ctx, req)
	if err != nil {
		t.logger.Error(err, "Failed to create the HTTP request for transcription")
		return "", err
	}

	payload, err := t.FetchContent(httpReq)
	if err != nil {
		return "", &domain.GenerationError{Service: "transcription", Err: err}
	}

	var res sttResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		t.logger.Error(err, "Failed to unmarshal the transcription response")
		return "", &domain.GenerationError{Service: "transcription", Err: err}
	}
	if res.Text == "" {
		return "", &domain.GenerationError{Service: "transcription", Err: fmt.Errorf("empty transcript returned")}
	}

	return res.Text, nil
}

func (t *elevenLabsTranscriber) getRequest(ctx context.Context, req outbound.TranscribeRequest) (*http.Request, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fileName := "audio." + domain.FileExtensionForMime(req.MimeType)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(req.Audio); err != nil {
		return nil, err
	}
	if err := writer.WriteField("model_id", t.conf.ModelId); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.conf.ApiUrl, &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("xi-api-key", t.conf.ApiKey)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	return httpReq, nil
}
