package outbound

import "context"

type TranscribeRequest struct {
	Audio    []byte
	MimeType string
}

type TranscriberPort interface {
	Transcribe(ctx context.Context, req TranscribeRequest) (string, error)
}
