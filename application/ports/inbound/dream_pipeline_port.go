package inbound

import (
	"context"

	"github.com/ThoughtFull-World/tf-dreams/domain"
)

type ProcessDreamParams struct {
	UserID        string
	Audio         []byte
	AudioMimeType string
	TextInput     string
	DreamID       string
	ParentNodeID  string
	GenerateVideo bool
}

type DreamPipelinePort interface {
	// ProcessDream runs transcription, story generation, and persistence
	// synchronously, schedules rendering when enabled, and returns as soon
	// as the node is stored.
	ProcessDream(ctx context.Context, params ProcessDreamParams) (*domain.DreamResult, error)
}
