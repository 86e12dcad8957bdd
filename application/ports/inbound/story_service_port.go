package inbound

import (
	"context"

	"github.com/ThoughtFull-World/tf-dreams/domain"
)

type GenerateNodeParams struct {
	UserID     string
	Transcript string
	// DreamID and ParentNodeID are set when the session continues an
	// existing dream; prior node text is then folded into the prompt.
	DreamID      string
	ParentNodeID string
}

type StoryServicePort interface {
	GenerateNode(ctx context.Context, params GenerateNodeParams) (*domain.GeneratedStory, error)
}
