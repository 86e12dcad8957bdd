package outbound

import (
	"context"

	"github.com/ThoughtFull-World/tf-dreams/domain"
)

type GenerateStoryRequest struct {
	Transcript string
	// Memories holds relevant fragments from past sessions, empty when the
	// memory service is unavailable.
	Memories string
	// PriorContext is the ordered text of all previous nodes in the dream,
	// empty unless the session is being continued.
	PriorContext string
}

type StoryGeneratorPort interface {
	Generate(ctx context.Context, req GenerateStoryRequest) (*domain.GeneratedStory, error)
}
