package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ThoughtFull-World/tf-dreams/application/ports/inbound"
	"github.com/ThoughtFull-World/tf-dreams/application/ports/outbound"
	"github.com/ThoughtFull-World/tf-dreams/domain"
)

type contextStoryService struct {
	logger    outbound.LoggerPort
	memory    outbound.MemoryPort
	store     outbound.DreamStorePort
	generator outbound.StoryGeneratorPort
}

// NewContextStoryService builds the context-augmented narrative generator:
// memory search and prior-node context are gathered around one language model
// call, and the result is written back to memory for future sessions.
func NewContextStoryService(logger outbound.LoggerPort, memory outbound.MemoryPort,
	store outbound.DreamStorePort, generator outbound.StoryGeneratorPort) inbound.StoryServicePort {
	return &contextStoryService{
		logger:    logger,
		memory:    memory,
		store:     store,
		generator: generator,
	}
}

func (s *contextStoryService) GenerateNode(ctx context.Context, params inbound.GenerateNodeParams) (*domain.GeneratedStory, error) {
	memories, err := s.memory.Search(ctx, params.UserID, params.Transcript)
	if err != nil {
		// Context is nice-to-have; degrade to none but keep it visible.
		s.logger.WarnWithFields("memory search failed, continuing without memories", map[string]interface{}{
			"user_id": params.UserID,
			"error":   err.Error(),
		})
		memories = ""
	}

	priorContext := ""
	if params.ParentNodeID != "" && params.DreamID != "" {
		contents, err := s.store.PriorNodeContents(ctx, params.DreamID)
		if err != nil {
			s.logger.WarnWithFields("failed to load prior nodes, continuing without context", map[string]interface{}{
				"dream_id": params.DreamID,
				"error":    err.Error(),
			})
		} else {
			priorContext = strings.Join(contents, "\n\n")
		}
	}

	story, err := s.generator.Generate(ctx, outbound.GenerateStoryRequest{
		Transcript:   params.Transcript,
		Memories:     memories,
		PriorContext: priorContext,
	})
	if err != nil {
		return nil, err
	}

	if err := s.memory.Add(ctx, params.UserID, fmt.Sprintf("Dream: %s\nStory: %s", params.Transcript, story.Content)); err != nil {
		s.logger.WarnWithFields("failed to store memory", map[string]interface{}{
			"user_id": params.UserID,
			"error":   err.Error(),
		})
	}

	return story, nil
}
