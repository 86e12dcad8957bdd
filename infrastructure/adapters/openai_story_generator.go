package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThoughtFull-World/tf-dreams/application/ports/outbound"
	"github.com/ThoughtFull-World/tf-dreams/config"
	"github.com/ThoughtFull-World/tf-dreams/domain"
	"github.com/sashabaranov/go-openai"
)

const storySystemPrompt = `You are a creative dream journal assistant. Based on the user's dream description, generate a vivid, immersive narrative continuation of their dream. Make it surreal, emotionally resonant, and engaging.

Then, provide 3 choices for how the dream could continue. Each choice should be a single sentence describing an action or direction.

You must respond ONLY with valid JSON in this exact format:
{
  "content": "The narrative paragraph...",
  "options": ["Option 1 text", "Option 2 text", "Option 3 text"]
}`

type storyPayload struct {
	Content string   `json:"content"`
	Options []string `json:"options"`
}

type openAIStoryGenerator struct {
	logger outbound.LoggerPort
	client *openai.Client
	model  string
}

func NewOpenAIStoryGenerator(conf *config.OpenAIConfig, logger outbound.LoggerPort) outbound.StoryGeneratorPort {
	return &openAIStoryGenerator{
		logger: logger,
		client: openai.NewClient(conf.ApiKey),
		model:  conf.Model,
	}
}

func (g *openAIStoryGenerator) Generate(ctx context.Context, req outbound.GenerateStoryRequest) (*domain.GeneratedStory, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: storySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: g.userPrompt(req)},
		},
		Temperature: 0.8,
		MaxTokens:   1024,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		g.logger.Error(err, "OpenAI chat completion failed")
		return nil, &domain.GenerationError{Service: "story", Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &domain.GenerationError{Service: "story", Err: fmt.Errorf("no choices returned")}
	}

	var payload storyPayload
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &payload); err != nil {
		g.logger.Error(err, "Failed to parse story payload")
		return nil, &domain.GenerationError{Service: "story", Err: err}
	}
	if payload.Content == "" || len(payload.Options) != 3 {
		return nil, &domain.GenerationError{
			Service: "story",
			Err:     fmt.Errorf("expected narrative text and 3 options, got %d options", len(payload.Options)),
		}
	}

	return &domain.GeneratedStory{
		Content: payload.Content,
		Options: payload.Options,
	}, nil
}

func (g *openAIStoryGenerator) userPrompt(req outbound.GenerateStoryRequest) string {
	prompt := fmt.Sprintf("User's dream: %s\n\nCreate a vivid dream narrative and provide 3 choices for how it could continue.", req.Transcript)
	if req.Memories != "" {
		prompt = fmt.Sprintf("Relevant memories from past dreams:\n%s\n\n%s", req.Memories, prompt)
	}
	if req.PriorContext != "" {
		prompt = fmt.Sprintf("Previous dream context:\n%s\n\n%s", req.PriorContext, prompt)
	}
	return prompt
}
