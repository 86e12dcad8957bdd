package outbound

import "context"

type VideoGeneratorPort interface {
	// Generate renders a short clip for the narrative text and returns the
	// downloaded binary asset.
	Generate(ctx context.Context, storyContent string) ([]byte, error)
}
