package inbound

import (
	"context"

	"github.com/ThoughtFull-World/tf-dreams/domain"
)

type RenderResult struct {
	VideoURL string
	// AlreadyExisted is true when the node had a video before this call and
	// no new render was performed.
	AlreadyExisted bool
}

type VideoRenderPort interface {
	// Render generates, uploads, and records the video for a node
	// synchronously. Idempotent per node.
	Render(ctx context.Context, nodeID string) (*RenderResult, error)
	// Enqueue schedules a background render for the node. Failures of the
	// background job are logged, never surfaced to the caller.
	Enqueue(nodeID string) error
}

type VideoStatusPort interface {
	// Status reports whether the node's video is ready. A missing node
	// yields VideoStatusNotFound, not an error.
	Status(ctx context.Context, nodeID string) (domain.VideoStatus, string, error)
}
