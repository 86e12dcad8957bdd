package outbound

import (
	"context"

	"github.com/ThoughtFull-World/tf-dreams/domain"
)

type SaveDreamParams struct {
	UserID       string
	Transcript   string
	StoryContent string
	Options      []string
	DreamID      string
	ParentNodeID string
}

// DreamStorePort persists the narrative graph. SaveDream runs the dream,
// node, and option writes as one transaction.
type DreamStorePort interface {
	SaveDream(ctx context.Context, params SaveDreamParams) (*domain.DreamResult, error)
	// GetRenderedNode resolves a node together with its owning dream and
	// user; returns domain.ErrNodeNotFound for unknown ids.
	GetRenderedNode(ctx context.Context, nodeID string) (*domain.RenderedNode, error)
	// SetVideoURL sets the node's video URL only when it is still unset and
	// reports whether this call was the one that set it.
	SetVideoURL(ctx context.Context, nodeID string, videoURL string) (bool, error)
	// PriorNodeContents returns the content of every node in the dream,
	// oldest first.
	PriorNodeContents(ctx context.Context, dreamID string) ([]string, error)
	ListRecentVideos(ctx context.Context, limit int) ([]domain.RandomVideo, error)
}
