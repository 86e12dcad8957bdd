package services

import (
	"context"
	"errors"

	"github.com/ThoughtFull-World/tf-dreams/application/ports/inbound"
	"github.com/ThoughtFull-World/tf-dreams/application/ports/outbound"
	"github.com/ThoughtFull-World/tf-dreams/domain"
)

type videoStatusService struct {
	store outbound.DreamStorePort
}

func NewVideoStatusService(store outbound.DreamStorePort) inbound.VideoStatusPort {
	return &videoStatusService{store: store}
}

func (s *videoStatusService) Status(ctx context.Context, nodeID string) (domain.VideoStatus, string, error) {
	node, err := s.store.GetRenderedNode(ctx, nodeID)
	if err != nil {
		if errors.Is(err, domain.ErrNodeNotFound) {
			return domain.VideoStatusNotFound, "", nil
		}
		return "", "", err
	}

	if node.VideoURL != nil && *node.VideoURL != "" {
		return domain.VideoStatusReady, *node.VideoURL, nil
	}
	return domain.VideoStatusPending, "", nil
}
