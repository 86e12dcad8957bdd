package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ThoughtFull-World/tf-dreams/application/ports/inbound"
	"github.com/ThoughtFull-World/tf-dreams/application/ports/outbound"
	"github.com/ThoughtFull-World/tf-dreams/config"
	"github.com/ThoughtFull-World/tf-dreams/domain"
)

type videoRenderService struct {
	logger     outbound.LoggerPort
	store      outbound.DreamStorePort
	generator  outbound.VideoGeneratorPort
	mediaStore outbound.MediaStorePort
	jobs       chan domain.RenderJob
	inFlight   sync.Map
	maxRetries int
}

// NewVideoRenderService starts the render queue: a buffered job channel
// consumed by workers on the shared pool. Jobs are retried a bounded number
// of times; terminal failures are only logged, a node then just stays
// pending.
func NewVideoRenderService(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	store outbound.DreamStorePort, generator outbound.VideoGeneratorPort,
	mediaStore outbound.MediaStorePort, conf *config.RenderConfig) (inbound.VideoRenderPort, error) {
	s := &videoRenderService{
		logger:     logger,
		store:      store,
		generator:  generator,
		mediaStore: mediaStore,
		jobs:       make(chan domain.RenderJob, conf.QueueSize),
		maxRetries: conf.MaxRetries,
	}

	for i := 0; i < conf.Workers; i++ {
		if err := workerPool.Submit(s.workerLoop); err != nil {
			return nil, fmt.Errorf("failed to start render worker: %w", err)
		}
	}

	return s, nil
}

func (s *videoRenderService) Enqueue(nodeID string) error {
	select {
	case s.jobs <- domain.RenderJob{NodeID: nodeID}:
		return nil
	default:
		return fmt.Errorf("render queue is full")
	}
}

func (s *videoRenderService) workerLoop() {
	for job := range s.jobs {
		s.process(job)
	}
}

func (s *videoRenderService) process(job domain.RenderJob) {
	res, err := s.Render(context.Background(), job.NodeID)
	if err == nil {
		s.logger.InfoWithFields("render job finished", map[string]interface{}{
			"node_id":         job.NodeID,
			"video_url":       res.VideoURL,
			"already_existed": res.AlreadyExisted,
		})
		return
	}

	if errors.Is(err, domain.ErrRenderInProgress) || errors.Is(err, domain.ErrNodeNotFound) {
		s.logger.WarnWithFields("render job dropped", map[string]interface{}{
			"node_id": job.NodeID,
			"reason":  err.Error(),
		})
		return
	}

	if job.Attempt < s.maxRetries {
		s.logger.ErrorWithFields(err, "render job failed, requeueing", map[string]interface{}{
			"node_id": job.NodeID,
			"attempt": job.Attempt,
		})
		select {
		case s.jobs <- domain.RenderJob{NodeID: job.NodeID, Attempt: job.Attempt + 1}:
		default:
			s.logger.ErrorWithFields(err, "render queue full, job abandoned", map[string]interface{}{
				"node_id": job.NodeID,
			})
		}
		return
	}

	s.logger.ErrorWithFields(err, "render job failed permanently", map[string]interface{}{
		"node_id":  job.NodeID,
		"attempts": job.Attempt + 1,
	})
}

func (s *videoRenderService) Render(ctx context.Context, nodeID string) (*inbound.RenderResult, error) {
	node, err := s.store.GetRenderedNode(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	if node.VideoURL != nil && *node.VideoURL != "" {
		return &inbound.RenderResult{VideoURL: *node.VideoURL, AlreadyExisted: true}, nil
	}

	if _, loaded := s.inFlight.LoadOrStore(nodeID, struct{}{}); loaded {
		return nil, domain.ErrRenderInProgress
	}
	defer s.inFlight.Delete(nodeID)

	video, err := s.generator.Generate(ctx, node.Content)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("videos/%s/%s/%s.mp4", node.UserID, node.DreamID, node.NodeID)
	videoURL, err := s.mediaStore.Upload(ctx, outbound.UploadRequest{
		Payload:     video,
		Key:         key,
		ContentType: "video/mp4",
	})
	if err != nil {
		return nil, err
	}

	set, err := s.store.SetVideoURL(ctx, nodeID, videoURL)
	if err != nil {
		return nil, err
	}
	if !set {
		// First writer wins: another render got there before us, return its
		// URL instead of our orphaned upload.
		current, err := s.store.GetRenderedNode(ctx, nodeID)
		if err != nil {
			return nil, err
		}
		if current.VideoURL != nil {
			return &inbound.RenderResult{VideoURL: *current.VideoURL, AlreadyExisted: true}, nil
		}
		return nil, &domain.StoreError{Stage: "set video url", Err: fmt.Errorf("update matched no row")}
	}

	return &inbound.RenderResult{VideoURL: videoURL}, nil
}
