package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ThoughtFull-World/tf-dreams/application/ports/inbound"
	"github.com/ThoughtFull-World/tf-dreams/application/ports/outbound"
	"github.com/ThoughtFull-World/tf-dreams/domain"
)

type dreamPipelineOrchestrator struct {
	logger       outbound.LoggerPort
	workerPool   outbound.TaskDispatcher
	transcriber  outbound.TranscriberPort
	storyService inbound.StoryServicePort
	store        outbound.DreamStorePort
	mediaStore   outbound.MediaStorePort
	renderer     inbound.VideoRenderPort
}

// NewDreamPipelineOrchestrator wires the synchronous part of the pipeline:
// transcribe, generate, persist. Rendering is scheduled on the render queue
// and not awaited.
func NewDreamPipelineOrchestrator(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	transcriber outbound.TranscriberPort, storyService inbound.StoryServicePort,
	store outbound.DreamStorePort, mediaStore outbound.MediaStorePort,
	renderer inbound.VideoRenderPort) inbound.DreamPipelinePort {
	return &dreamPipelineOrchestrator{
		logger:       logger,
		workerPool:   workerPool,
		transcriber:  transcriber,
		storyService: storyService,
		store:        store,
		mediaStore:   mediaStore,
		renderer:     renderer,
	}
}

func (o *dreamPipelineOrchestrator) ProcessDream(ctx context.Context, params inbound.ProcessDreamParams) (*domain.DreamResult, error) {
	hasAudio := len(params.Audio) > 0
	hasText := params.TextInput != ""
	if hasAudio == hasText {
		return nil, domain.NewValidationError("either audio or textInput must be provided, not both")
	}
	if hasAudio && params.AudioMimeType == "" {
		return nil, domain.NewValidationError("audioMimeType required when sending audio")
	}

	transcript := params.TextInput
	if hasAudio {
		var err error
		transcript, err = o.transcriber.Transcribe(ctx, outbound.TranscribeRequest{
			Audio:    params.Audio,
			MimeType: params.AudioMimeType,
		})
		if err != nil {
			return nil, err
		}
		o.archiveAudio(params)
	}

	story, err := o.storyService.GenerateNode(ctx, inbound.GenerateNodeParams{
		UserID:       params.UserID,
		Transcript:   transcript,
		DreamID:      params.DreamID,
		ParentNodeID: params.ParentNodeID,
	})
	if err != nil {
		return nil, err
	}

	result, err := o.store.SaveDream(ctx, outbound.SaveDreamParams{
		UserID:       params.UserID,
		Transcript:   transcript,
		StoryContent: story.Content,
		Options:      story.Options,
		DreamID:      params.DreamID,
		ParentNodeID: params.ParentNodeID,
	})
	if err != nil {
		return nil, err
	}

	if params.GenerateVideo {
		if err := o.renderer.Enqueue(result.Node.ID); err != nil {
			// The caller already has its story; a full queue only delays
			// the video, so this is not surfaced.
			o.logger.ErrorWithFields(err, "failed to enqueue render job", map[string]interface{}{
				"node_id": result.Node.ID,
			})
		}
	}

	return result, nil
}

// archiveAudio keeps the raw recording in the object store. Best-effort: the
// transcript is already in hand, so a failed archive never fails the call.
func (o *dreamPipelineOrchestrator) archiveAudio(params inbound.ProcessDreamParams) {
	dreamID := params.DreamID
	if dreamID == "" {
		dreamID = "temp"
	}
	key := fmt.Sprintf("audio/%s/%s/%d.%s", params.UserID, dreamID,
		time.Now().UnixMilli(), domain.FileExtensionForMime(params.AudioMimeType))

	err := o.workerPool.Submit(func() {
		if _, err := o.mediaStore.Upload(context.Background(), outbound.UploadRequest{
			Payload:     params.Audio,
			Key:         key,
			ContentType: params.AudioMimeType,
		}); err != nil {
			o.logger.WarnWithFields("failed to archive audio", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	})
	if err != nil {
		o.logger.Warn("failed to submit audio archive task")
	}
}
