package services

import (
	"context"
	"sync"

	"github.com/ThoughtFull-World/tf-dreams/application/ports/inbound"
	"github.com/ThoughtFull-World/tf-dreams/application/ports/outbound"
	"github.com/ThoughtFull-World/tf-dreams/domain"
)

// syncDispatcher runs submitted tasks inline so tests see their effects
// immediately.
type syncDispatcher struct{}

func (syncDispatcher) Submit(task func()) error {
	task()
	return nil
}

type fakeTranscriber struct {
	transcript string
	err        error
	gotReq     outbound.TranscribeRequest
	calls      int
}

func (f *fakeTranscriber) Transcribe(_ context.Context, req outbound.TranscribeRequest) (string, error) {
	f.calls++
	f.gotReq = req
	return f.transcript, f.err
}

type fakeStoryService struct {
	story     *domain.GeneratedStory
	err       error
	gotParams inbound.GenerateNodeParams
}

func (f *fakeStoryService) GenerateNode(_ context.Context, params inbound.GenerateNodeParams) (*domain.GeneratedStory, error) {
	f.gotParams = params
	return f.story, f.err
}

type fakeStoryGenerator struct {
	story  *domain.GeneratedStory
	err    error
	gotReq outbound.GenerateStoryRequest
}

func (f *fakeStoryGenerator) Generate(_ context.Context, req outbound.GenerateStoryRequest) (*domain.GeneratedStory, error) {
	f.gotReq = req
	return f.story, f.err
}

type fakeMemory struct {
	searchResult string
	searchErr    error
	addErr       error
	added        []string
}

func (f *fakeMemory) Search(_ context.Context, _ string, _ string) (string, error) {
	return f.searchResult, f.searchErr
}

func (f *fakeMemory) Add(_ context.Context, _ string, content string) error {
	f.added = append(f.added, content)
	return f.addErr
}

type fakeDreamStore struct {
	mu sync.Mutex

	saveResult    *domain.DreamResult
	saveErr       error
	gotSaveParams outbound.SaveDreamParams

	node    *domain.RenderedNode
	nodeErr error

	setOK       bool
	setErr      error
	setCalls    int
	gotVideoURL string
	lostRaceURL string

	priorContents []string
	priorErr      error
	priorCalls    int

	videos []domain.RandomVideo
}

func (f *fakeDreamStore) SaveDream(_ context.Context, params outbound.SaveDreamParams) (*domain.DreamResult, error) {
	f.gotSaveParams = params
	return f.saveResult, f.saveErr
}

func (f *fakeDreamStore) GetRenderedNode(_ context.Context, _ string) (*domain.RenderedNode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.nodeErr != nil {
		return nil, f.nodeErr
	}
	node := *f.node
	return &node, nil
}

func (f *fakeDreamStore) SetVideoURL(_ context.Context, _ string, videoURL string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	f.gotVideoURL = videoURL
	if f.setErr != nil {
		return false, f.setErr
	}
	if f.setOK {
		f.node.VideoURL = &videoURL
		return true, nil
	}
	if f.lostRaceURL != "" {
		url := f.lostRaceURL
		f.node.VideoURL = &url
	}
	return false, nil
}

func (f *fakeDreamStore) PriorNodeContents(_ context.Context, _ string) ([]string, error) {
	f.priorCalls++
	return f.priorContents, f.priorErr
}

func (f *fakeDreamStore) ListRecentVideos(_ context.Context, _ int) ([]domain.RandomVideo, error) {
	return f.videos, nil
}

type fakeVideoGenerator struct {
	video      []byte
	err        error
	gotContent string
	calls      int
}

func (f *fakeVideoGenerator) Generate(_ context.Context, storyContent string) ([]byte, error) {
	f.calls++
	f.gotContent = storyContent
	return f.video, f.err
}

type fakeMediaStore struct {
	url    string
	err    error
	gotReq outbound.UploadRequest
	calls  int
}

func (f *fakeMediaStore) Upload(_ context.Context, req outbound.UploadRequest) (string, error) {
	f.calls++
	f.gotReq = req
	return f.url, f.err
}

type fakeRenderer struct {
	enqueued   []string
	enqueueErr error
}

func (f *fakeRenderer) Render(_ context.Context, _ string) (*inbound.RenderResult, error) {
	return nil, nil
}

func (f *fakeRenderer) Enqueue(nodeID string) error {
	f.enqueued = append(f.enqueued, nodeID)
	return f.enqueueErr
}
