package domain

import "time"

// Dream is one ingestion session. A session can be continued with new audio,
// in which case the transcript is overwritten with the latest one.
type Dream struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	Transcript string    `db:"transcript"`
	CreatedAt  time.Time `db:"created_at"`
}

// StoryNode is one generated segment of a dream's story. VideoURL stays nil
// until the render task finishes; once set it is never overwritten.
type StoryNode struct {
	ID           string    `db:"id"`
	DreamID      string    `db:"dream_id"`
	ParentNodeID *string   `db:"parent_node_id"`
	Content      string    `db:"content"`
	VideoURL     *string   `db:"video_url"`
	CreatedAt    time.Time `db:"created_at"`
}

// StoryOption is a suggested continuation of a node. NextNodeID is populated
// only when the user acts on the option.
type StoryOption struct {
	ID          string  `db:"id"`
	StoryNodeID string  `db:"story_node_id"`
	OptionText  string  `db:"option_text"`
	NextNodeID  *string `db:"next_node_id"`
}

// GeneratedStory is the language model output: narrative text plus exactly
// three continuation options.
type GeneratedStory struct {
	Content string
	Options []string
}

// DreamResult is the hydrated outcome of one pipeline run.
type DreamResult struct {
	DreamID    string
	Node       StoryNode
	Options    []StoryOption
	Transcript string
}

// RenderJob is the unit of work on the render queue. Everything beyond the
// node id is re-read from the store when the job runs.
type RenderJob struct {
	NodeID  string
	Attempt int
}

// RenderedNode joins a node with the owning user and dream, which the render
// task needs to build the storage key.
type RenderedNode struct {
	NodeID   string  `db:"id"`
	DreamID  string  `db:"dream_id"`
	UserID   string  `db:"user_id"`
	Content  string  `db:"content"`
	VideoURL *string `db:"video_url"`
}

// RandomVideo is one entry of the public random-video feed.
type RandomVideo struct {
	VideoURL  string    `db:"video_url"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

type VideoStatus string

const (
	VideoStatusReady    VideoStatus = "ready"
	VideoStatusPending  VideoStatus = "pending"
	VideoStatusNotFound VideoStatus = "not_found"
)
