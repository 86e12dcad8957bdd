package dto

type GenerateVideoRequest struct {
	StoryNodeID string `json:"storyNodeId" binding:"required"`
}

type GenerateVideoResponse struct {
	Success  bool   `json:"success"`
	VideoURL string `json:"videoUrl,omitempty"`
	NodeID   string `json:"nodeId"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

type VideoStatusRequest struct {
	StoryNodeID string `json:"storyNodeId"`
	NodeID      string `json:"nodeId"`
}

type VideoStatusResponse struct {
	NodeID   string  `json:"nodeId"`
	VideoURL *string `json:"videoUrl"`
	Status   string  `json:"status"`
}

type RandomVideoResponse struct {
	VideoURL     *string `json:"video_url"`
	StoryContent string  `json:"story_content,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
	Message      string  `json:"message,omitempty"`
}
