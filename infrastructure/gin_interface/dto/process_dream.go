package dto

type ProcessDreamRequest struct {
	AudioBase64   string `json:"audioBase64"`
	AudioMimeType string `json:"audioMimeType"`
	TextInput     string `json:"textInput"`
	DreamID       string `json:"dreamId"`
	ParentNodeID  string `json:"parentNodeId"`
	// GenerateVideo defaults to true when omitted.
	GenerateVideo *bool `json:"generateVideo"`
}

type StoryNodeResponse struct {
	ID        string  `json:"id"`
	Content   string  `json:"content"`
	VideoURL  *string `json:"videoUrl,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

type StoryOptionResponse struct {
	ID         string `json:"id"`
	OptionText string `json:"optionText"`
}

type ProcessDreamResponse struct {
	DreamID     string                `json:"dreamId"`
	StoryNode   StoryNodeResponse     `json:"storyNode"`
	Options     []StoryOptionResponse `json:"options"`
	Transcript  string                `json:"transcript"`
	VideoStatus string                `json:"videoStatus"`
}
