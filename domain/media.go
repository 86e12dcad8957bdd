package domain

import "strings"

// FileExtensionForMime maps the audio MIME types the recorder produces to a
// file extension. Unknown types fall back to mp3.
func FileExtensionForMime(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "webm"):
		return "webm"
	case strings.Contains(mimeType, "wav"):
		return "wav"
	case strings.Contains(mimeType, "ogg"):
		return "ogg"
	case strings.Contains(mimeType, "m4a"):
		return "m4a"
	case strings.Contains(mimeType, "mp4"):
		return "mp4"
	default:
		return "mp3"
	}
}
