package controllers

import (
	"errors"
	"net/http"

	"github.com/ThoughtFull-World/tf-dreams/domain"
)

// statusForError applies one convention throughout: 4xx for caller mistakes,
// 502 for failing upstream services, 500 for everything else.
func statusForError(err error) int {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	if errors.Is(err, domain.ErrNodeNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, domain.ErrRenderInProgress) {
		return http.StatusConflict
	}
	var generationErr *domain.GenerationError
	if errors.As(err, &generationErr) {
		return http.StatusBadGateway
	}
	var uploadErr *domain.UploadError
	if errors.As(err, &uploadErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
