package controllers

import (
	"encoding/base64"
	"net/http"

	"github.com/ThoughtFull-World/tf-dreams/application/ports/inbound"
	"github.com/ThoughtFull-World/tf-dreams/application/ports/outbound"
	"github.com/ThoughtFull-World/tf-dreams/infrastructure/gin_interface/dto"
	"github.com/ThoughtFull-World/tf-dreams/middleware"
	"github.com/gin-gonic/gin"
)

type DreamController interface {
	ProcessDream(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type dreamController struct {
	logger   outbound.LoggerPort
	pipeline inbound.DreamPipelinePort
}

func NewDreamController(logger outbound.LoggerPort, pipeline inbound.DreamPipelinePort) DreamController {
	return &dreamController{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (d *dreamController) ProcessDream(c *gin.Context) {
	var req dto.ProcessDreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body", "details": err.Error()})
		return
	}

	var audio []byte
	if req.AudioBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.AudioBase64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "audioBase64 is not valid base64", "details": err.Error()})
			return
		}
		audio = decoded
	}

	generateVideo := true
	if req.GenerateVideo != nil {
		generateVideo = *req.GenerateVideo
	}

	result, err := d.pipeline.ProcessDream(c.Request.Context(), inbound.ProcessDreamParams{
		UserID:        c.GetString(middleware.ContextUserIDKey),
		Audio:         audio,
		AudioMimeType: req.AudioMimeType,
		TextInput:     req.TextInput,
		DreamID:       req.DreamID,
		ParentNodeID:  req.ParentNodeID,
		GenerateVideo: generateVideo,
	})
	if err != nil {
		d.logger.Error(err, "failed to process dream")
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	options := make([]dto.StoryOptionResponse, 0, len(result.Options))
	for _, option := range result.Options {
		options = append(options, dto.StoryOptionResponse{
			ID:         option.ID,
			OptionText: option.OptionText,
		})
	}

	videoStatus := "disabled"
	if generateVideo {
		videoStatus = "generating"
	}

	c.JSON(http.StatusOK, dto.ProcessDreamResponse{
		DreamID: result.DreamID,
		StoryNode: dto.StoryNodeResponse{
			ID:        result.Node.ID,
			Content:   result.Node.Content,
			VideoURL:  result.Node.VideoURL,
			CreatedAt: result.Node.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		},
		Options:     options,
		Transcript:  result.Transcript,
		VideoStatus: videoStatus,
	})
}

func (d *dreamController) RegisterRoutes(g *gin.Engine) {
	g.POST("/process-dream", d.ProcessDream)
}
