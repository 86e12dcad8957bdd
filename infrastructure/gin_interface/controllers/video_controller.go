package controllers

import (
	"math/rand"
	"net/http"

	"github.com/ThoughtFull-World/tf-dreams/application/ports/inbound"
	"github.com/ThoughtFull-World/tf-dreams/application/ports/outbound"
	"github.com/ThoughtFull-World/tf-dreams/domain"
	"github.com/ThoughtFull-World/tf-dreams/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

const randomVideoPoolSize = 20

type VideoController interface {
	GenerateVideo(c *gin.Context)
	CheckVideoStatus(c *gin.Context)
	GetRandomVideo(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type videoController struct {
	logger   outbound.LoggerPort
	renderer inbound.VideoRenderPort
	status   inbound.VideoStatusPort
	store    outbound.DreamStorePort
}

func NewVideoController(logger outbound.LoggerPort, renderer inbound.VideoRenderPort,
	status inbound.VideoStatusPort, store outbound.DreamStorePort) VideoController {
	return &videoController{
		logger:   logger,
		renderer: renderer,
		status:   status,
		store:    store,
	}
}

func (v *videoController) GenerateVideo(c *gin.Context) {
	var req dto.GenerateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "storyNodeId is required", "details": err.Error()})
		return
	}

	result, err := v.renderer.Render(c.Request.Context(), req.StoryNodeID)
	if err != nil {
		v.logger.ErrorWithFields(err, "failed to generate video", map[string]interface{}{
			"node_id": req.StoryNodeID,
		})
		c.JSON(statusForError(err), dto.GenerateVideoResponse{
			Success: false,
			NodeID:  req.StoryNodeID,
			Error:   err.Error(),
		})
		return
	}

	res := dto.GenerateVideoResponse{
		Success:  true,
		VideoURL: result.VideoURL,
		NodeID:   req.StoryNodeID,
	}
	if result.AlreadyExisted {
		res.Message = "Video already exists"
	}
	c.JSON(http.StatusOK, res)
}

func (v *videoController) CheckVideoStatus(c *gin.Context) {
	nodeID := c.Query("nodeId")
	if nodeID == "" && c.Request.Method == http.MethodPost {
		var req dto.VideoStatusRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			nodeID = req.StoryNodeID
			if nodeID == "" {
				nodeID = req.NodeID
			}
		}
	}
	if nodeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nodeId is required"})
		return
	}

	status, videoURL, err := v.status.Status(c.Request.Context(), nodeID)
	if err != nil {
		v.logger.Error(err, "failed to check video status")
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	res := dto.VideoStatusResponse{
		NodeID: nodeID,
		Status: string(status),
	}
	if videoURL != "" {
		res.VideoURL = &videoURL
	}

	httpStatus := http.StatusOK
	if status == domain.VideoStatusNotFound {
		httpStatus = http.StatusNotFound
	}
	c.JSON(httpStatus, res)
}

func (v *videoController) GetRandomVideo(c *gin.Context) {
	videos, err := v.store.ListRecentVideos(c.Request.Context(), randomVideoPoolSize)
	if err != nil {
		v.logger.Error(err, "failed to list videos")
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")

	if len(videos) == 0 {
		c.JSON(http.StatusOK, dto.RandomVideoResponse{
			VideoURL: nil,
			Message:  "No videos available yet",
		})
		return
	}

	video := videos[rand.Intn(len(videos))]
	content := video.Content
	if len(content) > 100 {
		content = content[:100]
	}

	c.JSON(http.StatusOK, dto.RandomVideoResponse{
		VideoURL:     &video.VideoURL,
		StoryContent: content,
		CreatedAt:    video.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	})
}

func (v *videoController) RegisterRoutes(g *gin.Engine) {
	g.POST("/generate-video", v.GenerateVideo)
	g.GET("/check-video-status", v.CheckVideoStatus)
	g.POST("/check-video-status", v.CheckVideoStatus)
	g.GET("/get-random-video", v.GetRandomVideo)
}
