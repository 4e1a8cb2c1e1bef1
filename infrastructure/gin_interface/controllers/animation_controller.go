package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"animate-frames-lambda/application/ports/inbound"
	"animate-frames-lambda/application/ports/outbound"
	"animate-frames-lambda/domain"
	"animate-frames-lambda/infrastructure/gin_interface/dto"
)

const defaultFrameRate = 4

type AnimationController interface {
	CreateAnimation(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type animationController struct {
	logger        outbound.LoggerPort
	pipeline      inbound.AnimationPipelinePort
	outputBaseDir string
}

func NewAnimationController(logger outbound.LoggerPort, pipeline inbound.AnimationPipelinePort,
	outputBaseDir string) AnimationController {
	return &animationController{
		logger:        logger,
		pipeline:      pipeline,
		outputBaseDir: outputBaseDir,
	}
}

func (a *animationController) CreateAnimation(c *gin.Context) {
	var req dto.CreateAnimationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Fps == 0 {
		req.Fps = defaultFrameRate
	}

	// One output directory per request keeps the fixed artifact basenames
	// from colliding across concurrent invocations.
	runID := uuid.NewString()
	outputDir := filepath.Join(a.outputBaseDir, runID)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		a.logger.Error(err, "failed to create output directory")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to create output directory"})
		return
	}

	result, err := a.pipeline.StartPipeline(c.Request.Context(), inbound.StartPipelineParams{
		URLs:          req.ImageURLs,
		VideoMode:     req.Mp4,
		FrameRate:     req.Fps,
		ArchiveInputs: req.OutputZip,
		OutputDir:     outputDir,
		RunID:         runID,
	})
	if err != nil {
		a.logger.ErrorWithFields(err, "pipeline failed", map[string]interface{}{
			"run_id": runID,
		})
		switch {
		case errors.Is(err, domain.ErrMalformedInput):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrNoFrames):
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.CreateAnimationResponse{
		RunID:           runID,
		MediaPath:       result.MediaFileName,
		ArchivePath:     result.ArchiveFileName,
		FrameCount:      result.FrameCount,
		PublishedKey:    result.PublishedKey,
		PublishedRegion: result.PublishedRegion,
	})
}

func (a *animationController) RegisterRoutes(g *gin.Engine) {
	g.POST("/animate", a.CreateAnimation)
}
