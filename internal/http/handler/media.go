package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helloteam.app/api/internal/http/dto"
	"helloteam.app/api/internal/http/middleware"
	"helloteam.app/api/internal/service"
)

type MediaHandler struct {
	mediaService service.MediaService
	renditions   *service.Renditions
}

func NewMediaHandler(mediaService service.MediaService, renditions *service.Renditions) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, renditions: renditions}
}

func (h *MediaHandler) ListImages(c *gin.Context) {
	images, err := h.mediaService.ListImages(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToImageResponses(images, h.renditions))
}

func (h *MediaHandler) CreateImage(c *gin.Context) {
	var req dto.CreateImageRequest
	if !bindJSON(c, &req) {
		return
	}

	img, err := h.mediaService.CreateImage(c.Request.Context(), middleware.GetRequestContext(c), middleware.GetScope(c), service.CreateImageInput{
		FileKey:         req.File,
		SizeInBytes:     req.SizeInBytes,
		IsTemporaryFile: req.IsTemporaryFile,
		WorkspaceID:     req.Workspace.Ptr(),
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToImageResponse(img, h.renditions))
}

func (h *MediaHandler) GetImage(c *gin.Context) {
	imageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	img, err := h.mediaService.GetImage(c.Request.Context(), middleware.GetScope(c), imageID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToImageResponse(img, h.renditions))
}

func (h *MediaHandler) DeleteImage(c *gin.Context) {
	imageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.mediaService.DeleteImage(c.Request.Context(), middleware.GetScope(c), imageID); err != nil {
		middleware.RespondError(c, err)
		return
	}
	noContent(c)
}

func (h *MediaHandler) ListVideos(c *gin.Context) {
	videos, err := h.mediaService.ListVideos(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVideoResponses(videos, h.renditions))
}

func (h *MediaHandler) CreateVideo(c *gin.Context) {
	var req dto.CreateVideoRequest
	if !bindJSON(c, &req) {
		return
	}

	video, err := h.mediaService.CreateVideo(c.Request.Context(), middleware.GetRequestContext(c), middleware.GetScope(c), service.CreateVideoInput{
		FileKey:           req.File,
		ThumbnailURL:      req.ThumbnailURL,
		DurationInSeconds: req.DurationInSeconds,
		SizeInBytes:       req.SizeInBytes,
		IsTemporaryFile:   req.IsTemporaryFile,
		WorkspaceID:       req.Workspace.Ptr(),
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVideoResponse(video, h.renditions))
}

func (h *MediaHandler) GetVideo(c *gin.Context) {
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	video, err := h.mediaService.GetVideo(c.Request.Context(), middleware.GetScope(c), videoID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVideoResponse(video, h.renditions))
}

func (h *MediaHandler) DeleteVideo(c *gin.Context) {
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.mediaService.DeleteVideo(c.Request.Context(), middleware.GetScope(c), videoID); err != nil {
		middleware.RespondError(c, err)
		return
	}
	noContent(c)
}
