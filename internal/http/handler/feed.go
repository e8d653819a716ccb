package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helloteam.app/api/internal/http/dto"
	"helloteam.app/api/internal/http/middleware"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/service"
)

type FeedHandler struct {
	feedService service.FeedService
	renditions  *service.Renditions
}

func NewFeedHandler(feedService service.FeedService, renditions *service.Renditions) *FeedHandler {
	return &FeedHandler{feedService: feedService, renditions: renditions}
}

func (h *FeedHandler) ListPosts(c *gin.Context) {
	limit, ok := queryInt32(c, "limit", service.DefaultFeedPageSize)
	if !ok {
		return
	}
	offset, ok := queryInt32(c, "offset", 0)
	if !ok {
		return
	}

	posts, err := h.feedService.ListPosts(c.Request.Context(), middleware.GetRequestContext(c), middleware.GetScope(c), min(limit, service.MaxFeedPageSize), offset)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPostResponses(posts, h.renditions))
}

func (h *FeedHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.feedService.CreatePost(c.Request.Context(), middleware.GetRequestContext(c), middleware.GetScope(c), service.CreatePostInput{
		Content:     req.Content,
		WorkspaceID: req.Workspace.Ptr(),
		ImageIDs:    dto.Int64s(req.ImageIDs),
		VideoIDs:    dto.Int64s(req.VideoIDs),
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPostResponse(post, h.renditions))
}

func (h *FeedHandler) GetPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.feedService.GetPost(c.Request.Context(), middleware.GetRequestContext(c), middleware.GetScope(c), postID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPostResponse(post, h.renditions))
}

func (h *FeedHandler) UpdatePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateContentRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.feedService.UpdatePost(c.Request.Context(), middleware.GetRequestContext(c), middleware.GetScope(c), postID, req.Content)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPostResponse(post, h.renditions))
}

func (h *FeedHandler) DeletePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.feedService.DeletePost(c.Request.Context(), middleware.GetRequestContext(c), middleware.GetScope(c), postID); err != nil {
		middleware.RespondError(c, err)
		return
	}
	noContent(c)
}

func (h *FeedHandler) PostLikes(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	likes, err := h.feedService.PostLikes(c.Request.Context(), middleware.GetScope(c), postID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToActivityResponses(likes))
}

func (h *FeedHandler) ListComments(c *gin.Context) {
	postID, ok := queryID(c, "post")
	if !ok {
		return
	}

	comments, err := h.feedService.ListComments(c.Request.Context(), middleware.GetScope(c), postID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

func (h *FeedHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.feedService.CreateComment(c.Request.Context(), middleware.GetRequestContext(c), middleware.GetScope(c), service.CreateCommentInput{
		PostID:      int64(req.Post),
		ParentID:    req.Parent.Ptr(),
		Content:     req.Content,
		WorkspaceID: req.Workspace.Ptr(),
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

func (h *FeedHandler) GetComment(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comment, err := h.feedService.GetComment(c.Request.Context(), middleware.GetScope(c), commentID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

func (h *FeedHandler) UpdateComment(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateContentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.feedService.UpdateComment(c.Request.Context(), middleware.GetRequestContext(c), middleware.GetScope(c), commentID, req.Content)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

func (h *FeedHandler) DeleteComment(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.feedService.DeleteComment(c.Request.Context(), middleware.GetRequestContext(c), middleware.GetScope(c), commentID); err != nil {
		middleware.RespondError(c, err)
		return
	}
	noContent(c)
}

func (h *FeedHandler) ListActivities(c *gin.Context) {
	var targetType *model.TargetType
	if raw := c.Query("target_type"); raw != "" {
		t := model.TargetType(raw)
		targetType = &t
	}
	targetID, ok := queryID(c, "target_id")
	if !ok {
		return
	}

	activities, err := h.feedService.ListActivities(c.Request.Context(), middleware.GetScope(c), targetType, targetID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToActivityResponses(activities))
}

func (h *FeedHandler) CreateActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := h.feedService.CreateActivity(c.Request.Context(), middleware.GetRequestContext(c), middleware.GetScope(c), service.CreateActivityInput{
		TargetType:  model.TargetType(req.TargetType),
		TargetID:    int64(req.TargetID),
		WorkspaceID: req.Workspace.Ptr(),
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToActivityResponse(activity))
}

func (h *FeedHandler) DeleteActivity(c *gin.Context) {
	activityID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.feedService.DeleteActivity(c.Request.Context(), middleware.GetRequestContext(c), middleware.GetScope(c), activityID); err != nil {
		middleware.RespondError(c, err)
		return
	}
	noContent(c)
}
