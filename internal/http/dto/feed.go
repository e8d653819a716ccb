package dto

import (
	"time"

	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/service"
)

type CreatePostRequest struct {
	Content   string `json:"content" binding:"max=5000"`
	Workspace *ID    `json:"workspace"`
	ImageIDs  []ID   `json:"image_ids"`
	VideoIDs  []ID   `json:"video_ids"`
}

type UpdateContentRequest struct {
	Content string `json:"content"`
}

type CreateCommentRequest struct {
	Post      ID     `json:"post"`
	Parent    *ID    `json:"parent"`
	Content   string `json:"content"`
	Workspace *ID    `json:"workspace"`
}

type CreateActivityRequest struct {
	TargetType string `json:"target_type"`
	TargetID   ID     `json:"target_id"`
	Workspace  *ID    `json:"workspace"`
}

type CommentResponse struct {
	ID          int64     `json:"id,string"`
	WorkspaceID int64     `json:"workspace,string"`
	PostID      int64     `json:"post,string"`
	AuthorID    int64     `json:"author,string"`
	ParentID    *int64    `json:"parent,omitempty,string"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToCommentResponse(c *model.Comment) *CommentResponse {
	return &CommentResponse{
		ID:          c.ID,
		WorkspaceID: c.WorkspaceID,
		PostID:      c.PostID,
		AuthorID:    c.AuthorID,
		ParentID:    c.ParentID,
		Content:     c.Content,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ToCommentResponses(list []model.Comment) []CommentResponse {
	out := make([]CommentResponse, len(list))
	for i := range list {
		out[i] = *ToCommentResponse(&list[i])
	}
	return out
}

type FeedCommentResponse struct {
	ID         int64                 `json:"id,string"`
	Content    string                `json:"content"`
	Author     *AuthorResponse       `json:"author"`
	LikesCount int                   `json:"likes_count"`
	IsLiked    bool                  `json:"is_liked"`
	LikeID     *int64                `json:"like_id,string"`
	Replies    []FeedCommentResponse `json:"replies"`
	CreatedAt  time.Time             `json:"created_at"`
}

func toFeedComment(c *model.FeedComment) FeedCommentResponse {
	replies := make([]FeedCommentResponse, len(c.Replies))
	for i := range c.Replies {
		replies[i] = toFeedComment(&c.Replies[i])
	}
	return FeedCommentResponse{
		ID:         c.ID,
		Content:    c.Content,
		Author:     ToAuthorResponse(c.Author),
		LikesCount: c.LikesCount,
		IsLiked:    c.IsLiked(),
		LikeID:     c.LikeID,
		Replies:    replies,
		CreatedAt:  c.CreatedAt,
	}
}

type PostResponse struct {
	ID            int64                 `json:"id,string"`
	WorkspaceID   int64                 `json:"workspace,string"`
	Content       string                `json:"content"`
	Author        *AuthorResponse       `json:"author"`
	LikesCount    int                   `json:"likes_count"`
	CommentsCount int                   `json:"comments_count"`
	IsLiked       bool                  `json:"is_liked"`
	LikeID        *int64                `json:"like_id,string"`
	Comments      []FeedCommentResponse `json:"comments"`
	Images        []ImageResponse       `json:"images"`
	Videos        []VideoResponse       `json:"videos"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func ToPostResponse(p *model.FeedPost, renditions *service.Renditions) *PostResponse {
	comments := make([]FeedCommentResponse, len(p.Comments))
	for i := range p.Comments {
		comments[i] = toFeedComment(&p.Comments[i])
	}
	return &PostResponse{
		ID:            p.ID,
		WorkspaceID:   p.WorkspaceID,
		Content:       p.Content,
		Author:        ToAuthorResponse(p.Author),
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		IsLiked:       p.IsLiked(),
		LikeID:        p.LikeID,
		Comments:      comments,
		Images:        ToImageResponses(p.Images, renditions),
		Videos:        ToVideoResponses(p.Videos, renditions),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToPostResponses(list []model.FeedPost, renditions *service.Renditions) []PostResponse {
	out := make([]PostResponse, len(list))
	for i := range list {
		out[i] = *ToPostResponse(&list[i], renditions)
	}
	return out
}

type ActivityResponse struct {
	ID           int64     `json:"id,string"`
	WorkspaceID  int64     `json:"workspace,string"`
	UserID       int64     `json:"user,string"`
	ActivityType string    `json:"activity_type"`
	TargetType   string    `json:"target_type"`
	TargetID     int64     `json:"target_id,string"`
	CreatedAt    time.Time `json:"date"`
}

func ToActivityResponse(a *model.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:           a.ID,
		WorkspaceID:  a.WorkspaceID,
		UserID:       a.UserID,
		ActivityType: string(a.ActivityType),
		TargetType:   string(a.TargetType),
		TargetID:     a.TargetID,
		CreatedAt:    a.CreatedAt,
	}
}

func ToActivityResponses(list []model.Activity) []ActivityResponse {
	out := make([]ActivityResponse, len(list))
	for i := range list {
		out[i] = *ToActivityResponse(&list[i])
	}
	return out
}
