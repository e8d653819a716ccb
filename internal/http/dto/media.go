package dto

import (
	"time"

	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/service"
)

type CreateImageRequest struct {
	File            string `json:"file" binding:"max=512"`
	SizeInBytes     int64  `json:"size_in_bytes" binding:"gte=0"`
	IsTemporaryFile bool   `json:"is_temporary_file"`
	Workspace       *ID    `json:"workspace"`
}

type CreateVideoRequest struct {
	File              string  `json:"file" binding:"max=512"`
	ThumbnailURL      *string `json:"thumbnail_url" binding:"omitempty,url,max=2048"`
	DurationInSeconds int32   `json:"duration_in_seconds" binding:"gte=0"`
	SizeInBytes       int64   `json:"size_in_bytes" binding:"gte=0"`
	IsTemporaryFile   bool    `json:"is_temporary_file"`
	Workspace         *ID     `json:"workspace"`
}

type ImageResponse struct {
	ID              int64  `json:"id,string"`
	WorkspaceID     int64  `json:"workspace,string"`
	PostID          *int64 `json:"post,omitempty,string"`
	File            string `json:"file"`
	SizeInBytes     int64  `json:"size_in_bytes"`
	IsTemporaryFile bool   `json:"is_temporary_file"`
	service.ImageRenditions
	CreatedAt time.Time `json:"created_at"`
}

func ToImageResponse(img *model.Image, renditions *service.Renditions) *ImageResponse {
	return &ImageResponse{
		ID:              img.ID,
		WorkspaceID:     img.WorkspaceID,
		PostID:          img.PostID,
		File:            img.FileKey,
		SizeInBytes:     img.SizeInBytes,
		IsTemporaryFile: img.IsTemporaryFile,
		ImageRenditions: renditions.ForImage(img),
		CreatedAt:       img.CreatedAt,
	}
}

func ToImageResponses(list []model.Image, renditions *service.Renditions) []ImageResponse {
	out := make([]ImageResponse, len(list))
	for i := range list {
		out[i] = *ToImageResponse(&list[i], renditions)
	}
	return out
}

type VideoResponse struct {
	ID                int64     `json:"id,string"`
	WorkspaceID       int64     `json:"workspace,string"`
	PostID            *int64    `json:"post,omitempty,string"`
	File              string    `json:"file"`
	URL               string    `json:"url"`
	ThumbnailURL      *string   `json:"thumbnail_url,omitempty"`
	DurationInSeconds int32     `json:"duration_in_seconds"`
	SizeInBytes       int64     `json:"size_in_bytes"`
	IsTemporaryFile   bool      `json:"is_temporary_file"`
	CreatedAt         time.Time `json:"created_at"`
}

func ToVideoResponse(v *model.Video, renditions *service.Renditions) *VideoResponse {
	return &VideoResponse{
		ID:                v.ID,
		WorkspaceID:       v.WorkspaceID,
		PostID:            v.PostID,
		File:              v.FileKey,
		URL:               renditions.VideoURL(v),
		ThumbnailURL:      v.ThumbnailURL,
		DurationInSeconds: v.DurationInSeconds,
		SizeInBytes:       v.SizeInBytes,
		IsTemporaryFile:   v.IsTemporaryFile,
		CreatedAt:         v.CreatedAt,
	}
}

func ToVideoResponses(list []model.Video, renditions *service.Renditions) []VideoResponse {
	out := make([]VideoResponse, len(list))
	for i := range list {
		out[i] = *ToVideoResponse(&list[i], renditions)
	}
	return out
}
