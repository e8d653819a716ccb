package model

import (
	"path"
	"strings"
	"time"
)

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// IsAllowedImage checks the file extension of an uploaded image key.
func IsAllowedImage(fileKey string) bool {
	return allowedImageExtensions[strings.ToLower(path.Ext(fileKey))]
}

type Image struct {
	ID              int64     `json:"id"`
	WorkspaceID     int64     `json:"workspace_id"`
	PostID          *int64    `json:"post_id,omitempty"`
	FileKey         string    `json:"file_key"`
	SizeInBytes     int64     `json:"size_in_bytes"`
	IsTemporaryFile bool      `json:"is_temporary_file"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Video struct {
	ID                int64     `json:"id"`
	WorkspaceID       int64     `json:"workspace_id"`
	PostID            *int64    `json:"post_id,omitempty"`
	FileKey           string    `json:"file_key"`
	ThumbnailURL      *string   `json:"thumbnail_url,omitempty"`
	DurationInSeconds int32     `json:"duration_in_seconds"`
	SizeInBytes       int64     `json:"size_in_bytes"`
	IsTemporaryFile   bool      `json:"is_temporary_file"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
