package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"helloteam.app/api/common/errs"
	"helloteam.app/api/common/id"
	"helloteam.app/api/core/config"
	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/store"
	"helloteam.app/api/internal/tenant"
)

const mediaPrefix = "media/"

var (
	ErrImageNotFound  = errs.NotFound("image not found")
	ErrVideoNotFound  = errs.NotFound("video not found")
	ErrImageExtension = errs.Validation("unsupported image type, use png, jpg, jpeg or gif", "file")
)

type ImageRenditions struct {
	Thumb     string `json:"thumb"`
	Landscape string `json:"landscape"`
	Portrait  string `json:"portrait"`
	Square    string `json:"square"`
}

// Renditions builds image handler URLs. The handler decodes a base64 JSON
// request naming the bucket, the object key and the resize box.
type Renditions struct {
	cfg config.MediaConfig
}

func NewRenditions(cfg config.MediaConfig) *Renditions {
	cfg.ImageHandlerURL = strings.TrimRight(cfg.ImageHandlerURL, "/")
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Renditions{cfg: cfg}
}

type resizeRequest struct {
	Bucket string      `json:"bucket"`
	Key    string      `json:"key"`
	Edits  resizeEdits `json:"edits"`
}

type resizeEdits struct {
	Resize resizeBox `json:"resize"`
}

type resizeBox struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Fit    string `json:"fit"`
}

// ForImage returns empty URLs when no image handler is configured.
func (r *Renditions) ForImage(img *model.Image) ImageRenditions {
	if !r.cfg.RenditionsEnabled() {
		return ImageRenditions{}
	}
	return ImageRenditions{
		Thumb:     r.url(img.FileKey, r.cfg.Thumb),
		Landscape: r.url(img.FileKey, r.cfg.Landscape),
		Portrait:  r.url(img.FileKey, r.cfg.Portrait),
		Square:    r.url(img.FileKey, r.cfg.Square),
	}
}

func (r *Renditions) url(fileKey string, size config.Size) string {
	payload, err := json.Marshal(resizeRequest{
		Bucket: r.cfg.Bucket,
		Key:    mediaPrefix + fileKey,
		Edits: resizeEdits{Resize: resizeBox{
			Width:  size.Width,
			Height: size.Height,
			Fit:    "cover",
		}},
	})
	if err != nil {
		return ""
	}
	return r.cfg.ImageHandlerURL + "/" + base64.StdEncoding.EncodeToString(payload)
}

// VideoURL points at the stored object under the media base URL.
func (r *Renditions) VideoURL(video *model.Video) string {
	if r.cfg.BaseURL == "" {
		return mediaPrefix + video.FileKey
	}
	return r.cfg.BaseURL + "/" + mediaPrefix + video.FileKey
}

type CreateImageInput struct {
	FileKey         string
	SizeInBytes     int64
	IsTemporaryFile bool
	WorkspaceID     *int64
}

type CreateVideoInput struct {
	FileKey           string
	ThumbnailURL      *string
	DurationInSeconds int32
	SizeInBytes       int64
	IsTemporaryFile   bool
	WorkspaceID       *int64
}

type MediaService interface {
	ListImages(ctx context.Context, scope tenant.Scope) ([]model.Image, error)
	CreateImage(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in CreateImageInput) (*model.Image, error)
	GetImage(ctx context.Context, scope tenant.Scope, imageID int64) (*model.Image, error)
	DeleteImage(ctx context.Context, scope tenant.Scope, imageID int64) error

	ListVideos(ctx context.Context, scope tenant.Scope) ([]model.Video, error)
	CreateVideo(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in CreateVideoInput) (*model.Video, error)
	GetVideo(ctx context.Context, scope tenant.Scope, videoID int64) (*model.Video, error)
	DeleteVideo(ctx context.Context, scope tenant.Scope, videoID int64) error
}

type mediaService struct {
	images store.ImageStore
	videos store.VideoStore
	gate   *tenant.Gate
}

func NewMediaService(images store.ImageStore, videos store.VideoStore, gate *tenant.Gate) MediaService {
	return &mediaService{images: images, videos: videos, gate: gate}
}

func (s *mediaService) ListImages(ctx context.Context, scope tenant.Scope) ([]model.Image, error) {
	images, err := s.images.List(ctx, scope.Filter())
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}
	return images, nil
}

func (s *mediaService) CreateImage(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in CreateImageInput) (*model.Image, error) {
	fileKey := strings.TrimPrefix(strings.TrimSpace(in.FileKey), mediaPrefix)
	if fileKey == "" {
		return nil, errs.Validation("the following required fields are missing", "file")
	}
	if !model.IsAllowedImage(fileKey) {
		return nil, ErrImageExtension
	}

	workspaceID, err := s.gate.TargetWorkspace(ctx, rc, scope, in.WorkspaceID)
	if err != nil {
		return nil, err
	}

	img := &model.Image{
		ID:              id.New(),
		WorkspaceID:     workspaceID,
		FileKey:         fileKey,
		SizeInBytes:     max(in.SizeInBytes, 0),
		IsTemporaryFile: in.IsTemporaryFile,
	}
	if err := s.images.Create(ctx, img); err != nil {
		return nil, fmt.Errorf("creating image: %w", err)
	}

	slog.InfoContext(ctx, "image registered", "image_id", img.ID, "workspace_id", workspaceID)
	return img, nil
}

func (s *mediaService) GetImage(ctx context.Context, scope tenant.Scope, imageID int64) (*model.Image, error) {
	img, err := s.images.Get(ctx, imageID, scope.Filter())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("getting image: %w", err)
	}
	return img, nil
}

func (s *mediaService) DeleteImage(ctx context.Context, scope tenant.Scope, imageID int64) error {
	if err := s.images.Delete(ctx, imageID, scope.Filter()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrImageNotFound
		}
		return fmt.Errorf("deleting image: %w", err)
	}
	return nil
}

func (s *mediaService) ListVideos(ctx context.Context, scope tenant.Scope) ([]model.Video, error) {
	videos, err := s.videos.List(ctx, scope.Filter())
	if err != nil {
		return nil, fmt.Errorf("listing videos: %w", err)
	}
	return videos, nil
}

func (s *mediaService) CreateVideo(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in CreateVideoInput) (*model.Video, error) {
	fileKey := strings.TrimPrefix(strings.TrimSpace(in.FileKey), mediaPrefix)
	if fileKey == "" {
		return nil, errs.Validation("the following required fields are missing", "file")
	}

	workspaceID, err := s.gate.TargetWorkspace(ctx, rc, scope, in.WorkspaceID)
	if err != nil {
		return nil, err
	}

	video := &model.Video{
		ID:                id.New(),
		WorkspaceID:       workspaceID,
		FileKey:           fileKey,
		ThumbnailURL:      in.ThumbnailURL,
		DurationInSeconds: max(in.DurationInSeconds, 0),
		SizeInBytes:       max(in.SizeInBytes, 0),
		IsTemporaryFile:   in.IsTemporaryFile,
	}
	if err := s.videos.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("creating video: %w", err)
	}

	slog.InfoContext(ctx, "video registered", "video_id", video.ID, "workspace_id", workspaceID)
	return video, nil
}

func (s *mediaService) GetVideo(ctx context.Context, scope tenant.Scope, videoID int64) (*model.Video, error) {
	video, err := s.videos.Get(ctx, videoID, scope.Filter())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("getting video: %w", err)
	}
	return video, nil
}

func (s *mediaService) DeleteVideo(ctx context.Context, scope tenant.Scope, videoID int64) error {
	if err := s.videos.Delete(ctx, videoID, scope.Filter()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrVideoNotFound
		}
		return fmt.Errorf("deleting video: %w", err)
	}
	return nil
}
