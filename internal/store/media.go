package store

import (
	"context"

	"helloteam.app/api/core/db/sqlc"
	"helloteam.app/api/internal/model"
)

type imageStore struct {
	queries *sqlc.Queries
}

func newImageStore(queries *sqlc.Queries) ImageStore {
	return &imageStore{queries: queries}
}

func (s *imageStore) Create(ctx context.Context, img *model.Image) error {
	row, err := s.queries.CreateImage(ctx, sqlc.CreateImageParams{
		ID:              img.ID,
		WorkspaceID:     img.WorkspaceID,
		PostID:          img.PostID,
		FileKey:         img.FileKey,
		SizeInBytes:     img.SizeInBytes,
		IsTemporaryFile: img.IsTemporaryFile,
	})
	if err != nil {
		return mapError(err)
	}
	*img = *toImageModel(row)
	return nil
}

func (s *imageStore) Get(ctx context.Context, id int64, workspaceID *int64) (*model.Image, error) {
	row, err := s.queries.GetImage(ctx, sqlc.GetImageParams{ID: id, WorkspaceID: workspaceID})
	if err != nil {
		return nil, mapError(err)
	}
	return toImageModel(row), nil
}

func (s *imageStore) List(ctx context.Context, workspaceID *int64) ([]model.Image, error) {
	rows, err := s.queries.ListImages(ctx, workspaceID)
	if err != nil {
		return nil, mapError(err)
	}
	return toImageModels(rows), nil
}

func (s *imageStore) ListForPosts(ctx context.Context, postIDs []int64) ([]model.Image, error) {
	if len(postIDs) == 0 {
		return []model.Image{}, nil
	}
	rows, err := s.queries.ListImagesForPosts(ctx, postIDs)
	if err != nil {
		return nil, mapError(err)
	}
	return toImageModels(rows), nil
}

// AttachToPost only moves images that already belong to workspaceID and
// reports how many it moved.
func (s *imageStore) AttachToPost(ctx context.Context, postID, workspaceID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := s.queries.AttachImagesToPost(ctx, sqlc.AttachImagesToPostParams{
		PostID:      postID,
		WorkspaceID: workspaceID,
		Ids:         ids,
	})
	return n, mapError(err)
}

func (s *imageStore) Delete(ctx context.Context, id int64, workspaceID *int64) error {
	return affected(s.queries.DeleteImage(ctx, sqlc.DeleteImageParams{ID: id, WorkspaceID: workspaceID}))
}

func toImageModel(row sqlc.Image) *model.Image {
	return &model.Image{
		ID:              row.ID,
		WorkspaceID:     row.WorkspaceID,
		PostID:          row.PostID,
		FileKey:         row.FileKey,
		SizeInBytes:     row.SizeInBytes,
		IsTemporaryFile: row.IsTemporaryFile,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}

func toImageModels(rows []sqlc.Image) []model.Image {
	result := make([]model.Image, len(rows))
	for i, row := range rows {
		result[i] = *toImageModel(row)
	}
	return result
}

type videoStore struct {
	queries *sqlc.Queries
}

func newVideoStore(queries *sqlc.Queries) VideoStore {
	return &videoStore{queries: queries}
}

func (s *videoStore) Create(ctx context.Context, video *model.Video) error {
	row, err := s.queries.CreateVideo(ctx, sqlc.CreateVideoParams{
		ID:                video.ID,
		WorkspaceID:       video.WorkspaceID,
		PostID:            video.PostID,
		FileKey:           video.FileKey,
		ThumbnailUrl:      video.ThumbnailURL,
		DurationInSeconds: video.DurationInSeconds,
		SizeInBytes:       video.SizeInBytes,
		IsTemporaryFile:   video.IsTemporaryFile,
	})
	if err != nil {
		return mapError(err)
	}
	*video = *toVideoModel(row)
	return nil
}

func (s *videoStore) Get(ctx context.Context, id int64, workspaceID *int64) (*model.Video, error) {
	row, err := s.queries.GetVideo(ctx, sqlc.GetVideoParams{ID: id, WorkspaceID: workspaceID})
	if err != nil {
		return nil, mapError(err)
	}
	return toVideoModel(row), nil
}

func (s *videoStore) List(ctx context.Context, workspaceID *int64) ([]model.Video, error) {
	rows, err := s.queries.ListVideos(ctx, workspaceID)
	if err != nil {
		return nil, mapError(err)
	}
	return toVideoModels(rows), nil
}

func (s *videoStore) ListForPosts(ctx context.Context, postIDs []int64) ([]model.Video, error) {
	if len(postIDs) == 0 {
		return []model.Video{}, nil
	}
	rows, err := s.queries.ListVideosForPosts(ctx, postIDs)
	if err != nil {
		return nil, mapError(err)
	}
	return toVideoModels(rows), nil
}

func (s *videoStore) AttachToPost(ctx context.Context, postID, workspaceID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := s.queries.AttachVideosToPost(ctx, sqlc.AttachVideosToPostParams{
		PostID:      postID,
		WorkspaceID: workspaceID,
		Ids:         ids,
	})
	return n, mapError(err)
}

func (s *videoStore) Delete(ctx context.Context, id int64, workspaceID *int64) error {
	return affected(s.queries.DeleteVideo(ctx, sqlc.DeleteVideoParams{ID: id, WorkspaceID: workspaceID}))
}

func toVideoModel(row sqlc.Video) *model.Video {
	return &model.Video{
		ID:                row.ID,
		WorkspaceID:       row.WorkspaceID,
		PostID:            row.PostID,
		FileKey:           row.FileKey,
		ThumbnailURL:      row.ThumbnailUrl,
		DurationInSeconds: row.DurationInSeconds,
		SizeInBytes:       row.SizeInBytes,
		IsTemporaryFile:   row.IsTemporaryFile,
		CreatedAt:         row.CreatedAt.Time,
		UpdatedAt:         row.UpdatedAt.Time,
	}
}

func toVideoModels(rows []sqlc.Video) []model.Video {
	result := make([]model.Video, len(rows))
	for i, row := range rows {
		result[i] = *toVideoModel(row)
	}
	return result
}
