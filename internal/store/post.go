package store

import (
	"context"

	"helloteam.app/api/core/db/sqlc"
	"helloteam.app/api/internal/model"
)

type postStore struct {
	queries *sqlc.Queries
}

func newPostStore(queries *sqlc.Queries) PostStore {
	return &postStore{queries: queries}
}

func (s *postStore) Create(ctx context.Context, post *model.Post) error {
	row, err := s.queries.CreatePost(ctx, sqlc.CreatePostParams{
		ID:          post.ID,
		WorkspaceID: post.WorkspaceID,
		AuthorID:    post.AuthorID,
		Content:     post.Content,
	})
	if err != nil {
		return mapError(err)
	}
	*post = *toPostModel(row)
	return nil
}

func (s *postStore) Get(ctx context.Context, id int64, workspaceID *int64) (*model.Post, error) {
	row, err := s.queries.GetPost(ctx, sqlc.GetPostParams{ID: id, WorkspaceID: workspaceID})
	if err != nil {
		return nil, mapError(err)
	}
	return toPostModel(row), nil
}

// List returns posts newest first.
func (s *postStore) List(ctx context.Context, workspaceID *int64, limit, offset int32) ([]model.Post, error) {
	rows, err := s.queries.ListPosts(ctx, sqlc.ListPostsParams{
		WorkspaceID: workspaceID,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, mapError(err)
	}
	result := make([]model.Post, len(rows))
	for i, row := range rows {
		result[i] = *toPostModel(row)
	}
	return result, nil
}

func (s *postStore) UpdateContent(ctx context.Context, post *model.Post, workspaceID *int64) error {
	row, err := s.queries.UpdatePost(ctx, sqlc.UpdatePostParams{
		ID:          post.ID,
		WorkspaceID: workspaceID,
		Content:     post.Content,
	})
	if err != nil {
		return mapError(err)
	}
	*post = *toPostModel(row)
	return nil
}

func (s *postStore) Delete(ctx context.Context, id int64, workspaceID *int64) error {
	return affected(s.queries.DeletePost(ctx, sqlc.DeletePostParams{ID: id, WorkspaceID: workspaceID}))
}

func toPostModel(row sqlc.Post) *model.Post {
	return &model.Post{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		AuthorID:    row.AuthorID,
		Content:     row.Content,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
