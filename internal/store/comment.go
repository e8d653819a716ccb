package store

import (
	"context"

	"helloteam.app/api/core/db/sqlc"
	"helloteam.app/api/internal/model"
)

type commentStore struct {
	queries *sqlc.Queries
}

func newCommentStore(queries *sqlc.Queries) CommentStore {
	return &commentStore{queries: queries}
}

func (s *commentStore) Create(ctx context.Context, comment *model.Comment) error {
	row, err := s.queries.CreateComment(ctx, sqlc.CreateCommentParams{
		ID:          comment.ID,
		WorkspaceID: comment.WorkspaceID,
		PostID:      comment.PostID,
		AuthorID:    comment.AuthorID,
		ParentID:    comment.ParentID,
		Content:     comment.Content,
	})
	if err != nil {
		return mapError(err)
	}
	*comment = *toCommentModel(row)
	return nil
}

func (s *commentStore) Get(ctx context.Context, id int64, workspaceID *int64) (*model.Comment, error) {
	row, err := s.queries.GetComment(ctx, sqlc.GetCommentParams{ID: id, WorkspaceID: workspaceID})
	if err != nil {
		return nil, mapError(err)
	}
	return toCommentModel(row), nil
}

func (s *commentStore) List(ctx context.Context, workspaceID *int64, postID *int64) ([]model.Comment, error) {
	rows, err := s.queries.ListComments(ctx, sqlc.ListCommentsParams{
		WorkspaceID: workspaceID,
		PostID:      postID,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toCommentModels(rows), nil
}

// ListForPosts is used after the posts themselves went through the workspace
// filter, so it does not filter again.
func (s *commentStore) ListForPosts(ctx context.Context, postIDs []int64) ([]model.Comment, error) {
	if len(postIDs) == 0 {
		return []model.Comment{}, nil
	}
	rows, err := s.queries.ListCommentsForPosts(ctx, postIDs)
	if err != nil {
		return nil, mapError(err)
	}
	return toCommentModels(rows), nil
}

func (s *commentStore) UpdateContent(ctx context.Context, comment *model.Comment, workspaceID *int64) error {
	row, err := s.queries.UpdateComment(ctx, sqlc.UpdateCommentParams{
		ID:          comment.ID,
		WorkspaceID: workspaceID,
		Content:     comment.Content,
	})
	if err != nil {
		return mapError(err)
	}
	*comment = *toCommentModel(row)
	return nil
}

func (s *commentStore) Delete(ctx context.Context, id int64, workspaceID *int64) error {
	return affected(s.queries.DeleteComment(ctx, sqlc.DeleteCommentParams{ID: id, WorkspaceID: workspaceID}))
}

func toCommentModel(row sqlc.Comment) *model.Comment {
	return &model.Comment{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		PostID:      row.PostID,
		AuthorID:    row.AuthorID,
		ParentID:    row.ParentID,
		Content:     row.Content,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toCommentModels(rows []sqlc.Comment) []model.Comment {
	result := make([]model.Comment, len(rows))
	for i, row := range rows {
		result[i] = *toCommentModel(row)
	}
	return result
}
