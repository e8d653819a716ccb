package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"helloteam.app/api/core/db/sqlc"
	"helloteam.app/api/internal/model"
)

type passwordResetStore struct {
	queries *sqlc.Queries
}

func newPasswordResetStore(queries *sqlc.Queries) PasswordResetStore {
	return &passwordResetStore{queries: queries}
}

func (s *passwordResetStore) Create(ctx context.Context, userID int64, id uuid.UUID, validThrough time.Time) (*model.PasswordResetToken, error) {
	row, err := s.queries.CreatePasswordResetToken(ctx, sqlc.CreatePasswordResetTokenParams{
		ID:           pgUUID(id),
		UserID:       userID,
		ValidThrough: timestamptz(validThrough),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toPasswordResetModel(row), nil
}

func (s *passwordResetStore) Get(ctx context.Context, id uuid.UUID) (*model.PasswordResetToken, error) {
	row, err := s.queries.GetPasswordResetToken(ctx, pgUUID(id))
	if err != nil {
		return nil, mapError(err)
	}
	return toPasswordResetModel(row), nil
}

func (s *passwordResetStore) Delete(ctx context.Context, id uuid.UUID) error {
	return mapError(s.queries.DeletePasswordResetToken(ctx, pgUUID(id)))
}

func (s *passwordResetStore) DeleteForUser(ctx context.Context, userID int64) error {
	return mapError(s.queries.DeletePasswordResetTokensForUser(ctx, userID))
}

func toPasswordResetModel(row sqlc.PasswordResetToken) *model.PasswordResetToken {
	return &model.PasswordResetToken{
		ID:           uuid.UUID(row.ID.Bytes),
		UserID:       row.UserID,
		ValidThrough: row.ValidThrough.Time,
		CreatedAt:    row.CreatedAt.Time,
	}
}
