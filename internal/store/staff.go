package store

import (
	"context"

	"helloteam.app/api/core/db/sqlc"
	"helloteam.app/api/internal/model"
)

type staffStore struct {
	queries *sqlc.Queries
}

func newStaffStore(queries *sqlc.Queries) StaffStore {
	return &staffStore{queries: queries}
}

func (s *staffStore) Add(ctx context.Context, staff *model.WorkspaceStaff) error {
	row, err := s.queries.AddWorkspaceStaff(ctx, sqlc.AddWorkspaceStaffParams{
		WorkspaceID: staff.WorkspaceID,
		UserID:      staff.UserID,
		Role:        string(staff.Role),
	})
	if err != nil {
		return mapError(err)
	}
	*staff = *toStaffModel(row)
	return nil
}

func (s *staffStore) Get(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceStaff, error) {
	row, err := s.queries.GetWorkspaceStaff(ctx, sqlc.GetWorkspaceStaffParams{
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toStaffModel(row), nil
}

func (s *staffStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.WorkspaceStaff, error) {
	rows, err := s.queries.ListWorkspaceStaff(ctx, workspaceID)
	if err != nil {
		return nil, mapError(err)
	}
	result := make([]model.WorkspaceStaff, len(rows))
	for i, row := range rows {
		result[i] = *toStaffModel(row)
	}
	return result, nil
}

func (s *staffStore) Remove(ctx context.Context, workspaceID, userID int64) error {
	return affected(s.queries.RemoveWorkspaceStaff(ctx, sqlc.RemoveWorkspaceStaffParams{
		WorkspaceID: workspaceID,
		UserID:      userID,
	}))
}

func (s *staffStore) IsStaffEmail(ctx context.Context, workspaceID int64, email string) (bool, error) {
	ok, err := s.queries.IsWorkspaceStaffEmail(ctx, sqlc.IsWorkspaceStaffEmailParams{
		WorkspaceID: workspaceID,
		Email:       email,
	})
	return ok, mapError(err)
}

func toStaffModel(row sqlc.WorkspaceStaff) *model.WorkspaceStaff {
	return &model.WorkspaceStaff{
		WorkspaceID: row.WorkspaceID,
		UserID:      row.UserID,
		Role:        model.StaffRole(row.Role),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
