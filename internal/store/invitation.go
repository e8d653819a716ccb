package store

import (
	"context"

	"helloteam.app/api/core/db/sqlc"
	"helloteam.app/api/internal/model"
)

type staffInvitationStore struct {
	queries *sqlc.Queries
}

func newStaffInvitationStore(queries *sqlc.Queries) StaffInvitationStore {
	return &staffInvitationStore{queries: queries}
}

func (s *staffInvitationStore) Create(ctx context.Context, inv *model.StaffInvitation) error {
	row, err := s.queries.CreateStaffInvitation(ctx, sqlc.CreateStaffInvitationParams{
		Code:        inv.Code,
		Email:       inv.Email,
		CreatedBy:   inv.CreatedBy,
		WorkspaceID: inv.WorkspaceID,
	})
	if err != nil {
		return mapError(err)
	}
	*inv = *toStaffInvitationModel(row)
	return nil
}

// GetByCode is unscoped: the invitee is not yet a member of the workspace.
func (s *staffInvitationStore) GetByCode(ctx context.Context, code string) (*model.StaffInvitation, error) {
	row, err := s.queries.GetStaffInvitationByCode(ctx, code)
	if err != nil {
		return nil, mapError(err)
	}
	return toStaffInvitationModel(row), nil
}

func (s *staffInvitationStore) Get(ctx context.Context, code string, workspaceID *int64) (*model.StaffInvitation, error) {
	row, err := s.queries.GetScopedStaffInvitation(ctx, sqlc.GetScopedStaffInvitationParams{
		Code:        code,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toStaffInvitationModel(row), nil
}

func (s *staffInvitationStore) List(ctx context.Context, workspaceID *int64) ([]model.StaffInvitation, error) {
	rows, err := s.queries.ListStaffInvitations(ctx, workspaceID)
	if err != nil {
		return nil, mapError(err)
	}
	result := make([]model.StaffInvitation, len(rows))
	for i, row := range rows {
		result[i] = *toStaffInvitationModel(row)
	}
	return result, nil
}

func (s *staffInvitationStore) Delete(ctx context.Context, code string, workspaceID *int64) error {
	return affected(s.queries.DeleteStaffInvitation(ctx, sqlc.DeleteStaffInvitationParams{
		Code:        code,
		WorkspaceID: workspaceID,
	}))
}

// Accept marks the invitation used. Already accepted codes return ErrNotFound.
func (s *staffInvitationStore) Accept(ctx context.Context, code string) (*model.StaffInvitation, error) {
	row, err := s.queries.AcceptStaffInvitation(ctx, code)
	if err != nil {
		return nil, mapError(err)
	}
	return toStaffInvitationModel(row), nil
}

func toStaffInvitationModel(row sqlc.StaffInvitation) *model.StaffInvitation {
	return &model.StaffInvitation{
		Code:        row.Code,
		Email:       row.Email,
		CreatedBy:   row.CreatedBy,
		WorkspaceID: row.WorkspaceID,
		AcceptedAt:  timePtr(row.AcceptedAt),
		CreatedAt:   row.CreatedAt.Time,
	}
}
