package store

import (
	"context"

	"helloteam.app/api/core/db/sqlc"
	"helloteam.app/api/internal/model"
)

type workspaceStore struct {
	queries *sqlc.Queries
}

func newWorkspaceStore(queries *sqlc.Queries) WorkspaceStore {
	return &workspaceStore{queries: queries}
}

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	row, err := s.queries.GetWorkspace(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return toWorkspaceModel(row), nil
}

func (s *workspaceStore) GetEarliestForUser(ctx context.Context, userID int64) (*model.Workspace, error) {
	row, err := s.queries.GetEarliestWorkspaceForUser(ctx, userID)
	if err != nil {
		return nil, mapError(err)
	}
	return toWorkspaceModel(row), nil
}

func (s *workspaceStore) ListByUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	rows, err := s.queries.ListWorkspacesForUser(ctx, userID)
	if err != nil {
		return nil, mapError(err)
	}
	return toWorkspaceModels(rows), nil
}

func (s *workspaceStore) IsMember(ctx context.Context, workspaceID, userID int64) (bool, error) {
	ok, err := s.queries.IsWorkspaceMember(ctx, sqlc.IsWorkspaceMemberParams{
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
	return ok, mapError(err)
}

func (s *workspaceStore) NameExists(ctx context.Context, name string) (bool, error) {
	ok, err := s.queries.WorkspaceNameExists(ctx, name)
	return ok, mapError(err)
}

func (s *workspaceStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	ok, err := s.queries.WorkspaceSlugExists(ctx, slug)
	return ok, mapError(err)
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.CreateWorkspace(ctx, sqlc.CreateWorkspaceParams{
		ID:                 ws.ID,
		Name:               ws.Name,
		Slug:               ws.Slug,
		OwnerID:            ws.OwnerID,
		OrganizationTypeID: ws.OrganizationTypeID,
		Country:            ws.Country,
		ZipCode:            ws.ZipCode,
		Timezone:           ws.Timezone,
	})
	if err != nil {
		return mapError(err)
	}
	*ws = *toWorkspaceModel(row)
	return nil
}

func (s *workspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.UpdateWorkspace(ctx, sqlc.UpdateWorkspaceParams{
		ID:                 ws.ID,
		Name:               ws.Name,
		Slug:               ws.Slug,
		OrganizationTypeID: ws.OrganizationTypeID,
		Country:            ws.Country,
		ZipCode:            ws.ZipCode,
		Timezone:           ws.Timezone,
	})
	if err != nil {
		return mapError(err)
	}
	*ws = *toWorkspaceModel(row)
	return nil
}

func toWorkspaceModel(row sqlc.Workspace) *model.Workspace {
	return &model.Workspace{
		ID:                 row.ID,
		Name:               row.Name,
		Slug:               row.Slug,
		OwnerID:            row.OwnerID,
		OrganizationTypeID: row.OrganizationTypeID,
		Country:            row.Country,
		ZipCode:            row.ZipCode,
		Timezone:           row.Timezone,
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}
}

func toWorkspaceModels(rows []sqlc.Workspace) []model.Workspace {
	result := make([]model.Workspace, len(rows))
	for i, row := range rows {
		result[i] = *toWorkspaceModel(row)
	}
	return result
}
