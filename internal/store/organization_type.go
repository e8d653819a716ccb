package store

import (
	"context"

	"helloteam.app/api/core/db/sqlc"
	"helloteam.app/api/internal/model"
)

type organizationTypeStore struct {
	queries *sqlc.Queries
}

func newOrganizationTypeStore(queries *sqlc.Queries) OrganizationTypeStore {
	return &organizationTypeStore{queries: queries}
}

func (s *organizationTypeStore) GetByID(ctx context.Context, id int64) (*model.OrganizationType, error) {
	row, err := s.queries.GetOrganizationType(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return toOrganizationTypeModel(row), nil
}

func (s *organizationTypeStore) ListActive(ctx context.Context) ([]model.OrganizationType, error) {
	rows, err := s.queries.ListActiveOrganizationTypes(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	result := make([]model.OrganizationType, len(rows))
	for i, row := range rows {
		result[i] = *toOrganizationTypeModel(row)
	}
	return result, nil
}

func (s *organizationTypeStore) Create(ctx context.Context, orgType *model.OrganizationType) error {
	row, err := s.queries.CreateOrganizationType(ctx, sqlc.CreateOrganizationTypeParams{
		ID:       orgType.ID,
		Name:     orgType.Name,
		IsActive: orgType.IsActive,
	})
	if err != nil {
		return mapError(err)
	}
	*orgType = *toOrganizationTypeModel(row)
	return nil
}

func toOrganizationTypeModel(row sqlc.OrganizationType) *model.OrganizationType {
	return &model.OrganizationType{
		ID:        row.ID,
		Name:      row.Name,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
