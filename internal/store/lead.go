package store

import (
	"context"

	"helloteam.app/api/core/db/sqlc"
	"helloteam.app/api/internal/model"
)

type leadStore struct {
	queries *sqlc.Queries
}

func newLeadStore(queries *sqlc.Queries) LeadStore {
	return &leadStore{queries: queries}
}

// Upsert keys on email. An existing lead keeps its ID and gets the new
// last_interaction.
func (s *leadStore) Upsert(ctx context.Context, lead *model.Lead) error {
	row, err := s.queries.UpsertLead(ctx, sqlc.UpsertLeadParams{
		ID:              lead.ID,
		Email:           lead.Email,
		LastInteraction: lead.LastInteraction,
	})
	if err != nil {
		return mapError(err)
	}
	*lead = model.Lead{
		ID:              row.ID,
		Email:           row.Email,
		LastInteraction: row.LastInteraction,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
	return nil
}
