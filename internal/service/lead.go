package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"helloteam.app/api/common/errs"
	"helloteam.app/api/common/id"
	"helloteam.app/api/common/logger"
	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/store"
)

type LeadService interface {
	// Capture records a marketing lead, updating last_interaction when the
	// email is already known.
	Capture(ctx context.Context, email, lastInteraction string) (*model.Lead, error)
}

type leadService struct {
	leads store.LeadStore
}

func NewLeadService(leads store.LeadStore) LeadService {
	return &leadService{leads: leads}
}

func (s *leadService) Capture(ctx context.Context, email, lastInteraction string) (*model.Lead, error) {
	email = auth.NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.Validation("a valid email is required", "email")
	}
	lastInteraction = strings.TrimSpace(lastInteraction)
	if lastInteraction == "" {
		lastInteraction = model.DefaultLeadInteraction
	}

	lead := &model.Lead{
		ID:              id.New(),
		Email:           email,
		LastInteraction: lastInteraction,
	}
	if err := s.leads.Upsert(ctx, lead); err != nil {
		return nil, fmt.Errorf("upserting lead: %w", err)
	}

	slog.InfoContext(ctx, "lead captured",
		"lead_id", lead.ID,
		"email", logger.MaskEmail(email),
		"last_interaction", lastInteraction)
	return lead, nil
}
