package dto

import (
	"time"

	"helloteam.app/api/internal/model"
)

type WorkspaceResponse struct {
	ID                 int64     `json:"id,string"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	OwnerID            *int64    `json:"owner,omitempty,string"`
	OrganizationTypeID *int64    `json:"organization_type,omitempty,string"`
	Country            *string   `json:"country,omitempty"`
	ZipCode            *string   `json:"zip_code,omitempty"`
	Timezone           *string   `json:"timezone,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func ToWorkspaceResponse(ws *model.Workspace) *WorkspaceResponse {
	if ws == nil {
		return nil
	}
	return &WorkspaceResponse{
		ID:                 ws.ID,
		Name:               ws.Name,
		Slug:               ws.Slug,
		OwnerID:            ws.OwnerID,
		OrganizationTypeID: ws.OrganizationTypeID,
		Country:            ws.Country,
		ZipCode:            ws.ZipCode,
		Timezone:           ws.Timezone,
		CreatedAt:          ws.CreatedAt,
		UpdatedAt:          ws.UpdatedAt,
	}
}

func ToWorkspaceResponses(list []model.Workspace) []WorkspaceResponse {
	out := make([]WorkspaceResponse, len(list))
	for i := range list {
		out[i] = *ToWorkspaceResponse(&list[i])
	}
	return out
}

type OrganizationTypeResponse struct {
	ID   int64  `json:"id,string"`
	Name string `json:"name"`
}

func ToOrganizationTypeResponses(list []model.OrganizationType) []OrganizationTypeResponse {
	out := make([]OrganizationTypeResponse, len(list))
	for i, t := range list {
		out[i] = OrganizationTypeResponse{ID: t.ID, Name: t.Name}
	}
	return out
}

type CreateInvitationRequest struct {
	Email     string `json:"email" binding:"required,email,max=256"`
	Workspace *ID    `json:"workspace"`
}

type AcceptInvitationRequest struct {
	Role string `json:"role" binding:"omitempty,oneof=C A"`
}

type InvitationResponse struct {
	Code        string     `json:"code"`
	Email       string     `json:"email"`
	CreatedBy   *int64     `json:"created_by,omitempty,string"`
	WorkspaceID int64      `json:"workspace,string"`
	IsValid     bool       `json:"is_valid"`
	ExpiresAt   time.Time  `json:"expires_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToInvitationResponse(inv *model.StaffInvitation, now time.Time) *InvitationResponse {
	return &InvitationResponse{
		Code:        inv.Code,
		Email:       inv.Email,
		CreatedBy:   inv.CreatedBy,
		WorkspaceID: inv.WorkspaceID,
		IsValid:     inv.IsValid(now),
		ExpiresAt:   inv.ExpiresAt(),
		AcceptedAt:  inv.AcceptedAt,
		CreatedAt:   inv.CreatedAt,
	}
}

func ToInvitationResponses(list []model.StaffInvitation, now time.Time) []InvitationResponse {
	out := make([]InvitationResponse, len(list))
	for i := range list {
		out[i] = *ToInvitationResponse(&list[i], now)
	}
	return out
}

type StaffResponse struct {
	WorkspaceID int64     `json:"workspace,string"`
	UserID      int64     `json:"user,string"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToStaffResponse(s *model.WorkspaceStaff) *StaffResponse {
	return &StaffResponse{
		WorkspaceID: s.WorkspaceID,
		UserID:      s.UserID,
		Role:        string(s.Role),
		CreatedAt:   s.CreatedAt,
	}
}

type LeadRequest struct {
	Email           string `json:"email" binding:"max=254"`
	LastInteraction string `json:"last_interaction" binding:"max=64"`
}

type LeadResponse struct {
	ID              int64  `json:"id,string"`
	Email           string `json:"email"`
	LastInteraction string `json:"last_interaction"`
}

func ToLeadResponse(l *model.Lead) *LeadResponse {
	return &LeadResponse{ID: l.ID, Email: l.Email, LastInteraction: l.LastInteraction}
}
