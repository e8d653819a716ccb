package dto

import (
	"time"

	"helloteam.app/api/internal/model"
)

type UserResponse struct {
	ID            int64      `json:"id,string"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Phone         *string    `json:"phone_number,omitempty"`
	Country       *string    `json:"country,omitempty"`
	ZipCode       *string    `json:"zip_code,omitempty"`
	Timezone      *string    `json:"timezone,omitempty"`
	AvatarURL     *string    `json:"avatar_url,omitempty"`
	IsActive      bool       `json:"is_active"`
	IsStaff       bool       `json:"is_staff"`
	IsSuperuser   bool       `json:"is_superuser"`
	VerifiedEmail bool       `json:"verified_email"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ToUserResponse(u *model.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		Country:       u.Country,
		ZipCode:       u.ZipCode,
		Timezone:      u.Timezone,
		AvatarURL:     u.AvatarURL,
		IsActive:      u.IsActive,
		IsStaff:       u.IsStaff,
		IsSuperuser:   u.IsSuperuser,
		VerifiedEmail: u.VerifiedEmail,
		LastLogin:     u.LastLogin,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// AuthorResponse is the public slice of a user shown next to content.
type AuthorResponse struct {
	ID        int64   `json:"id,string"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

func ToAuthorResponse(u *model.User) *AuthorResponse {
	if u == nil {
		return nil
	}
	return &AuthorResponse{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, AvatarURL: u.AvatarURL}
}

type WorkspacePatchRequest struct {
	ID       ID      `json:"id"`
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Country  *string `json:"country" binding:"omitempty,max=64"`
	ZipCode  *string `json:"zip_code" binding:"omitempty,max=16"`
	Timezone *string `json:"timezone" binding:"omitempty,max=64"`
}

type UpdateUserRequest struct {
	FirstName       *string                `json:"first_name" binding:"omitempty,max=150"`
	LastName        *string                `json:"last_name" binding:"omitempty,max=150"`
	Phone           *string                `json:"phone_number" binding:"omitempty,max=32"`
	Country         *string                `json:"country" binding:"omitempty,max=64"`
	ZipCode         *string                `json:"zip_code" binding:"omitempty,max=16"`
	Timezone        *string                `json:"timezone" binding:"omitempty,max=64"`
	AvatarURL       *string                `json:"avatar_url" binding:"omitempty,url,max=2048"`
	Workspace       *ID                    `json:"workspace"`
	UpdateWorkspace *WorkspacePatchRequest `json:"update_workspace"`
	IsSigningUp     bool                   `json:"is_signing_up"`
}

type UpdateUserResponse struct {
	User      *UserResponse      `json:"user"`
	Workspace *WorkspaceResponse `json:"workspace,omitempty"`
}

type SwitchWorkspaceRequest struct {
	WorkspaceID ID `json:"workspace_id"`
}

type EmailAvailabilityResponse struct {
	Detail    string `json:"detail"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
}
