package dto

import (
	"time"

	"helloteam.app/api/internal/auth"
)

type SignUpRequest struct {
	Email            string  `json:"email" binding:"omitempty,email,max=254"`
	Password         string  `json:"password" binding:"max=72"`
	WorkspaceName    string  `json:"workspace_name" binding:"max=255"`
	OrganizationType ID      `json:"organization_type"`
	FirstName        string  `json:"first_name" binding:"max=150"`
	LastName         string  `json:"last_name" binding:"max=150"`
	Phone            *string `json:"phone_number" binding:"omitempty,max=32"`
}

type SocialSignUpRequest struct {
	FirstName        string `json:"first_name" binding:"max=150"`
	LastName         string `json:"last_name" binding:"max=150"`
	Email            string `json:"email" binding:"omitempty,email,max=254"`
	WorkspaceName    string `json:"workspace_name" binding:"max=255"`
	OrganizationType ID     `json:"organization_type"`
	Phone            string `json:"phone_number" binding:"max=32"`
	SocialProvider   string `json:"social_provider" binding:"max=64"`
	SocialToken      string `json:"social_token"`
	Password         string `json:"password" binding:"max=72"`
}

type TokenRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	WorkspaceID *ID    `json:"workspace_id"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type CodeRequest struct {
	Code string `json:"code"`
}

type RecoverPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

type TokenResponse struct {
	Access           string             `json:"access"`
	Refresh          string             `json:"refresh"`
	AccessExpiresAt  time.Time          `json:"access_expires_at"`
	RefreshExpiresAt time.Time          `json:"refresh_expires_at"`
	WorkspaceID      *int64             `json:"workspace_id,omitempty,string"`
	User             *UserResponse      `json:"user,omitempty"`
	Workspace        *WorkspaceResponse `json:"workspace,omitempty"`
}

func ToTokenResponse(pair *auth.TokenPair) *TokenResponse {
	return &TokenResponse{
		Access:           pair.Access,
		Refresh:          pair.Refresh,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshExpiresAt: pair.RefreshExpiresAt,
		WorkspaceID:      pair.WorkspaceID.Ptr(),
	}
}

func ToLoginResponse(result *auth.LoginResult) *TokenResponse {
	resp := ToTokenResponse(result.Tokens)
	resp.User = ToUserResponse(result.User)
	resp.Workspace = ToWorkspaceResponse(result.Workspace)
	return resp
}

type AuthorizationURLResponse struct {
	URL string `json:"url"`
}

type DetailResponse struct {
	Detail string `json:"detail"`
}
