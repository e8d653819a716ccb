package model

import "time"

type Workspace struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	OwnerID            *int64    `json:"owner_id,omitempty"`
	OrganizationTypeID *int64    `json:"organization_type_id,omitempty"`
	Country            *string   `json:"country,omitempty"`
	ZipCode            *string   `json:"zip_code,omitempty"`
	Timezone           *string   `json:"timezone,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (w *Workspace) IsOwnedBy(userID int64) bool {
	return w.OwnerID != nil && *w.OwnerID == userID
}

type StaffRole string

const (
	StaffRoleCoach     StaffRole = "C"
	StaffRoleAssistant StaffRole = "A"
)

func (r StaffRole) IsValid() bool {
	return r == StaffRoleCoach || r == StaffRoleAssistant
}

// WorkspaceStaff links a user to a workspace they help run. A workspace has
// many staff; a user can be staff of many workspaces.
type WorkspaceStaff struct {
	WorkspaceID int64     `json:"workspace_id"`
	UserID      int64     `json:"user_id"`
	Role        StaffRole `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type OrganizationType struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
