package model

import "time"

// StaffInvitationTTL is how long an invitation code can be redeemed.
const StaffInvitationTTL = 24 * time.Hour

type StaffInvitation struct {
	Code        string     `json:"code"`
	Email       string     `json:"email"`
	CreatedBy   *int64     `json:"created_by,omitempty"`
	WorkspaceID int64      `json:"workspace_id"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (i *StaffInvitation) ExpiresAt() time.Time {
	return i.CreatedAt.Add(StaffInvitationTTL)
}

// IsValid reports whether the code can still be redeemed at now.
func (i *StaffInvitation) IsValid(now time.Time) bool {
	return i.AcceptedAt == nil && now.Before(i.ExpiresAt())
}
