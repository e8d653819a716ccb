package model

import (
	"time"

	"github.com/google/uuid"
)

const PasswordResetTTL = time.Hour

type PasswordResetToken struct {
	ID           uuid.UUID `json:"id"`
	UserID       int64     `json:"user_id"`
	ValidThrough time.Time `json:"valid_through"`
	CreatedAt    time.Time `json:"created_at"`
}

func (t *PasswordResetToken) IsValid(now time.Time) bool {
	return now.Before(t.ValidThrough)
}
