package model

import "time"

const DefaultLeadInteraction = "step-1"

type Lead struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	LastInteraction string    `json:"last_interaction"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
