package models

import "time"

// AuthorizedUser is one entry of the flat allow-list gating access to
// financial data. Membership is the only thing that matters.
type AuthorizedUser struct {
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
