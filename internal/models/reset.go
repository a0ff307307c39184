package models

import "time"

// ResetRequest is a pending password-reset ticket. The username primary key
// caps the queue at one pending request per user; resolving deletes the row.
type ResetRequest struct {
	Username    string    `gorm:"primaryKey" json:"username"`
	RequestedAt time.Time `gorm:"autoCreateTime" json:"requested_at"`
}

func (ResetRequest) TableName() string { return "password_reset_requests" }
