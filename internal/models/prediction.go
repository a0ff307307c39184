package models

import "time"

// Prediction is one scored attrition-risk event. Rows are append-only:
// nothing in the application updates or deletes them, and every reporting
// view (dashboard, insights, alerts) is derived from them at read time.
type Prediction struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	User       string    `gorm:"column:user;not null;index" json:"user"`
	Department string    `gorm:"not null" json:"department"`
	Risk       float64   `gorm:"not null" json:"risk"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Prediction) TableName() string { return "predictions" }
