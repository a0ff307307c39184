package models

// User & auth related models. Usernames are the primary key: they are
// globally unique and never change, and every other table keys on them.
type User struct {
	Username     string `gorm:"primaryKey" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"` // unsalted sha256 hex digest
	Role         string `gorm:"not null" json:"role"`
}

func (User) TableName() string { return "users" }
