package model

import "time"

// Role values for User.Role.
const (
	RoleDelegate = "delegate"
	RoleAdmin    = "admin"
	RoleTeam     = "team"
)

// User is a delegate, admin, or team account. It is the single source of
// truth for identity; registrations reference it by ID.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName     string    `json:"full_name" gorm:"size:255"`
	PhoneNumber  string    `json:"phone_number,omitempty" gorm:"size:32"`
	Role         string    `json:"role" gorm:"size:50;default:'delegate';index"`
	School       string    `json:"school,omitempty" gorm:"size:255"`
	Grade        string    `json:"grade,omitempty" gorm:"size:50"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
