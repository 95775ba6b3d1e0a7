package domain

import "time"

type UserRole string

const (
	// RoleNone is the default for a fresh account: no trainer or admin
	// privileges until an application is approved.
	RoleNone    UserRole = "none"
	RoleTrainer UserRole = "trainer"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsTrainer reports whether the user currently holds the trainer role.
// Admins are not trainers: they review applications but do not own courses.
func (u *User) IsTrainer() bool {
	return u != nil && u.Role == RoleTrainer
}
