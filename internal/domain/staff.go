package domain

import (
	"strings"
	"time"
)

const (
	StaffRoleManager      = "manager"
	StaffRoleReceptionist = "receptionist"
)

// Staff is a back-office user of the reservation desk. PasswordHash is
// a bcrypt hash, never the plain text.
type Staff struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewStaff(username, passwordHash, role string) (*Staff, error) {
	username = strings.TrimSpace(username)
	if username == "" || passwordHash == "" {
		return nil, ErrValidation
	}
	if role != StaffRoleManager && role != StaffRoleReceptionist {
		return nil, ErrValidation
	}
	return &Staff{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}
