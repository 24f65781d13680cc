package domain

import (
	"strings"
	"time"
)

type Guest struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Document  string    `json:"document" validate:"required"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGuest builds a guest record. Document is the natural key (CPF or
// passport) and must be present; uniqueness is enforced by the catalog
// service against the repository.
func NewGuest(name, document, email, phone string) (*Guest, error) {
	name = strings.TrimSpace(name)
	document = strings.TrimSpace(document)
	if name == "" || document == "" {
		return nil, ErrValidation
	}
	return &Guest{
		Name:     name,
		Document: document,
		Email:    strings.TrimSpace(email),
		Phone:    strings.TrimSpace(phone),
	}, nil
}
