package domain

import (
	sessiondomain "cargo-portal/internal/features/session/domain"
	statusdomain "cargo-portal/internal/features/status/domain"
)

// Member is a user as seen from the admin user list.
type Member struct {
	sessiondomain.User

	Badge statusdomain.Badge `json:"badge"`
}

// Decorate fills in the verification badge.
func (m Member) Decorate() Member {
	m.Badge = m.VerificationStatus.Badge()
	return m
}

// Activation enables or disables an account.
type Activation struct {
	Active *bool `json:"isActive" validate:"required"`
}
