package domain

import "time"

// KeyStatus is the state of an integration key.
type KeyStatus string

const (
	KeyActive  KeyStatus = "ACTIVE"
	KeyRevoked KeyStatus = "REVOKED"
)

// APIKey is a company's key for the integration API. Secret is only
// present in the response that created it.
type APIKey struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"`
	Secret     string     `json:"secret,omitempty"`
	Status     KeyStatus  `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
}

// Redact drops the secret so it is shown exactly once.
func (k APIKey) Redact() APIKey {
	k.Secret = ""
	return k
}

// NewAPIKey is the key creation form.
type NewAPIKey struct {
	Name string `json:"name" validate:"required,max=64"`
}
