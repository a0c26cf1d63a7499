package domain

import (
	"time"

	"cargo-portal/internal/core/notice"
	"cargo-portal/internal/core/validation"
	statusdomain "cargo-portal/internal/features/status/domain"
)

// EntityType is what is being verified.
type EntityType string

const (
	EntityUser    EntityType = "USER"
	EntityVehicle EntityType = "VEHICLE"
	EntityCompany EntityType = "COMPANY"
)

// Document is one uploaded proof.
type Document struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Verification is a document approval request for a user, vehicle or company.
type Verification struct {
	ID         string     `json:"id"`
	EntityType EntityType `json:"entityType"`
	EntityID   string     `json:"entityId"`
	// EntityName is the display name of the user, plate number or company.
	EntityName      string                          `json:"entityName,omitempty"`
	Documents       []Document                      `json:"documents"`
	Status          statusdomain.VerificationStatus `json:"status"`
	RejectionReason string                          `json:"rejectionReason,omitempty"`
	SubmittedAt     time.Time                       `json:"submittedAt"`
	ReviewedAt      *time.Time                      `json:"reviewedAt,omitempty"`

	Badge statusdomain.Badge `json:"badge"`
}

// Decorate fills in the display fields.
func (v Verification) Decorate() Verification {
	v.Badge = v.Status.Badge()
	return v
}

// Review is an admin's decision on a verification request.
type Review struct {
	Status          statusdomain.VerificationStatus `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	RejectionReason string                          `json:"rejectionReason,omitempty" validate:"max=500"`
}

// Validate checks the form. A rejection must tell the applicant why.
func (r Review) Validate() error {
	errs := []error{validation.Struct(r)}
	if r.Status == statusdomain.VerificationRejected && r.RejectionReason == "" {
		errs = append(errs, &notice.ValidationError{Fields: map[string]string{"rejectionReason": "is required"}})
	}
	return validation.Merge(errs...)
}
