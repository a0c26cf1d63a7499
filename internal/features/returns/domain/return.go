package domain

import (
	"time"

	"cargo-portal/internal/core/notice"
	"cargo-portal/internal/core/validation"
	statusdomain "cargo-portal/internal/features/status/domain"

	"github.com/shopspring/decimal"
)

// Type is why the customer wants a return.
type Type string

const (
	TypeDamaged   Type = "DAMAGED"
	TypeMissing   Type = "MISSING"
	TypeWrongItem Type = "WRONG_ITEM"
	TypeOther     Type = "OTHER"
)

// Liability is the party that pays for an approved return.
type Liability string

const (
	LiabilityCargo     Liability = "CARGO"
	LiabilitySeller    Liability = "SELLER"
	LiabilityTransport Liability = "TRANSPORT"
	LiabilityCustomer  Liability = "CUSTOMER"
)

// Return is a customer's return request.
type Return struct {
	ID        string                    `json:"id"`
	Code      string                    `json:"code"`
	OrderID   string                    `json:"orderId"`
	Type      Type                      `json:"type"`
	Liability Liability                 `json:"liability,omitempty"`
	Status    statusdomain.ReturnStatus `json:"status"`
	Reason    string                    `json:"reason"`
	// Photos are evidence image URLs.
	Photos []string `json:"photos,omitempty"`
	// ApprovedAmount is set once an admin approved the return.
	ApprovedAmount *decimal.Decimal `json:"approvedAmount,omitempty"`
	ReviewNote     string           `json:"reviewNote,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`

	Badge statusdomain.Badge `json:"badge"`
}

// Decorate fills in the display fields.
func (r Return) Decorate() Return {
	r.Badge = r.Status.Badge()
	return r
}

// NewReturn is the customer's return form.
type NewReturn struct {
	OrderID string   `json:"orderId" validate:"required"`
	Type    Type     `json:"type" validate:"required,oneof=DAMAGED MISSING WRONG_ITEM OTHER"`
	Reason  string   `json:"reason" validate:"required,max=1000"`
	Photos  []string `json:"photos" validate:"required,min=1,dive,url"`
}

// Decision is an admin's verdict on a return.
type Decision string

const (
	DecisionApprove Decision = "APPROVED"
	DecisionReject  Decision = "REJECTED"
)

// Review is the admin's review form.
type Review struct {
	Decision       Decision        `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
	ApprovedAmount decimal.Decimal `json:"approvedAmount"`
	Liability      Liability       `json:"liability,omitempty" validate:"omitempty,oneof=CARGO SELLER TRANSPORT CUSTOMER"`
	Note           string          `json:"note,omitempty" validate:"max=500"`
}

// Validate checks the form. An approval needs a positive amount and the
// liable party; a rejection needs a note for the customer.
func (r Review) Validate() error {
	errs := []error{validation.Struct(r)}

	fields := map[string]string{}
	switch r.Decision {
	case DecisionApprove:
		if !r.ApprovedAmount.IsPositive() {
			fields["approvedAmount"] = "must be greater than 0"
		}
		if r.Liability == "" {
			fields["liability"] = "is required"
		}
	case DecisionReject:
		if r.Note == "" {
			fields["note"] = "is required"
		}
	}
	if len(fields) > 0 {
		errs = append(errs, &notice.ValidationError{Fields: fields})
	}
	return validation.Merge(errs...)
}
