package domain

import (
	"time"

	"cargo-portal/internal/core/notice"
	"cargo-portal/internal/core/validation"
	statusdomain "cargo-portal/internal/features/status/domain"

	"github.com/shopspring/decimal"
)

// Listing is a marketplace post offering free cargo or vehicle capacity.
type Listing struct {
	ID          string                     `json:"id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description,omitempty"`
	Origin      string                     `json:"origin"`
	Destination string                     `json:"destination"`
	Price       decimal.Decimal            `json:"price"`
	Currency    string                     `json:"currency"`
	OwnerID     string                     `json:"ownerId"`
	Photos      []string                   `json:"photos,omitempty"`
	Status      statusdomain.ListingStatus `json:"status"`
	CreatedAt   time.Time                  `json:"createdAt"`

	Badge statusdomain.Badge `json:"badge"`
}

// Decorate fills in the display fields.
func (l Listing) Decorate() Listing {
	l.Badge = l.Status.Badge()
	return l
}

// NewListing is the marketplace post form.
type NewListing struct {
	Title       string          `json:"title" validate:"required,max=120"`
	Description string          `json:"description" validate:"max=2000"`
	Origin      string          `json:"origin" validate:"required"`
	Destination string          `json:"destination" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency" validate:"omitempty,oneof=MNT CNY USD"`
	Photos      []string        `json:"photos" validate:"max=10,dive,url"`
}

// Validate checks the form. The price must be positive.
func (n NewListing) Validate() error {
	errs := []error{validation.Struct(n)}
	if !n.Price.IsPositive() {
		errs = append(errs, &notice.ValidationError{Fields: map[string]string{"price": "must be greater than 0"}})
	}
	return validation.Merge(errs...)
}
