package domain

import (
	"time"

	statusdomain "cargo-portal/internal/features/status/domain"

	"github.com/shopspring/decimal"
)

// ServiceType is the shipping speed the customer paid for.
type ServiceType string

const (
	// ServiceStandard ships with the next regular batch.
	ServiceStandard ServiceType = "STANDARD"
	// ServiceFast ships with the next express batch.
	ServiceFast ServiceType = "FAST"
)

// Product describes what the customer asked us to ship.
type Product struct {
	// Title is the product name as listed by the seller.
	Title string `json:"title"`
	// URL is the seller's product page.
	URL string `json:"url"`
	// Price is the unit price in the seller's currency.
	Price decimal.Decimal `json:"price"`
	// Quantity is the number of units ordered.
	Quantity int `json:"quantity"`
	// Images are product photo URLs.
	Images []string `json:"images,omitempty"`
	// Notes are free-form customer instructions (color, size, ...).
	Notes string `json:"notes,omitempty"`
}

// Total returns the price of all units.
func (p Product) Total() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// QC is the quality-control inspection attached to an order.
type QC struct {
	Status statusdomain.QCStatus `json:"status"`
	// Fee is what the inspection costs.
	Fee    decimal.Decimal `json:"fee"`
	Notes  string          `json:"notes,omitempty"`
	Photos []string        `json:"photos,omitempty"`
	// Report is the inspector's written result.
	Report string `json:"report,omitempty"`
}

// PackageRef is the parcel fulfilling an order.
type PackageRef struct {
	ID             string                     `json:"id"`
	TrackingNumber string                     `json:"trackingNumber"`
	Status         statusdomain.PackageStatus `json:"status"`
}

// Order is a customer's request to ship a product.
type Order struct {
	// ID is the backend identifier.
	ID string `json:"id"`
	// Code is the human-readable order number shown to customers.
	Code        string                   `json:"code"`
	Product     Product                  `json:"product"`
	ServiceType ServiceType              `json:"serviceType"`
	Status      statusdomain.OrderStatus `json:"status"`
	// Package is set once the carrier received the parcel.
	Package         *PackageRef `json:"package,omitempty"`
	InsuranceID     string      `json:"insuranceId,omitempty"`
	DeliveryPointID string      `json:"deliveryPointId,omitempty"`
	// OnHold stops the order from moving to the next stage.
	OnHold    bool      `json:"isOnHold"`
	QC        *QC       `json:"qc,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	// Badge is filled in by the portal, not the backend.
	Badge statusdomain.Badge `json:"badge"`
}

// Decorate fills in the display fields.
func (o Order) Decorate() Order {
	o.Badge = o.Status.Badge()
	return o
}

// TrackedStatus is the status the timeline is drawn from: the package's
// when there is one, otherwise the order's own, which shares its values
// with the package lifecycle.
func (o Order) TrackedStatus() statusdomain.PackageStatus {
	if o.Package != nil && o.Package.Status != "" {
		return o.Package.Status
	}
	return statusdomain.PackageStatus(o.Status)
}

// CanRequestQC reports whether a QC inspection may still be asked for.
func (o Order) CanRequestQC() bool {
	if o.QC != nil {
		return false
	}
	idx := statusdomain.StageIndex(o.TrackedStatus())
	return idx >= 0 && idx < statusdomain.StageIndex(statusdomain.PackageBatched)
}

// Detail is an order with its tracking timeline.
type Detail struct {
	Order
	Progress     statusdomain.Progress `json:"progress"`
	CanRequestQC bool                  `json:"canRequestQc"`
}

// NewDetail projects o onto the package timeline.
func NewDetail(o Order) Detail {
	return Detail{
		Order:        o.Decorate(),
		Progress:     statusdomain.Track(o.TrackedStatus()),
		CanRequestQC: o.CanRequestQC(),
	}
}

// QCPayment is the payment request issued for a QC inspection.
type QCPayment struct {
	InvoiceID string          `json:"invoiceId"`
	Amount    decimal.Decimal `json:"amount"`
	// QRText is rendered as a QR code the customer scans with a bank app.
	QRText string        `json:"qrText,omitempty"`
	Links  []PaymentLink `json:"urls,omitempty"`
}

// PaymentLink opens a bank app at the payment.
type PaymentLink struct {
	Name string `json:"name"`
	Link string `json:"link"`
}
