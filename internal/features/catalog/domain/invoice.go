package domain

import (
	"time"

	statusdomain "cargo-portal/internal/features/status/domain"

	"github.com/shopspring/decimal"
)

// Invoice is a bill issued to a customer or company.
type Invoice struct {
	ID       string                     `json:"id"`
	Number   string                     `json:"number"`
	OwnerID  string                     `json:"ownerId"`
	OrderID  string                     `json:"orderId,omitempty"`
	Amount   decimal.Decimal            `json:"amount"`
	Currency string                     `json:"currency"`
	Status   statusdomain.InvoiceStatus `json:"status"`
	DueAt    *time.Time                 `json:"dueAt,omitempty"`
	PaidAt   *time.Time                 `json:"paidAt,omitempty"`

	Badge   statusdomain.Badge `json:"badge"`
	Payable bool               `json:"payable"`
}

// Decorate fills in the display fields.
func (i Invoice) Decorate() Invoice {
	i.Badge = i.Status.Badge()
	i.Payable = i.Status == statusdomain.InvoiceIssued || i.Status == statusdomain.InvoiceOverdue
	return i
}

// PaymentLink is one bank app deep link.
type PaymentLink struct {
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
	Link string `json:"link"`
}

// Payment is a QPay invoice created for a bill.
type Payment struct {
	InvoiceID string          `json:"invoiceId"`
	Amount    decimal.Decimal `json:"amount"`
	QRText    string          `json:"qrText"`
	QRImage   string          `json:"qrImage,omitempty"`
	Links     []PaymentLink   `json:"urls"`
}
