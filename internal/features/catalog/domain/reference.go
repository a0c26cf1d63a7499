package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentAccount is a bank account customers transfer to.
type PaymentAccount struct {
	ID            string `json:"id"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	HolderName    string `json:"holderName"`
	IsDefault     bool   `json:"isDefault"`
}

// Masked returns the account number with all but the last four digits hidden.
func (a PaymentAccount) Masked() string {
	n := len(a.AccountNumber)
	if n <= 4 {
		return a.AccountNumber
	}
	return strings.Repeat("*", n-4) + a.AccountNumber[n-4:]
}

// DeliveryPoint is a pickup location in Mongolia.
type DeliveryPoint struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Hours   string `json:"hours,omitempty"`
}

// PublicSettings are the tariffs and contacts shown before sign-in.
type PublicSettings struct {
	PricePerKg     decimal.Decimal `json:"pricePerKg"`
	PricePerCbm    decimal.Decimal `json:"pricePerCbm"`
	FastSurcharge  decimal.Decimal `json:"fastSurcharge"`
	QCFee          decimal.Decimal `json:"qcFee"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
	SupportPhone   string          `json:"supportPhone,omitempty"`
	ChinaAddress   string          `json:"chinaAddress,omitempty"`
	MaintenanceMsg string          `json:"maintenanceMessage,omitempty"`
}

// Quote estimates a shipping cost: the greater of the weight and the volume
// charge, plus the fast surcharge when requested.
func (s PublicSettings) Quote(weightKg, volumeCbm decimal.Decimal, fast bool) decimal.Decimal {
	cost := decimal.Max(weightKg.Mul(s.PricePerKg), volumeCbm.Mul(s.PricePerCbm))
	if fast {
		cost = cost.Add(s.FastSurcharge)
	}
	return cost.Round(2)
}
