package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"cargo-portal/internal/core/notice"
	statusdomain "cargo-portal/internal/features/status/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMember_Decode(t *testing.T) {
	var m Member
	require.NoError(t, json.Unmarshal([]byte(`{"id":"u1","role":"DRIVER","verificationStatus":"APPROVED","isActive":true}`), &m))

	m = m.Decorate()
	assert.Equal(t, "u1", m.ID)
	assert.True(t, m.Active)
	assert.Equal(t, "APPROVED", m.Badge.Raw)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"role":"DRIVER"`)
}

func TestInvoice_Payable(t *testing.T) {
	tests := []struct {
		status  statusdomain.InvoiceStatus
		payable bool
	}{
		{statusdomain.InvoiceIssued, true},
		{statusdomain.InvoiceOverdue, true},
		{statusdomain.InvoicePaid, false},
		{statusdomain.InvoiceCancelled, false},
		{"SOMETHING_NEW", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			inv := Invoice{Status: tt.status}.Decorate()
			assert.Equal(t, tt.payable, inv.Payable)
		})
	}
}

func TestNewListing_Validate(t *testing.T) {
	valid := NewListing{Title: "Ereen to UB, 20t", Origin: "Ereen", Destination: "Ulaanbaatar", Price: decimal.NewFromInt(1500000), Currency: "MNT"}
	assert.NoError(t, valid.Validate())

	var vErr *notice.ValidationError
	err := NewListing{Title: "x", Photos: []string{"not a url"}}.Validate()
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "origin")
	assert.Contains(t, vErr.Fields, "price")
	assert.Contains(t, vErr.Fields, "photos[0]")
}

func TestAPIKey_Redact(t *testing.T) {
	k := APIKey{ID: "k1", Secret: "sk_live_abc"}.Redact()
	out, err := json.Marshal(k)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "secret")
}

func TestPaymentAccount_Masked(t *testing.T) {
	assert.Equal(t, "******7890", PaymentAccount{AccountNumber: "1234567890"}.Masked())
	assert.Equal(t, "123", PaymentAccount{AccountNumber: "123"}.Masked())
}

func TestPublicSettings_Quote(t *testing.T) {
	s := PublicSettings{
		PricePerKg:    decimal.NewFromInt(3000),
		PricePerCbm:   decimal.NewFromInt(450000),
		FastSurcharge: decimal.NewFromInt(10000),
	}

	// 12kg vs 0.05cbm: weight wins.
	assert.Equal(t, "36000", s.Quote(decimal.NewFromInt(12), decimal.RequireFromString("0.05"), false).String())
	// 2kg vs 0.1cbm: volume wins.
	assert.Equal(t, "55000", s.Quote(decimal.NewFromInt(2), decimal.RequireFromString("0.1"), true).String())
}
