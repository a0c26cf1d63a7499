package domain

import (
	"errors"
	"testing"

	"cargo-portal/internal/core/notice"
	"cargo-portal/internal/core/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var vErr *notice.ValidationError
	require.True(t, errors.As(err, &vErr), "expected validation error, got %v", err)
	return vErr.Fields
}

func TestNewReturn_Validation(t *testing.T) {
	ok := NewReturn{OrderID: "o1", Type: TypeDamaged, Reason: "Box crushed", Photos: []string{"https://cdn.example.mn/1.jpg"}}
	assert.NoError(t, validation.Struct(ok))

	f := fields(t, validation.Struct(NewReturn{Type: "BORED", Photos: []string{"not a url"}}))
	assert.Contains(t, f, "orderId")
	assert.Contains(t, f, "type")
	assert.Contains(t, f, "reason")
}

func TestReview_Validate(t *testing.T) {
	approve := Review{Decision: DecisionApprove, ApprovedAmount: decimal.NewFromInt(25000), Liability: LiabilityCargo}
	assert.NoError(t, approve.Validate())

	f := fields(t, Review{Decision: DecisionApprove}.Validate())
	assert.Contains(t, f, "approvedAmount")
	assert.Contains(t, f, "liability")

	f = fields(t, Review{Decision: DecisionReject}.Validate())
	assert.Equal(t, map[string]string{"note": "is required"}, f)

	f = fields(t, Review{Decision: "MAYBE"}.Validate())
	assert.Contains(t, f, "decision")

	assert.NoError(t, Review{Decision: DecisionReject, Note: "No evidence of damage"}.Validate())
}
