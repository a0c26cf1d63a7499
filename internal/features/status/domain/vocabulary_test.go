package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe_Known(t *testing.T) {
	b := Describe(KindReturn, "APPROVED")
	assert.True(t, b.Known)
	assert.Equal(t, "APPROVED", b.Raw)
	assert.Equal(t, "Approved", b.Text("en"))
	assert.Equal(t, "Зөвшөөрсөн", b.Text("mn"))
	assert.Equal(t, ColorSuccess, b.Color)
}

func TestDescribe_UnknownFallsBackToRaw(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		raw  string
	}{
		{"UnknownStatus", KindOrder, "FOO"},
		{"UnknownKind", Kind("shipment"), "PENDING"},
		{"StatusOfAnotherKind", KindBatch, "DELIVERED"},
		{"LowerCase", KindPackage, "delivered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Describe(tt.kind, tt.raw)
			assert.False(t, b.Known)
			assert.Equal(t, tt.raw, b.Text("mn"))
			assert.Equal(t, tt.raw, b.Text("en"))
			assert.Equal(t, ColorNeutral, b.Color)
		})
	}
}

// TestDescribe_EveryValueHasBothLabels guards against half-translated entries.
func TestDescribe_EveryValueHasBothLabels(t *testing.T) {
	for _, kind := range Kinds {
		values := Values(kind)
		assert.NotEmpty(t, values, "kind %s", kind)
		for _, v := range values {
			b := Describe(kind, v)
			assert.True(t, b.Known, "%s/%s", kind, v)
			assert.NotEmpty(t, b.Label.MN, "%s/%s", kind, v)
			assert.NotEmpty(t, b.Label.EN, "%s/%s", kind, v)
		}
		assert.Len(t, values, len(vocabulary[kind]), "kind %s has values missing from its ordering", kind)
	}
}

func TestOrderStatusesAreStages(t *testing.T) {
	for _, v := range Values(KindOrder) {
		if OrderStatus(v) == OrderCancelled {
			continue
		}
		assert.GreaterOrEqual(t, StageIndex(PackageStatus(v)), 0, v)
	}
}

func TestTypedBadges(t *testing.T) {
	assert.True(t, BatchDeparted.Known())
	assert.False(t, BatchStatus("LOST").Known())
	assert.True(t, PackageShelvedMN.Known())
	assert.False(t, PackageStatus("FOO").Known())
	assert.Equal(t, "Delivered", OrderDelivered.Badge().Text("en"))
	assert.Equal(t, ColorDanger, InvoiceOverdue.Badge().Color)
	assert.Equal(t, ColorWarning, VerificationPending.Badge().Color)
	assert.Equal(t, ColorSuccess, QCCompleted.Badge().Color)
	assert.Equal(t, ColorNeutral, ListingSold.Badge().Color)
}

func TestLocalizedString_In(t *testing.T) {
	l := LocalizedString{MN: "Монгол", EN: "English"}
	assert.Equal(t, "English", l.In("EN"))
	assert.Equal(t, "Монгол", l.In("mn"))
	assert.Equal(t, "Монгол", l.In("fr"))
	assert.Equal(t, "English", LocalizedString{EN: "English"}.In("mn"))
	assert.Equal(t, "Монгол", LocalizedString{MN: "Монгол"}.In("en"))
}
