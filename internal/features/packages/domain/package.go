package domain

import (
	"time"

	"cargo-portal/internal/core/notice"
	statusdomain "cargo-portal/internal/features/status/domain"

	"github.com/shopspring/decimal"
)

// volumetricDivisor converts cubic centimetres to volumetric kilograms.
var volumetricDivisor = decimal.NewFromInt(6000)

// Dimensions are in centimetres.
type Dimensions struct {
	Length decimal.Decimal `json:"length"`
	Width  decimal.Decimal `json:"width"`
	Height decimal.Decimal `json:"height"`
}

// Volume returns the volume in cubic centimetres.
func (d Dimensions) Volume() decimal.Decimal {
	return d.Length.Mul(d.Width).Mul(d.Height)
}

// Event is one entry of a package's scan history.
type Event struct {
	Status   statusdomain.PackageStatus `json:"status"`
	At       time.Time                  `json:"at"`
	Location string                     `json:"location,omitempty"`
	Note     string                     `json:"note,omitempty"`
	Badge    statusdomain.Badge         `json:"badge"`
}

// Package is the physical parcel fulfilling an order.
type Package struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
	OrderID        string `json:"orderId,omitempty"`
	// BatchID is set while the package travels in a batch.
	BatchID string                     `json:"batchId,omitempty"`
	Status  statusdomain.PackageStatus `json:"status"`
	// Weight is in kilograms.
	Weight        decimal.Decimal `json:"weight"`
	Dimensions    Dimensions      `json:"dimensions"`
	ShelfLocation string          `json:"shelfLocation,omitempty"`
	ShippingCost  decimal.Decimal `json:"shippingCost"`
	QCNotes       string          `json:"qcNotes,omitempty"`
	QCPhotos      []string        `json:"qcPhotos,omitempty"`
	QCReport      string          `json:"qcReport,omitempty"`
	History       []Event         `json:"history,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`

	Badge statusdomain.Badge `json:"badge"`
}

// Batched reports whether the package already belongs to a batch.
func (p Package) Batched() bool {
	return p.BatchID != ""
}

// VolumetricWeight is the weight the volume is billed as.
func (p Package) VolumetricWeight() decimal.Decimal {
	return p.Dimensions.Volume().Div(volumetricDivisor).Round(2)
}

// ChargeableWeight is the larger of actual and volumetric weight.
func (p Package) ChargeableWeight() decimal.Decimal {
	return decimal.Max(p.Weight, p.VolumetricWeight())
}

// Decorate fills in the display fields.
func (p Package) Decorate() Package {
	p.Badge = p.Status.Badge()
	if len(p.History) > 0 {
		history := make([]Event, len(p.History))
		for i, e := range p.History {
			e.Badge = e.Status.Badge()
			history[i] = e
		}
		p.History = history
	}
	return p
}

// Detail is a package with its timeline.
type Detail struct {
	Package
	Progress         statusdomain.Progress `json:"progress"`
	ChargeableWeight decimal.Decimal       `json:"chargeableWeight"`
}

// NewDetail projects p onto the tracking timeline.
func NewDetail(p Package) Detail {
	return Detail{
		Package:          p.Decorate(),
		Progress:         statusdomain.Track(p.Status),
		ChargeableWeight: p.ChargeableWeight(),
	}
}

// Measurement is what warehouse staff record when a package is weighed.
type Measurement struct {
	Weight        decimal.Decimal `json:"weight"`
	Dimensions    Dimensions      `json:"dimensions"`
	ShelfLocation string          `json:"shelfLocation,omitempty"`
}

// Validate checks that every measure is positive.
func (m Measurement) Validate() error {
	fields := map[string]string{}
	for name, v := range map[string]decimal.Decimal{
		"weight": m.Weight,
		"length": m.Dimensions.Length,
		"width":  m.Dimensions.Width,
		"height": m.Dimensions.Height,
	} {
		if !v.IsPositive() {
			fields[name] = "must be greater than 0"
		}
	}
	if len(m.ShelfLocation) > 32 {
		fields["shelfLocation"] = "must be at most 32 characters"
	}
	if len(fields) > 0 {
		return &notice.ValidationError{Fields: fields}
	}
	return nil
}
