package domain

import (
	"time"

	packagesdomain "cargo-portal/internal/features/packages/domain"
	statusdomain "cargo-portal/internal/features/status/domain"

	"github.com/shopspring/decimal"
)

// Action is a status transition a batch screen may offer.
type Action string

const (
	ActionClose  Action = "close"
	ActionDepart Action = "depart"
	ActionArrive Action = "arrive"
)

// Batch is a consolidation of packages travelling on one vehicle.
type Batch struct {
	ID     string                   `json:"id"`
	Code   string                   `json:"code"`
	Status statusdomain.BatchStatus `json:"status"`
	// VehicleID and DriverID are set once the batch is assigned to a trip.
	VehicleID    string          `json:"vehicleId,omitempty"`
	DriverID     string          `json:"driverId,omitempty"`
	PackageCount int             `json:"packageCount"`
	TotalWeight  decimal.Decimal `json:"totalWeight"`
	// Packages is only sent on the detail endpoint.
	Packages   []packagesdomain.Package `json:"packages,omitempty"`
	DepartedAt *time.Time               `json:"departedAt,omitempty"`
	ArrivedAt  *time.Time               `json:"arrivedAt,omitempty"`
	CreatedAt  time.Time                `json:"createdAt"`

	Badge statusdomain.Badge `json:"badge"`
}

// Decorate fills in the display fields.
func (b Batch) Decorate() Batch {
	b.Badge = b.Status.Badge()
	if len(b.Packages) > 0 {
		pkgs := make([]packagesdomain.Package, len(b.Packages))
		for i, p := range b.Packages {
			pkgs[i] = p.Decorate()
		}
		b.Packages = pkgs
	}
	return b
}

// NextAction is the button a batch screen shows for the current status.
// The backend decides whether the transition is legal.
func (b Batch) NextAction() (Action, bool) {
	switch b.Status {
	case statusdomain.BatchOpen:
		return ActionClose, true
	case statusdomain.BatchClosed:
		return ActionDepart, true
	case statusdomain.BatchDeparted:
		return ActionArrive, true
	default:
		return "", false
	}
}

// Detail is a batch with the action its screen offers.
type Detail struct {
	Batch
	Actions []Action `json:"actions"`
}

// NewDetail decorates b and lists its next action.
func NewDetail(b Batch) Detail {
	d := Detail{Batch: b.Decorate(), Actions: []Action{}}
	if a, ok := b.NextAction(); ok {
		d.Actions = append(d.Actions, a)
	}
	return d
}

// NewBatch is the create form.
type NewBatch struct {
	PackageIDs []string `json:"packageIds" validate:"required,min=1,dive,required"`
	VehicleID  string   `json:"vehicleId,omitempty"`
	Notes      string   `json:"notes,omitempty" validate:"max=500"`
}

// Unbatched drops packages that already belong to a batch.
func Unbatched(pkgs []packagesdomain.Package) []packagesdomain.Package {
	out := make([]packagesdomain.Package, 0, len(pkgs))
	for _, p := range pkgs {
		if !p.Batched() {
			out = append(out, p.Decorate())
		}
	}
	return out
}
