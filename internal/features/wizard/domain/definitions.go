package domain

import (
	"fmt"
	"strconv"

	ordersdomain "cargo-portal/internal/features/orders/domain"
	sessiondomain "cargo-portal/internal/features/session/domain"

	"github.com/shopspring/decimal"
)

// Definitions returns the built-in wizards keyed by kind.
func Definitions() map[Kind]Definition {
	return map[Kind]Definition{
		KindOrder:        OrderDefinition(),
		KindVerification: VerificationDefinition(),
		KindVehicle:      VehicleDefinition(),
	}
}

// OrderDefinition is the new order form: product, then delivery, then confirmation.
func OrderDefinition() Definition {
	return Definition{
		Kind: KindOrder,
		Steps: []Step{
			{Name: "product", Fields: []Field{
				{Name: "title", Rule: "required,max=200"},
				{Name: "url", Rule: "omitempty,url"},
				{Name: "price", Rule: "required,positive"},
				{Name: "quantity", Rule: "required,number,positive"},
				{Name: "image", Rule: "omitempty,url", Upload: true},
				{Name: "notes", Rule: "max=500"},
			}},
			{Name: "delivery", Fields: []Field{
				{Name: "serviceType", Rule: "required,oneof=STANDARD FAST"},
				{Name: "deliveryPointId", Rule: "required"},
				{Name: "insuranceId"},
			}},
			{Name: "confirm", Fields: []Field{
				{Name: "acceptTerms", Rule: "required,eq=true"},
			}},
		},
		Submit:  "/orders",
		Roles:   []sessiondomain.Role{sessiondomain.RoleCustomer, sessiondomain.RoleCargoAdmin, sessiondomain.RoleSuperAdmin},
		Payload: orderPayload,
	}
}

type orderRequest struct {
	Product         ordersdomain.Product     `json:"product"`
	ServiceType     ordersdomain.ServiceType `json:"serviceType"`
	DeliveryPointID string                   `json:"deliveryPointId"`
	InsuranceID     string                   `json:"insuranceId,omitempty"`
}

func orderPayload(v Values) (interface{}, error) {
	price, err := decimal.NewFromString(v["price"])
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}
	qty, err := strconv.Atoi(v["quantity"])
	if err != nil {
		return nil, fmt.Errorf("quantity: %w", err)
	}

	p := ordersdomain.Product{
		Title:    v["title"],
		URL:      v["url"],
		Price:    price,
		Quantity: qty,
		Notes:    v["notes"],
	}
	if v["image"] != "" {
		p.Images = []string{v["image"]}
	}
	return orderRequest{
		Product:         p,
		ServiceType:     ordersdomain.ServiceType(v["serviceType"]),
		DeliveryPointID: v["deliveryPointId"],
		InsuranceID:     v["insuranceId"],
	}, nil
}

// VerificationDefinition is the document verification request: which entity,
// then its documents.
func VerificationDefinition() Definition {
	return Definition{
		Kind: KindVerification,
		Steps: []Step{
			{Name: "entity", Fields: []Field{
				{Name: "entityType", Rule: "required,oneof=USER VEHICLE COMPANY"},
				{Name: "entityId", Rule: "required"},
			}},
			{Name: "documents", Fields: []Field{
				{Name: "documentFront", Rule: "required,url", Upload: true},
				{Name: "documentBack", Rule: "omitempty,url", Upload: true},
				{Name: "selfie", Rule: "omitempty,url", Upload: true},
			}},
		},
		Submit:  "/verification/request",
		Payload: verificationPayload,
	}
}

type verificationRequest struct {
	EntityType string   `json:"entityType"`
	EntityID   string   `json:"entityId"`
	Documents  []string `json:"documents"`
}

func verificationPayload(v Values) (interface{}, error) {
	req := verificationRequest{EntityType: v["entityType"], EntityID: v["entityId"], Documents: []string{}}
	for _, name := range []string{"documentFront", "documentBack", "selfie"} {
		if url := v[name]; url != "" {
			req.Documents = append(req.Documents, url)
		}
	}
	return req, nil
}

// VehicleDefinition registers a truck with a transport company.
func VehicleDefinition() Definition {
	return Definition{
		Kind: KindVehicle,
		Steps: []Step{
			{Name: "vehicle", Fields: []Field{
				{Name: "plateNumber", Rule: "required,max=16"},
				{Name: "type", Rule: "required,oneof=TRUCK VAN TRAILER"},
				{Name: "make", Rule: "required,max=64"},
				{Name: "model", Rule: "max=64"},
				{Name: "capacityKg", Rule: "required,positive"},
			}},
			{Name: "documents", Fields: []Field{
				{Name: "registration", Rule: "required,url", Upload: true},
				{Name: "photo", Rule: "required,url", Upload: true},
			}},
		},
		Submit: "/vehicles",
		Roles: []sessiondomain.Role{
			sessiondomain.RoleTransportAdmin,
			sessiondomain.RoleTransportStaff,
			sessiondomain.RoleDriver,
			sessiondomain.RoleSuperAdmin,
		},
		Payload: vehiclePayload,
	}
}

type vehicleDocuments struct {
	Registration string `json:"registration"`
	Photo        string `json:"photo"`
}

type vehicleRequest struct {
	PlateNumber string           `json:"plateNumber"`
	Type        string           `json:"type"`
	Make        string           `json:"make"`
	Model       string           `json:"model,omitempty"`
	CapacityKg  decimal.Decimal  `json:"capacityKg"`
	Documents   vehicleDocuments `json:"documents"`
}

func vehiclePayload(v Values) (interface{}, error) {
	capacity, err := decimal.NewFromString(v["capacityKg"])
	if err != nil {
		return nil, fmt.Errorf("capacityKg: %w", err)
	}
	return vehicleRequest{
		PlateNumber: v["plateNumber"],
		Type:        v["type"],
		Make:        v["make"],
		Model:       v["model"],
		CapacityKg:  capacity,
		Documents: vehicleDocuments{
			Registration: v["registration"],
			Photo:        v["photo"],
		},
	}, nil
}
