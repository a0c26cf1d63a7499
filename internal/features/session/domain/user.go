package domain

import statusdomain "cargo-portal/internal/features/status/domain"

// Role is the account type that decides which dashboard a user gets.
type Role string

const (
	RoleCustomer       Role = "CUSTOMER"
	RoleCargoAdmin     Role = "CARGO_ADMIN"
	RoleSuperAdmin     Role = "SUPER_ADMIN"
	RoleStaffChina     Role = "STAFF_CHINA"
	RoleStaffMongolia  Role = "STAFF_MONGOLIA"
	RoleDriver         Role = "DRIVER"
	RoleTransportAdmin Role = "TRANSPORT_ADMIN"
	RoleTransportStaff Role = "TRANSPORT_STAFF"
)

// Roles is the closed set of known roles.
var Roles = []Role{
	RoleCustomer,
	RoleCargoAdmin,
	RoleSuperAdmin,
	RoleStaffChina,
	RoleStaffMongolia,
	RoleDriver,
	RoleTransportAdmin,
	RoleTransportStaff,
}

// Staff are the roles that handle packages physically or administratively.
var Staff = []Role{RoleCargoAdmin, RoleSuperAdmin, RoleStaffChina, RoleStaffMongolia}

// Admins may review returns, verifications and users.
var Admins = []Role{RoleCargoAdmin, RoleSuperAdmin}

// CompanyMembership links a user to a cargo or transport company.
type CompanyMembership struct {
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	Role        string `json:"role,omitempty"`
}

// User is the authenticated account as reported by the backend's "who am I".
type User struct {
	ID                 string                          `json:"id"`
	Name               string                          `json:"name"`
	Phone              string                          `json:"phone"`
	Email              string                          `json:"email,omitempty"`
	Role               Role                            `json:"role"`
	VerificationStatus statusdomain.VerificationStatus `json:"verificationStatus"`
	Active             bool                            `json:"isActive"`
	Companies          []CompanyMembership             `json:"companies,omitempty"`
}

// CompanyID returns the first company the user belongs to, or "".
func (u User) CompanyID() string {
	if len(u.Companies) == 0 {
		return ""
	}
	return u.Companies[0].CompanyID
}

// Credentials is the login form.
type Credentials struct {
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"required"`
}
