package domain

import (
	"net/url"

	sessiondomain "cargo-portal/internal/features/session/domain"
	statusdomain "cargo-portal/internal/features/status/domain"
)

// ViewName identifies the top-level component tree the browser mounts.
type ViewName string

const (
	ViewCustomer       ViewName = "customer"
	ViewCargoAdmin     ViewName = "cargo_admin"
	ViewSuperAdmin     ViewName = "super_admin"
	ViewStaffChina     ViewName = "staff_china"
	ViewStaffMongolia  ViewName = "staff_mongolia"
	ViewDriver         ViewName = "driver"
	ViewTransportAdmin ViewName = "transport_admin"
	ViewTransportStaff ViewName = "transport_staff"
	ViewNoDashboard    ViewName = "no_dashboard"
)

// ActionSignOut is the forced way out offered when no dashboard exists.
const ActionSignOut = "sign_out"

// Widget is a counter tile backed by one list endpoint.
type Widget struct {
	Key   string                       `json:"key"`
	Label statusdomain.LocalizedString `json:"label"`
	// Path and Query select what is counted on the backend.
	Path  string     `json:"-"`
	Query url.Values `json:"-"`
	// Link is the portal screen the tile opens.
	Link string `json:"link"`
}

// View is a dashboard: which component tree to mount and its tiles.
type View struct {
	Name    ViewName                     `json:"name"`
	Title   statusdomain.LocalizedString `json:"title"`
	Widgets []Widget                     `json:"-"`
	Actions []string                     `json:"actions"`
}

// Fallback reports whether v is the no-dashboard view.
func (v View) Fallback() bool {
	return v.Name == ViewNoDashboard
}

// Route picks the dashboard for role. Every known role has its own view and
// anything else gets the no-dashboard view with a sign-out action.
func Route(role sessiondomain.Role) View {
	switch role {
	case sessiondomain.RoleCustomer:
		return customerView()
	case sessiondomain.RoleCargoAdmin:
		return cargoAdminView()
	case sessiondomain.RoleSuperAdmin:
		return superAdminView()
	case sessiondomain.RoleStaffChina:
		return staffChinaView()
	case sessiondomain.RoleStaffMongolia:
		return staffMongoliaView()
	case sessiondomain.RoleDriver:
		return driverView()
	case sessiondomain.RoleTransportAdmin:
		return transportAdminView()
	case sessiondomain.RoleTransportStaff:
		return transportStaffView()
	default:
		return FallbackView()
	}
}

// FallbackView is shown to roles without a dashboard.
func FallbackView() View {
	return View{
		Name:    ViewNoDashboard,
		Title:   label("Таны эрхэд тохирох самбар алга", "No dashboard is available for your role"),
		Actions: []string{ActionSignOut},
	}
}
