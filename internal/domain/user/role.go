package user

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Frontend routes the portal redirects to after login.
const (
	RouteAdminDashboard = "/admin/dashboard"
	RouteStaffHome      = "/home"
	RouteLogin          = "/login"
)

// DashboardRoute maps a role to its landing destination. Unknown or missing
// roles land on the login page.
func DashboardRoute(role Role) string {
	switch role {
	case RoleAdmin:
		return RouteAdminDashboard
	case RoleStaff:
		return RouteStaffHome
	default:
		return RouteLogin
	}
}
