package cvclient

// Marketplace roles.
const (
	RoleWorker   = "worker"
	RoleEmployer = "employer"
	RoleAdmin    = "admin"
)

// Well-known routes.
const (
	RouteHome              = "/"
	RouteLogin             = "/login"
	RouteWorkerDashboard   = "/worker-dashboard"
	RouteEmployerDashboard = "/employer-dashboard"
	RouteAdminDashboard    = "/admin-dashboard"
)

// LandingRouteFor maps a role to its post-login landing route. Unknown
// roles land on home.
func LandingRouteFor(role string) string {
	switch role {
	case RoleWorker:
		return RouteWorkerDashboard
	case RoleEmployer:
		return RouteEmployerDashboard
	case RoleAdmin:
		return RouteAdminDashboard
	default:
		return RouteHome
	}
}

// Decision is the outcome of a route-guard check: either admit, or
// redirect to RedirectTo.
type Decision struct {
	Admit      bool
	RedirectTo string
}

// CanEnter decides whether the session may enter a screen restricted to
// allowedRoles. Anonymous sessions are sent to the login screen; a
// logged-in user with the wrong role is sent to their own landing route,
// never to another role's restricted screen. The check is pure and must
// be re-evaluated on every navigation, session state can change in
// between.
func CanEnter(session Session, allowedRoles ...string) Decision {
	if session.Anonymous() {
		return Decision{RedirectTo: RouteLogin}
	}
	role := session.Role()
	for _, allowed := range allowedRoles {
		if role == allowed {
			return Decision{Admit: true}
		}
	}
	return Decision{RedirectTo: LandingRouteFor(role)}
}
