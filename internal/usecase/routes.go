package usecase

import "net/url"

// Paths of the navigation surface that services redirect to.
const (
	RouteHome           = "/"
	RouteLogin          = "/login"
	RouteRegister       = "/register"
	RouteForgotPassword = "/forgot-password"
	RouteResetPassword  = "/reset-password"
	RouteDashboard      = "/dashboard"
	RouteOnboarding     = "/onboarding"
	RouteLinkedIn       = "/linkedin-connect"
	RouteSettings       = "/settings"
)

func CalendarRoute(profileID string) string {
	return "/calendar/" + url.PathEscape(profileID)
}

func ProfileEditRoute(profileID string) string {
	return "/profile/" + url.PathEscape(profileID) + "/edit"
}
