package cli

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/riskibarqy/content-brain/internal/usecase"
)

// Route names of the navigation surface.
const (
	RouteNameHome           = "home"
	RouteNameLogin          = "login"
	RouteNameRegister       = "register"
	RouteNameForgotPassword = "forgot-password"
	RouteNameResetPassword  = "reset-password"
	RouteNameDashboard      = "dashboard"
	RouteNameOnboarding     = "onboarding"
	RouteNameCalendar       = "calendar"
	RouteNameLinkedIn       = "linkedin-connect"
	RouteNameProfileEdit    = "profile-edit"
	RouteNameSettings       = "settings"
	RouteNameNotFound       = "not-found"
)

// Destination is where a path resolved to after the auth guard ran.
type Destination struct {
	Name       string
	Path       string
	Vars       map[string]string
	Redirected bool
}

// Navigator matches paths of the client with gorilla/mux and applies the
// sign-in guard.
type Navigator struct {
	router *mux.Router
	public map[string]bool
}

func NewNavigator() *Navigator {
	r := mux.NewRouter()
	routes := []struct {
		name, path string
	}{
		{RouteNameHome, usecase.RouteHome},
		{RouteNameLogin, usecase.RouteLogin},
		{RouteNameRegister, usecase.RouteRegister},
		{RouteNameForgotPassword, usecase.RouteForgotPassword},
		{RouteNameResetPassword, usecase.RouteResetPassword},
		{RouteNameDashboard, usecase.RouteDashboard},
		{RouteNameOnboarding, usecase.RouteOnboarding},
		{RouteNameCalendar, "/calendar/{profileId}"},
		{RouteNameLinkedIn, usecase.RouteLinkedIn},
		{RouteNameProfileEdit, "/profile/{profileId}/edit"},
		{RouteNameSettings, usecase.RouteSettings},
	}
	for _, route := range routes {
		r.NewRoute().Name(route.name).Path(route.path).Methods(http.MethodGet)
	}

	return &Navigator{
		router: r,
		public: map[string]bool{
			RouteNameHome:           true,
			RouteNameLogin:          true,
			RouteNameRegister:       true,
			RouteNameForgotPassword: true,
			RouteNameResetPassword:  true,
		},
	}
}

// Resolve maps a path to its route. Protected routes send signed out
// callers to the login route; unknown paths resolve to not-found.
func (n *Navigator) Resolve(path string, authenticated bool) Destination {
	path = strings.TrimSpace(path)
	if path == "" {
		path = usecase.RouteHome
	}
	u, err := url.Parse(path)
	if err != nil || !strings.HasPrefix(u.Path, "/") {
		return Destination{Name: RouteNameNotFound, Path: path}
	}

	req := &http.Request{Method: http.MethodGet, URL: u, Host: "localhost"}
	var match mux.RouteMatch
	if !n.router.Match(req, &match) || match.Route == nil {
		return Destination{Name: RouteNameNotFound, Path: u.Path}
	}

	name := match.Route.GetName()
	if !authenticated && !n.public[name] {
		return Destination{Name: RouteNameLogin, Path: usecase.RouteLogin, Redirected: true}
	}
	return Destination{Name: name, Path: u.Path, Vars: match.Vars}
}

func (n *Navigator) IsPublic(name string) bool {
	return n.public[name]
}
