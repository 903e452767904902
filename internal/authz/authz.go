package authz // package authz decides view reachability from the derived session

import "github.com/iliesb/campus-admin-client/internal/session"

// View names a navigable screen of the application.
type View string

// The fixed set of views, mirroring the route tree of the UI.
const (
	ViewLogin           View = "login"
	ViewRegister        View = "register"
	ViewHome            View = "home"
	ViewProfile         View = "profile"
	ViewLessons         View = "lessons"
	ViewAdmin           View = "admin"
	ViewUsersManagement View = "users-management"
)

// Decision is the outcome of an authorization check.  Unauthorized
// access never raises a visible error; it redirects instead.
type Decision int

const (
	// Allow grants access to the view.
	Allow Decision = iota
	// RedirectLogin sends the visitor to the login entry point.
	RedirectLogin
	// RedirectHome sends the visitor to the default view.
	RedirectHome
)

// rule describes who may reach a view.  anonOnly views bounce
// authenticated visitors; role, when set, additionally restricts the
// view to one privileged role.
type rule struct {
	anonOnly bool
	role     session.Role
}

// rules is the authorization table for every known view.  Views absent
// from the table are unknown routes, handled by the catch-all in Decide.
var rules = map[View]rule{
	ViewLogin:           {anonOnly: true},
	ViewRegister:        {anonOnly: true},
	ViewHome:            {},
	ViewProfile:         {},
	ViewLessons:         {},
	ViewAdmin:           {role: session.RoleGestionnaire},
	ViewUsersManagement: {role: session.RoleGestionnaire},
}

// Decide evaluates whether the session (nil when unauthenticated) may
// reach the view.  Evaluation is synchronous and purely derived from
// session state; no network round trip is involved.
func Decide(view View, s *session.Session) Decision {
	r, known := rules[view]
	if !known {
		// Unknown routes collapse to the default view, which itself
		// requires authentication.
		if s == nil {
			return RedirectLogin
		}
		return RedirectHome
	}
	if r.anonOnly {
		if s != nil {
			return RedirectHome
		}
		return Allow
	}
	if s == nil {
		return RedirectLogin
	}
	if r.role != "" && s.Role != r.role {
		return RedirectHome
	}
	return Allow
}

// Reachable lists the views the session may access, in a stable order.
func Reachable(s *session.Session) []View {
	ordered := []View{
		ViewLogin, ViewRegister, ViewHome, ViewProfile,
		ViewLessons, ViewAdmin, ViewUsersManagement,
	}
	var out []View
	for _, v := range ordered {
		if Decide(v, s) == Allow {
			out = append(out, v)
		}
	}
	return out
}
