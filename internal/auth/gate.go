package auth

import "github.com/spec-kit/venue-service/internal/domain"

// PathGroup classifies routes for the routing gate.
type PathGroup int

const (
	PathGroupAdmin PathGroup = iota
	PathGroupManager
	PathGroupLogin
	PathGroupRoot
)

// View names the layout a render decision resolves to.
type View string

const (
	ViewAdmin    View = "admin"
	ViewManager  View = "manager"
	ViewLogin    View = "login"
	ViewFallback View = "fallback"
)

// Navigation targets used by redirect decisions.
const (
	TargetLogin       = "/login"
	TargetAdminHome   = "/admin/dashboard"
	TargetManagerHome = "/manager/dashboard"
	TargetPublicMenu  = "/menu-placeholder"
)

// Decision is the gate outcome for one request: render a view or redirect.
type Decision struct {
	Redirect bool
	View     View
	Target   string
}

func render(v View) Decision          { return Decision{View: v} }
func redirect(target string) Decision { return Decision{Redirect: true, Target: target} }

// Decide computes the routing decision for a path group given whether a
// session is present and the session profile's role. Pure and re-evaluated
// on every request; the decision is never cached.
//
// The table is exhaustive: a session with an unknown or empty role falls
// through to the same outcome as role "bartender" (other), never to a
// privileged layout.
func Decide(group PathGroup, sessionPresent bool, role domain.Role) Decision {
	switch group {
	case PathGroupAdmin:
		if sessionPresent && role == domain.RoleAdmin {
			return render(ViewAdmin)
		}
		return redirect(TargetLogin)

	case PathGroupManager:
		if sessionPresent && role == domain.RoleManager {
			return render(ViewManager)
		}
		return redirect(TargetLogin)

	case PathGroupLogin:
		if !sessionPresent {
			return render(ViewLogin)
		}
		switch role {
		case domain.RoleAdmin:
			return redirect(TargetAdminHome)
		case domain.RoleManager:
			return redirect(TargetManagerHome)
		default:
			return render(ViewFallback)
		}

	case PathGroupRoot:
		if !sessionPresent {
			return redirect(TargetLogin)
		}
		switch role {
		case domain.RoleAdmin:
			return redirect(TargetAdminHome)
		case domain.RoleManager:
			return redirect(TargetManagerHome)
		default:
			return redirect(TargetPublicMenu)
		}
	}

	// Unknown groups never render anything privileged.
	return redirect(TargetLogin)
}
