package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/venue-service/internal/domain"
)

// RequireRole ensures the principal's profile carries one of the allowed roles.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Profile == nil {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Profile.Role]; !exists {
			return fiber.NewError(http.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}

// RequireAdmin shortcuts the admin-only guard.
func RequireAdmin() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}

// GatePage applies the routing decision table to a page group: render
// decisions fall through to the route handler, redirect decisions 302.
func GatePage(group PathGroup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		decision := Decide(group, ok, roleOf(principal, ok))
		if decision.Redirect {
			return c.Redirect(decision.Target, fiber.StatusFound)
		}
		c.Locals("gate_view", decision.View)
		return c.Next()
	}
}

// GateView returns the view chosen by GatePage for this request.
func GateView(c *fiber.Ctx) View {
	if v, ok := c.Locals("gate_view").(View); ok {
		return v
	}
	return ""
}

func roleOf(p *Principal, ok bool) domain.Role {
	if !ok {
		return ""
	}
	return p.Role()
}
