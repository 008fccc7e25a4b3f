package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/venue-service/internal/domain"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		group   PathGroup
		session bool
		role    domain.Role
		want    Decision
	}{
		// Admin pages.
		{"admin page, admin session", PathGroupAdmin, true, domain.RoleAdmin, Decision{View: ViewAdmin}},
		{"admin page, manager session", PathGroupAdmin, true, domain.RoleManager, Decision{Redirect: true, Target: TargetLogin}},
		{"admin page, bartender session", PathGroupAdmin, true, domain.RoleBartender, Decision{Redirect: true, Target: TargetLogin}},
		{"admin page, no session", PathGroupAdmin, false, "", Decision{Redirect: true, Target: TargetLogin}},

		// Manager pages.
		{"manager page, manager session", PathGroupManager, true, domain.RoleManager, Decision{View: ViewManager}},
		{"manager page, admin session", PathGroupManager, true, domain.RoleAdmin, Decision{Redirect: true, Target: TargetLogin}},
		{"manager page, no session", PathGroupManager, false, "", Decision{Redirect: true, Target: TargetLogin}},

		// Login page.
		{"login, no session", PathGroupLogin, false, "", Decision{View: ViewLogin}},
		{"login, admin session", PathGroupLogin, true, domain.RoleAdmin, Decision{Redirect: true, Target: TargetAdminHome}},
		{"login, manager session", PathGroupLogin, true, domain.RoleManager, Decision{Redirect: true, Target: TargetManagerHome}},
		{"login, bartender session", PathGroupLogin, true, domain.RoleBartender, Decision{View: ViewFallback}},

		// Root.
		{"root, no session", PathGroupRoot, false, "", Decision{Redirect: true, Target: TargetLogin}},
		{"root, admin session", PathGroupRoot, true, domain.RoleAdmin, Decision{Redirect: true, Target: TargetAdminHome}},
		{"root, manager session", PathGroupRoot, true, domain.RoleManager, Decision{Redirect: true, Target: TargetManagerHome}},
		{"root, bartender session", PathGroupRoot, true, domain.RoleBartender, Decision{Redirect: true, Target: TargetPublicMenu}},

		// Sessions with an unknown role never reach a privileged layout.
		{"admin page, unknown role", PathGroupAdmin, true, "superuser", Decision{Redirect: true, Target: TargetLogin}},
		{"login, unknown role", PathGroupLogin, true, "superuser", Decision{View: ViewFallback}},
		{"root, unknown role", PathGroupRoot, true, "superuser", Decision{Redirect: true, Target: TargetPublicMenu}},
		{"root, empty role with session", PathGroupRoot, true, "", Decision{Redirect: true, Target: TargetPublicMenu}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Decide(tc.group, tc.session, tc.role))
		})
	}
}
