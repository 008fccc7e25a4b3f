package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/venue-service/internal/domain"
	"github.com/spec-kit/venue-service/internal/identity"
	"github.com/spec-kit/venue-service/internal/repository"
	apperrors "github.com/spec-kit/venue-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller: the account plus its
// profile row, both re-read on every request so role or venue changes take
// effect immediately.
type Principal struct {
	Account *domain.Account
	Profile *domain.Profile
}

// Role returns the caller's profile role, or empty when no profile loaded.
func (p *Principal) Role() domain.Role {
	if p == nil || p.Profile == nil {
		return ""
	}
	return p.Profile.Role
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens   *TokenManager
	accounts identity.Store
	profiles repository.ProfileRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, accounts identity.Store, profiles repository.ProfileRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, accounts: accounts, profiles: profiles}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	principal, err := m.resolve(c)
	if err != nil {
		return err
	}
	if principal == nil {
		return apperrors.NewUnauthorized("missing authorization header")
	}
	c.Locals(principalKey, principal)
	return c.Next()
}

// Optional resolves the principal when a token is present but lets
// anonymous requests through. The gate handlers for "/" and "/login" need
// the session-absent case as a first-class input, not an error.
func (m *AuthMiddleware) Optional(c *fiber.Ctx) error {
	principal, err := m.resolve(c)
	if err == nil && principal != nil {
		c.Locals(principalKey, principal)
	}
	return c.Next()
}

func (m *AuthMiddleware) resolve(c *fiber.Ctx) (*Principal, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid token")
	}

	account, err := m.accounts.GetByID(c.Context(), claims.AccountID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewUnauthorized("account not found")
		}
		return nil, apperrors.MapError(err)
	}
	if account.Disabled {
		return nil, apperrors.NewUnauthorized("account disabled")
	}

	profile, err := m.profiles.GetByID(c.Context(), claims.AccountID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewUnauthorized("profile not found")
		}
		return nil, apperrors.MapError(err)
	}

	return &Principal{Account: account, Profile: profile}, nil
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
