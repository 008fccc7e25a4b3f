package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/venue-service/internal/api/dto"
	"github.com/spec-kit/venue-service/internal/auth"
	"github.com/spec-kit/venue-service/internal/domain"
	"github.com/spec-kit/venue-service/internal/service"
)

// AuthHandler exposes login and session endpoints plus the gated page
// routes.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	account, profile, token, exp, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, err.Error())
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"account": fiber.Map{"id": account.ID, "email": account.Email},
			"profile": profileResponse(profile),
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"account": fiber.Map{"id": principal.Account.ID, "email": principal.Account.Email},
			"profile": profileResponse(principal.Profile),
		},
	})
}

// Page renders the view the routing gate picked for this request. Redirect
// decisions never reach here; the gate middleware already answered them.
func (h *AuthHandler) Page(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"view": auth.GateView(c),
			"path": c.Path(),
		},
	})
}

// PublicMenu renders the placeholder page signed-in staff without a
// back-office layout land on.
func (h *AuthHandler) PublicMenu(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"view": "public-menu",
			"path": c.Path(),
		},
	})
}

func profileResponse(p *domain.Profile) dto.ProfileResponse {
	if p == nil {
		return dto.ProfileResponse{}
	}
	return dto.ProfileResponse{
		ID:          p.ID,
		VenueID:     p.VenueID,
		Role:        string(p.Role),
		FullName:    p.FullName,
		PhoneNumber: p.PhoneNumber,
	}
}
