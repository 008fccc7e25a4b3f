package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/venue-service/internal/api/dto"
	"github.com/spec-kit/venue-service/internal/auth"
	"github.com/spec-kit/venue-service/internal/domain"
	"github.com/spec-kit/venue-service/internal/service"
)

// StaffHandler exposes the privileged staff lifecycle endpoints. Every
// operation re-checks the caller's role server-side; the routing gate is
// presentation only.
type StaffHandler struct {
	provisioning *service.ProvisioningService
	assignment   *service.AssignmentService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(provisioning *service.ProvisioningService, assignment *service.AssignmentService) *StaffHandler {
	return &StaffHandler{provisioning: provisioning, assignment: assignment}
}

// CreateStaff handles POST /staff. Admin only.
func (h *StaffHandler) CreateStaff(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.provisioning.CreateStaff(c.UserContext(), actor, service.CreateStaffInput{
		Email:       req.Email,
		Password:    req.Password,
		Role:        domain.Role(req.Role),
		VenueID:     req.VenueID,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.WorkflowResponse{
		Success: true,
		Message: "User created successfully",
		UserID:  result.AccountID,
	}})
}

// CreateBartender handles POST /staff/bartenders. Manager only; the venue
// must be the caller's own.
func (h *StaffHandler) CreateBartender(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	var req dto.CreateBartenderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.provisioning.CreateBartender(c.UserContext(), actor, service.CreateStaffInput{
		Email:       req.Email,
		Password:    req.Password,
		Role:        domain.Role(req.Role),
		VenueID:     req.VenueID,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.WorkflowResponse{
		Success: true,
		Message: "Bartender created successfully",
		UserID:  result.AccountID,
	}})
}

// DeleteStaff handles DELETE /staff/:id. Admin only.
func (h *StaffHandler) DeleteStaff(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	accountID := c.Params("id")
	if accountID == "" {
		return fiber.NewError(http.StatusBadRequest, "user id required")
	}
	if err := h.provisioning.DeleteStaff(c.UserContext(), actor, accountID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.WorkflowResponse{
		Success: true,
		Message: "User deleted successfully",
		UserID:  accountID,
	}})
}

// DisableStaff handles POST /staff/:id/disable. Manager only, same venue,
// bartenders only.
func (h *StaffHandler) DisableStaff(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	accountID := c.Params("id")
	if accountID == "" {
		return fiber.NewError(http.StatusBadRequest, "user id required")
	}
	if err := h.provisioning.DisableStaff(c.UserContext(), actor, accountID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.WorkflowResponse{
		Success: true,
		Message: "User disabled successfully",
		UserID:  accountID,
	}})
}

// AssignManager handles POST /venues/:id/manager. Admin only.
func (h *StaffHandler) AssignManager(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	venueID := c.Params("id")
	var req dto.AssignManagerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.assignment.AssignManager(c.UserContext(), actor, venueID, req.ManagerUserID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.WorkflowResponse{
		Success: true,
		Message: "Manager assigned successfully",
		UserID:  req.ManagerUserID,
	}})
}

func actorProfile(c *fiber.Ctx) (*domain.Profile, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Profile == nil {
		return nil, fiber.NewError(http.StatusUnauthorized, "authentication required")
	}
	return principal.Profile, nil
}
