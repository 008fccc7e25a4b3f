package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/venue-service/internal/api/dto"
	"github.com/spec-kit/venue-service/internal/domain"
	"github.com/spec-kit/venue-service/internal/service"
)

// VenuesHandler exposes venue CRUD and venue staff listing.
type VenuesHandler struct {
	venueService *service.VenueService
}

// NewVenuesHandler constructs handler.
func NewVenuesHandler(venueService *service.VenueService) *VenuesHandler {
	return &VenuesHandler{venueService: venueService}
}

// List handles GET /venues.
func (h *VenuesHandler) List(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	venues, err := h.venueService.ListVenues(c.UserContext(), actor)
	if err != nil {
		return err
	}
	resp := make([]dto.VenueResponse, 0, len(venues))
	for i := range venues {
		resp = append(resp, venueResponse(&venues[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /venues/:id.
func (h *VenuesHandler) Get(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	venue, err := h.venueService.GetVenue(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": venueResponse(venue)})
}

// Create handles POST /venues.
func (h *VenuesHandler) Create(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	var req dto.VenueRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.City == "" || req.State == "" {
		return fiber.NewError(http.StatusBadRequest, "name, city and state required")
	}
	venue, err := h.venueService.CreateVenue(c.UserContext(), actor, &domain.Venue{
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		LogoURL:   req.LogoURL,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": venueResponse(venue)})
}

// Update handles PUT /venues/:id.
func (h *VenuesHandler) Update(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	venue, err := h.venueService.GetVenue(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	var req dto.VenueRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name != "" {
		venue.Name = req.Name
	}
	if req.City != "" {
		venue.City = req.City
	}
	if req.State != "" {
		venue.State = req.State
	}
	venue.Address = req.Address
	venue.LogoURL = req.LogoURL
	updated, err := h.venueService.UpdateVenue(c.UserContext(), actor, venue)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": venueResponse(updated)})
}

// Delete handles DELETE /venues/:id.
func (h *VenuesHandler) Delete(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	if err := h.venueService.DeleteVenue(c.UserContext(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

// ListStaff handles GET /venues/:id/staff.
func (h *VenuesHandler) ListStaff(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	staff, err := h.venueService.ListVenueStaff(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	resp := make([]dto.ProfileResponse, 0, len(staff))
	for i := range staff {
		resp = append(resp, profileResponse(&staff[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

func venueResponse(v *domain.Venue) dto.VenueResponse {
	return dto.VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Address:   v.Address,
		City:      v.City,
		State:     v.State,
		LogoURL:   v.LogoURL,
		ManagerID: v.ManagerID,
		CreatedAt: v.CreatedAt,
	}
}
