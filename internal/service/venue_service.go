package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/venue-service/internal/domain"
	"github.com/spec-kit/venue-service/internal/persistence"
	"github.com/spec-kit/venue-service/internal/repository"
	apperrors "github.com/spec-kit/venue-service/pkg/util"
)

// VenueService manages venues and venue staff listings.
type VenueService struct {
	venues   repository.VenueRepository
	profiles repository.ProfileRepository
	cache    *persistence.EntityCache
	logger   *zap.Logger
}

// VenueDependencies encapsulates collaborator requirements.
type VenueDependencies struct {
	VenueRepo   repository.VenueRepository
	ProfileRepo repository.ProfileRepository
	Cache       *persistence.EntityCache
	Logger      *zap.Logger
}

// NewVenueService constructs the service.
func NewVenueService(deps VenueDependencies) *VenueService {
	return &VenueService{
		venues:   deps.VenueRepo,
		profiles: deps.ProfileRepo,
		cache:    deps.Cache,
		logger:   deps.Logger,
	}
}

func requireAdmin(actor *domain.Profile) error {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("admin role required")
	}
	return nil
}

// managesVenue reports whether the actor is the manager assigned to venueID.
func managesVenue(actor *domain.Profile, venueID string) bool {
	return actor != nil && actor.Role == domain.RoleManager &&
		actor.VenueID != nil && *actor.VenueID == venueID
}

// ListVenues returns all venues, newest first, read through the cache.
func (s *VenueService) ListVenues(ctx context.Context, actor *domain.Profile) ([]domain.Venue, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var cached []domain.Venue
	if err := s.cache.Get(ctx, persistence.KeyVenues(), &cached); err == nil {
		return cached, nil
	}

	venues, err := s.venues.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Set(ctx, persistence.KeyVenues(), venues)
	return venues, nil
}

// GetVenue fetches one venue. Admins see any venue; a manager only their own.
func (s *VenueService) GetVenue(ctx context.Context, actor *domain.Profile, id string) (*domain.Venue, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if actor.Role != domain.RoleAdmin && !managesVenue(actor, id) {
		return nil, apperrors.NewForbidden("insufficient role")
	}
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("venue", map[string]any{"venue_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return venue, nil
}

// CreateVenue creates a venue.
func (s *VenueService) CreateVenue(ctx context.Context, actor *domain.Profile, venue *domain.Venue) (*domain.Venue, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if venue.Name == "" || venue.City == "" || venue.State == "" {
		return nil, apperrors.NewValidationError("name, city and state required", nil)
	}
	if err := s.venues.Create(ctx, venue); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Invalidate(ctx, persistence.KeyVenues())
	return venue, nil
}

// UpdateVenue modifies venue fields.
func (s *VenueService) UpdateVenue(ctx context.Context, actor *domain.Profile, venue *domain.Venue) (*domain.Venue, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.venues.Update(ctx, venue); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("venue", map[string]any{"venue_id": venue.ID})
		}
		return nil, apperrors.MapError(err)
	}
	s.cache.Invalidate(ctx, persistence.KeyVenues())
	return venue, nil
}

// DeleteVenue removes a venue.
func (s *VenueService) DeleteVenue(ctx context.Context, actor *domain.Profile, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.venues.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("venue", map[string]any{"venue_id": id})
		}
		return apperrors.MapError(err)
	}
	s.cache.Invalidate(ctx,
		persistence.KeyVenues(),
		persistence.KeyCategories(id),
		persistence.KeyProducts(id),
		persistence.KeyVenueStaff(id),
	)
	return nil
}

// ListVenueStaff lists the bartender profiles of a venue, newest first.
// Admins see any venue's staff; a manager only their own venue's.
func (s *VenueService) ListVenueStaff(ctx context.Context, actor *domain.Profile, venueID string) ([]domain.Profile, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if actor.Role != domain.RoleAdmin && !managesVenue(actor, venueID) {
		return nil, apperrors.NewForbidden("insufficient role")
	}

	var cached []domain.Profile
	if err := s.cache.Get(ctx, persistence.KeyVenueStaff(venueID), &cached); err == nil {
		return cached, nil
	}

	role := domain.RoleBartender
	staff, err := s.profiles.List(ctx, repository.ProfileFilter{
		VenueID: &venueID,
		Role:    &role,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Set(ctx, persistence.KeyVenueStaff(venueID), staff)
	return staff, nil
}
