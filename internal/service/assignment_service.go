package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/venue-service/internal/domain"
	"github.com/spec-kit/venue-service/internal/events"
	"github.com/spec-kit/venue-service/internal/persistence"
	"github.com/spec-kit/venue-service/internal/repository"
	apperrors "github.com/spec-kit/venue-service/pkg/util"
)

// AssignmentService sets a venue's manager of record.
type AssignmentService struct {
	profiles   repository.ProfileRepository
	venues     repository.VenueRepository
	cache      *persistence.EntityCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AssignmentDependencies bundles collaborator requirements.
type AssignmentDependencies struct {
	ProfileRepo repository.ProfileRepository
	VenueRepo   repository.VenueRepository
	Cache       *persistence.EntityCache
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewAssignmentService constructs the service.
func NewAssignmentService(deps AssignmentDependencies) *AssignmentService {
	return &AssignmentService{
		profiles:   deps.ProfileRepo,
		venues:     deps.VenueRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// AssignManager promotes the account's profile to manager of venueID, then
// points the venue back at it. Two dependent writes, deliberately without
// compensation: if the venue write fails the profile keeps its new role and
// venue while the venue still names the old manager. Nothing stops an
// account from ending up manager of record for several venues.
func (s *AssignmentService) AssignManager(ctx context.Context, actor *domain.Profile, venueID, accountID string) error {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return apperrors.NewNotAuthorized("admin role required")
	}
	if venueID == "" || accountID == "" {
		return apperrors.NewValidationError("Missing venueId or managerUserId.", nil)
	}

	if _, err := s.profiles.GetByID(ctx, accountID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewProfileNotFound(accountID)
		}
		return apperrors.MapError(err)
	}

	if err := s.profiles.SetManagerOf(ctx, accountID, venueID); err != nil {
		return apperrors.MapError(err)
	}
	s.logger.Info("profile updated to manager",
		zap.String("account_id", accountID), zap.String("venue_id", venueID))

	if err := s.venues.SetManager(ctx, venueID, accountID); err != nil {
		// Profile already points at the venue; the venue does not point
		// back. Known inconsistent intermediate state, surfaced as-is.
		s.logger.Error("venue manager update failed after profile write",
			zap.String("venue_id", venueID), zap.String("account_id", accountID), zap.Error(err))
		return apperrors.MapError(err)
	}

	s.cache.Invalidate(ctx,
		persistence.KeyVenues(),
		persistence.KeyVenueStaff(venueID),
	)
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventManagerAssigned,
			AccountID: accountID,
			Actor:     events.Actor{AccountID: actor.ID, Role: actor.Role},
			Timestamp: time.Now(),
			Payload:   events.ManagerAssignedPayload{VenueID: venueID, ManagerID: accountID},
		})
	}
	return nil
}
