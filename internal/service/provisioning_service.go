package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/venue-service/internal/domain"
	"github.com/spec-kit/venue-service/internal/events"
	"github.com/spec-kit/venue-service/internal/identity"
	"github.com/spec-kit/venue-service/internal/persistence"
	"github.com/spec-kit/venue-service/internal/repository"
	apperrors "github.com/spec-kit/venue-service/pkg/util"
)

// ProvisioningService runs the privileged staff account workflows: create
// (admin and manager variants), delete, disable.
//
// Account creation and the profile write hit two independently failing
// systems. The flow is sequential with a best-effort compensating delete,
// not a transaction: a crash between the two steps can leave an orphan
// account, and no reconciliation job exists to find one.
type ProvisioningService struct {
	accounts   identity.Store
	profiles   repository.ProfileRepository
	cache      *persistence.EntityCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ProvisioningDependencies bundles collaborator requirements.
type ProvisioningDependencies struct {
	IdentityStore identity.Store
	ProfileRepo   repository.ProfileRepository
	Cache         *persistence.EntityCache
	Dispatcher    events.Dispatcher
	Logger        *zap.Logger
}

// NewProvisioningService constructs the service.
func NewProvisioningService(deps ProvisioningDependencies) *ProvisioningService {
	return &ProvisioningService{
		accounts:   deps.IdentityStore,
		profiles:   deps.ProfileRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// CreateStaffInput carries the provisioning form fields.
type CreateStaffInput struct {
	Email       string
	Password    string
	Role        domain.Role
	VenueID     string
	FullName    *string
	PhoneNumber *string
}

// CreateStaffResult is returned on success.
type CreateStaffResult struct {
	AccountID string
	Profile   *domain.Profile
}

func (in CreateStaffInput) validate() error {
	if in.Email == "" || in.Password == "" || in.Role == "" || in.VenueID == "" {
		return apperrors.NewValidationError(
			"Missing required fields (email, password, role, venueId).", nil)
	}
	if in.Role != domain.RoleManager && in.Role != domain.RoleBartender {
		return apperrors.NewValidationError("Invalid role specified.", nil)
	}
	return nil
}

// CreateStaff is the admin entry point: creates an identity-store account
// (pre-confirmed, no verification round trip) and writes role/venue fields
// onto the profile row that came into existence with it. If the profile
// write fails, the account is deleted best-effort and the profile error is
// reported; a failed cleanup never masks it.
func (s *ProvisioningService) CreateStaff(ctx context.Context, actor *domain.Profile, in CreateStaffInput) (*CreateStaffResult, error) {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return nil, apperrors.NewNotAuthorized("admin role required")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	account, err := s.accounts.CreateAccount(ctx, identity.NewAccount{
		Email:     in.Email,
		Password:  in.Password,
		Confirmed: true,
	})
	if err != nil {
		return nil, apperrors.NewIdentityCreationFailed(err)
	}
	s.logger.Info("account created", zap.String("account_id", account.ID))

	profile, profileErr := s.profiles.Provision(ctx, account.ID, repository.ProfileWrite{
		Role:        in.Role,
		VenueID:     &in.VenueID,
		FullName:    in.FullName,
		PhoneNumber: in.PhoneNumber,
	})
	if profileErr != nil {
		details := s.compensate(ctx, account.ID)
		return nil, apperrors.NewProfileWriteFailed(profileErr, details)
	}

	s.cache.Invalidate(ctx, persistence.KeyVenueStaff(in.VenueID))
	s.publish(ctx, actor, events.EventStaffProvisioned, account.ID, events.StaffProvisionedPayload{
		Email:   in.Email,
		Role:    in.Role,
		VenueID: in.VenueID,
	})
	return &CreateStaffResult{AccountID: account.ID, Profile: profile}, nil
}

// CreateBartender is the manager entry point: the caller must manage the
// target venue and the role is fixed to bartender. Unlike the admin path, a
// failing profile write here is logged but not fatal: the blank profile row
// created with the account is still usable.
func (s *ProvisioningService) CreateBartender(ctx context.Context, actor *domain.Profile, in CreateStaffInput) (*CreateStaffResult, error) {
	if in.Role == "" {
		in.Role = domain.RoleBartender
	}
	if in.Role != domain.RoleBartender {
		return nil, apperrors.NewValidationError("Invalid role: only bartender is allowed", nil)
	}
	if actor == nil || actor.Role != domain.RoleManager ||
		actor.VenueID == nil || *actor.VenueID != in.VenueID {
		return nil, apperrors.NewNotAuthorized("Not authorized: must be manager of the specified venue")
	}
	if in.Email == "" || in.Password == "" || in.VenueID == "" {
		return nil, apperrors.NewValidationError(
			"Missing required fields: email, password, and venue_id are required", nil)
	}

	account, err := s.accounts.CreateAccount(ctx, identity.NewAccount{
		Email:     in.Email,
		Password:  in.Password,
		Confirmed: true,
	})
	if err != nil {
		return nil, apperrors.NewIdentityCreationFailed(err)
	}

	profile, profileErr := s.profiles.Provision(ctx, account.ID, repository.ProfileWrite{
		Role:        domain.RoleBartender,
		VenueID:     &in.VenueID,
		FullName:    in.FullName,
		PhoneNumber: in.PhoneNumber,
	})
	if profileErr != nil {
		s.logger.Error("profile update failed after bartender account creation",
			zap.String("account_id", account.ID), zap.Error(profileErr))
		profile = &domain.Profile{
			ID:          account.ID,
			VenueID:     &in.VenueID,
			Role:        domain.RoleBartender,
			FullName:    in.FullName,
			PhoneNumber: in.PhoneNumber,
		}
	}

	s.cache.Invalidate(ctx, persistence.KeyVenueStaff(in.VenueID))
	s.publish(ctx, actor, events.EventStaffProvisioned, account.ID, events.StaffProvisionedPayload{
		Email:   in.Email,
		Role:    domain.RoleBartender,
		VenueID: in.VenueID,
	})
	return &CreateStaffResult{AccountID: account.ID, Profile: profile}, nil
}

// DeleteStaff removes the account; the dependent profile row goes with it
// via the store's cascade. No self-deletion or role-hierarchy checks here;
// callers gate access upstream.
func (s *ProvisioningService) DeleteStaff(ctx context.Context, actor *domain.Profile, accountID string) error {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return apperrors.NewNotAuthorized("admin role required")
	}
	if accountID == "" {
		return apperrors.NewValidationError("Missing userId.", nil)
	}

	var venueID string
	if profile, err := s.profiles.GetByID(ctx, accountID); err == nil && profile.VenueID != nil {
		venueID = *profile.VenueID
	}

	if err := s.accounts.DeleteAccount(ctx, accountID); err != nil {
		return apperrors.MapError(err)
	}

	if venueID != "" {
		s.cache.Invalidate(ctx, persistence.KeyVenueStaff(venueID))
	}
	s.publish(ctx, actor, events.EventStaffDeprovisioned, accountID, events.StaffDeprovisionedPayload{
		AccountID: accountID,
	})
	return nil
}

// DisableStaff is manager-scoped: the target must exist, share the caller's
// venue, and be a bartender (managers cannot disable other managers).
func (s *ProvisioningService) DisableStaff(ctx context.Context, actor *domain.Profile, accountID string) error {
	if actor == nil || actor.Role != domain.RoleManager {
		return apperrors.NewNotAuthorized("Not authorized: must be a manager")
	}
	if accountID == "" {
		return apperrors.NewValidationError("Missing required field: userId", nil)
	}

	target, err := s.profiles.GetByID(ctx, accountID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewProfileNotFound(accountID)
		}
		return apperrors.MapError(err)
	}
	if target.VenueID == nil || actor.VenueID == nil || *target.VenueID != *actor.VenueID {
		return apperrors.NewNotAuthorized("Not authorized: can only disable staff from your venue")
	}
	if target.Role != domain.RoleBartender {
		return apperrors.NewNotAuthorized("Not authorized: can only disable bartenders")
	}

	if err := s.accounts.SetDisabled(ctx, accountID, true); err != nil {
		return apperrors.MapError(err)
	}

	s.cache.Invalidate(ctx, persistence.KeyVenueStaff(*target.VenueID))
	s.publish(ctx, actor, events.EventStaffDisabled, accountID, events.StaffDisabledPayload{
		AccountID: accountID,
		VenueID:   *target.VenueID,
	})
	return nil
}

// compensate deletes the just-created account after a failed profile write.
// Exactly one delete attempt, no retries. Returns details describing the
// outcome for the error surface.
func (s *ProvisioningService) compensate(ctx context.Context, accountID string) map[string]any {
	if err := s.accounts.DeleteAccount(ctx, accountID); err != nil {
		s.logger.Error("compensating account delete failed",
			zap.String("account_id", accountID), zap.Error(err))
		return map[string]any{
			"compensation": "COMPENSATION_FAILED",
			"account_id":   accountID,
		}
	}
	s.logger.Info("cleaned up account after profile update error",
		zap.String("account_id", accountID))
	return map[string]any{"compensation": "account_deleted"}
}

func (s *ProvisioningService) publish(ctx context.Context, actor *domain.Profile, typ events.EventType, accountID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      typ,
		AccountID: accountID,
		Actor:     events.Actor{AccountID: actor.ID, Role: actor.Role},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
