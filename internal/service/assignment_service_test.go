package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/venue-service/internal/domain"
	"github.com/spec-kit/venue-service/internal/events"
	apperrors "github.com/spec-kit/venue-service/pkg/util"
)

func newAssignmentFixture() (*AssignmentService, *fakeProfileRepo, *fakeVenueRepo, *recordingDispatcher) {
	profiles := newFakeProfileRepo()
	venues := newFakeVenueRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewAssignmentService(AssignmentDependencies{
		ProfileRepo: profiles,
		VenueRepo:   venues,
		Dispatcher:  dispatcher,
		Logger:      zap.NewNop(),
	})
	return svc, profiles, venues, dispatcher
}

func TestAssignManagerRequiresAdmin(t *testing.T) {
	svc, _, venues, _ := newAssignmentFixture()

	err := svc.AssignManager(context.Background(), managerActor("venue-1"), "venue-1", "acc-2")
	require.Error(t, err)
	assert.Equal(t, "NOT_AUTHORIZED", apperrors.ToDomainError(err).Code)
	assert.Empty(t, venues.setManagerCalls)
}

func TestAssignManagerMissingProfileWritesNothing(t *testing.T) {
	svc, _, venues, _ := newAssignmentFixture()
	venues.venues["venue-1"] = &domain.Venue{ID: "venue-1", Name: "Taproom"}

	err := svc.AssignManager(context.Background(), adminActor(), "venue-1", "acc-missing")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "PROFILE_NOT_FOUND", domainErr.Code)
	assert.Contains(t, domainErr.Message, "acc-missing")
	assert.Empty(t, venues.setManagerCalls, "the venue must be untouched when the profile check fails")
	assert.Nil(t, venues.venues["venue-1"].ManagerID)
}

func TestAssignManagerSuccess(t *testing.T) {
	svc, profiles, venues, dispatcher := newAssignmentFixture()
	venues.venues["venue-1"] = &domain.Venue{ID: "venue-1", Name: "Taproom"}
	profiles.profiles["acc-2"] = &domain.Profile{ID: "acc-2", Role: domain.RoleBartender}

	err := svc.AssignManager(context.Background(), adminActor(), "venue-1", "acc-2")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleManager, profiles.profiles["acc-2"].Role)
	require.NotNil(t, profiles.profiles["acc-2"].VenueID)
	assert.Equal(t, "venue-1", *profiles.profiles["acc-2"].VenueID)

	require.NotNil(t, venues.venues["venue-1"].ManagerID)
	assert.Equal(t, "acc-2", *venues.venues["venue-1"].ManagerID)
	assert.Len(t, dispatcher.published(events.EventManagerAssigned), 1)
}

func TestAssignManagerVenueWriteFailureLeavesProfilePromoted(t *testing.T) {
	svc, profiles, venues, dispatcher := newAssignmentFixture()
	venues.venues["venue-1"] = &domain.Venue{ID: "venue-1", Name: "Taproom"}
	profiles.profiles["acc-2"] = &domain.Profile{ID: "acc-2", Role: domain.RoleBartender}
	venues.setManagerErr = errors.New("venue write refused")

	err := svc.AssignManager(context.Background(), adminActor(), "venue-1", "acc-2")
	require.Error(t, err)

	// No compensation: the profile keeps the new role and venue even though
	// the venue never got its manager pointer.
	assert.Equal(t, domain.RoleManager, profiles.profiles["acc-2"].Role)
	assert.Nil(t, venues.venues["venue-1"].ManagerID)
	assert.Empty(t, dispatcher.events)
}

func TestAssignManagerValidation(t *testing.T) {
	svc, _, _, _ := newAssignmentFixture()

	err := svc.AssignManager(context.Background(), adminActor(), "", "acc-2")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	err = svc.AssignManager(context.Background(), adminActor(), "venue-1", "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}
