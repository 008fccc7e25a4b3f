package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/venue-service/internal/auth"
	"github.com/spec-kit/venue-service/internal/config"
	"github.com/spec-kit/venue-service/internal/domain"
	"github.com/spec-kit/venue-service/internal/identity"
	"github.com/spec-kit/venue-service/internal/repository"
)

// AuthService coordinates login and session introspection.
type AuthService struct {
	accounts identity.Store
	profiles repository.ProfileRepository
	tokenMgr *auth.TokenManager
}

// AuthDependencies encapsulates collaborator requirements.
type AuthDependencies struct {
	IdentityStore identity.Store
	ProfileRepo   repository.ProfileRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		accounts: deps.IdentityStore,
		profiles: deps.ProfileRepo,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// Login authenticates against the identity store and issues a role-bearing
// token from the account's profile.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Account, *domain.Profile, string, time.Time, error) {
	account, err := s.accounts.VerifyPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, nil, "", time.Time{}, errors.New("invalid credentials")
		}
		return nil, nil, "", time.Time{}, err
	}

	profile, err := s.profiles.GetByID(ctx, account.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, "", time.Time{}, errors.New("profile not found for account")
		}
		return nil, nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(account.ID, profile.Role)
	if err != nil {
		return nil, nil, "", time.Time{}, err
	}
	return account, profile, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
