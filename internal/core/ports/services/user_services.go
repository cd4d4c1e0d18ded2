package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/opslane/erp_backend/internal/core/domain"
	"github.com/opslane/erp_backend/internal/dto"
)

// UserSvcFacade defines user management and credential checking.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Authenticate verifies identifier (email or name) + password and
	// returns the user on success.
	Authenticate(ctx context.Context, identifier, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	// UpsertSeedUser creates or overwrites a test user by email. Mounted
	// only outside production.
	UpsertSeedUser(ctx context.Context, req dto.SeedUserRequest) (*domain.User, error)
	// CreateOAuthUser finds or creates a user for an external identity.
	CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider) (*domain.User, error)
}

// TokenSvcFacade defines access-token generation.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade defines the Google sign-in operations.
type GoogleOAuthSvcFacade interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
