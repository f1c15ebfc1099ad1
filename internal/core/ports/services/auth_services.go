package services

import (
	"context"
	"time"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAccessToken parses a token string and returns the user ID it
	// was issued for.
	ValidateAccessToken(ctx context.Context, tokenString string) (string, error)
}
