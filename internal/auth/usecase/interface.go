package usecase

import (
	"context"

	authdomain "customers-backend/internal/auth/domain"
	authdto "customers-backend/internal/auth/dto"
)

// AuthUsecase orchestrates registration, password login, federated
// Google login and current-user resolution. Failures are reported as
// the error kinds in internal/auth/domain; the delivery layer owns the
// translation to wire messages.
type AuthUsecase interface {
	Register(ctx context.Context, req *authdto.RegisterRequest) error
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	GoogleAuth(ctx context.Context, req *authdto.GoogleAuthRequest) error
	GoogleTokenAuth(ctx context.Context, req *authdto.GoogleTokenRequest) (*authdto.TokenResponse, error)
	CurrentUser(ctx context.Context, authorizationHeader string) (*authdomain.Customer, error)
}
