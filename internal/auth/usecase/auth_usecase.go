package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	authdomain "customers-backend/internal/auth/domain"
	authdto "customers-backend/internal/auth/dto"
	"customers-backend/internal/auth/repository"
	"customers-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// Every issued token lives exactly this long from issuance. No other
// lifetime is supported.
const tokenLifetime = 24 * time.Hour

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	customerRepo repository.CustomerRepository
	providerRepo repository.ProviderLinkRepository
	sessions     repository.SessionRecorder
	config       *config.Config
	logger       *slog.Logger
	now          func() time.Time
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(
	customerRepo repository.CustomerRepository,
	providerRepo repository.ProviderLinkRepository,
	sessions repository.SessionRecorder,
	cfg *config.Config,
	logger *slog.Logger,
) AuthUsecase {
	return &authUsecase{
		customerRepo: customerRepo,
		providerRepo: providerRepo,
		sessions:     sessions,
		config:       cfg,
		logger:       logger,
		now:          time.Now,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) error {
	if req.Email == "" || req.Password == "" {
		return authdomain.ErrInvalidInput
	}

	existing, err := u.customerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return authdomain.ErrConflict
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("%w: hash password: %v", authdomain.ErrUpstream, err)
	}

	customer := &authdomain.Customer{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	// The unique email index backs up the pre-check; a concurrent
	// duplicate insert comes back as ErrConflict.
	return u.customerRepo.Create(ctx, customer)
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, authdomain.ErrInvalidInput
	}

	customer, err := u.customerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password take the same path so the two
	// stay indistinguishable to the caller.
	if customer == nil || !repository.CheckPasswordHash(req.Password, customer.Password) {
		return nil, authdomain.ErrUnauthenticated
	}

	return u.issueToken(customer.ID, customer.Email)
}

func (u *authUsecase) GoogleAuth(ctx context.Context, req *authdto.GoogleAuthRequest) error {
	if req.ProviderAccountID == "" || req.Email == "" {
		return authdomain.ErrInvalidInput
	}

	link, err := u.providerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	customer, err := u.customerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	if link == nil {
		newLink := &authdomain.ProviderLink{
			Email:             req.Email,
			Name:              req.Name,
			Picture:           req.Picture,
			GivenName:         req.GivenName,
			FamilyName:        req.FamilyName,
			ProviderAccountID: req.ProviderAccountID,
		}
		// A concurrent handshake may have linked this email already;
		// the flow stays idempotent either way.
		if err := u.providerRepo.Create(ctx, newLink); err != nil && !errors.Is(err, authdomain.ErrConflict) {
			return err
		}
	}

	if customer == nil {
		newCustomer := &authdomain.Customer{
			Username: req.Name,
			Email:    req.Email,
			PersonalInfo: authdomain.PersonalInfo{
				FirstName:      req.GivenName,
				LastName:       req.FamilyName,
				ProfilePicture: req.Picture,
			},
		}
		if err := u.customerRepo.Create(ctx, newCustomer); err != nil && !errors.Is(err, authdomain.ErrConflict) {
			return err
		}
	}

	return nil
}

func (u *authUsecase) GoogleTokenAuth(ctx context.Context, req *authdto.GoogleTokenRequest) (*authdto.TokenResponse, error) {
	if req.AccessToken == "" || req.IDToken == "" || req.ProviderAccountID == "" {
		return nil, authdomain.ErrInvalidInput
	}

	link, err := u.providerRepo.FindByProviderAccountID(ctx, req.ProviderAccountID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, authdomain.ErrUnauthenticated
	}

	customer, err := u.customerRepo.FindByEmail(ctx, link.Email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, authdomain.ErrNotFound
	}

	token, err := u.issueToken(customer.ID, customer.Email)
	if err != nil {
		return nil, err
	}

	// Best-effort session record; a session-store outage must not fail
	// the login.
	if err := u.sessions.Record(ctx, customer.ID, token.AccessToken, "google"); err != nil {
		u.logger.Warn("session record failed", slog.String("customer_id", customer.ID), slog.Any("error", err))
	}

	return token, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, authorizationHeader string) (*authdomain.Customer, error) {
	tokenString, err := bearerToken(authorizationHeader)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(u.config.JWTSecretKey), nil
	}, jwt.WithValidMethods([]string{u.config.JWTAlgorithm}), jwt.WithTimeFunc(u.now))
	if err != nil || !token.Valid {
		return nil, authdomain.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, authdomain.ErrUnauthenticated
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, authdomain.ErrUnauthenticated
	}

	customer, err := u.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, authdomain.ErrNotFound
	}

	sanitized := customer.Sanitized()
	return &sanitized, nil
}

func (u *authUsecase) issueToken(customerID, email string) (*authdto.TokenResponse, error) {
	now := u.now()
	claims := jwt.MapClaims{
		"id":    customerID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.GetSigningMethod(u.config.JWTAlgorithm), claims)
	signed, err := token.SignedString([]byte(u.config.JWTSecretKey))
	if err != nil {
		return nil, fmt.Errorf("%w: sign token: %v", authdomain.ErrUpstream, err)
	}

	return &authdto.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
	}, nil
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", authdomain.ErrUnauthenticated
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", authdomain.ErrUnauthenticated
	}
	return parts[1], nil
}
