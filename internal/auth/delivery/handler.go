package delivery

import (
	"errors"
	"log/slog"
	"net/http"

	authdomain "customers-backend/internal/auth/domain"
	authdto "customers-backend/internal/auth/dto"
	"customers-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// Wire messages. Fixed for backward compatibility with existing clients:
// failures are distinguished by message text, not HTTP status.
const (
	msgRegistrationSuccessful = "Registration successful"
	msgEmailAlreadyRegistered = "Email already registered"
	msgInvalidCredentials     = "Invalid email and/or password"
	msgLoginSuccessful        = "Login successful"
	msgGoogleSuccessful       = "Google authentication successful"
	msgInvalidGoogleAuth      = "Invalid Google authentication"
	msgUserDetails            = "User details"
	msgUserNotFound           = "User not found"
)

// AuthHandler exposes the auth usecase over HTTP. Every response is the
// uniform {data, message} envelope with status 200; the process-internal
// error kind is logged but never leaks to the wire.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	logger      *slog.Logger
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, authdto.Failure(msgInvalidCredentials))
		return
	}

	err := h.authUsecase.Register(c.Request.Context(), &req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, authdto.Success(authdto.RegisterResponse{OK: true}, msgRegistrationSuccessful))
	case errors.Is(err, authdomain.ErrConflict):
		c.JSON(http.StatusOK, authdto.Failure(msgEmailAlreadyRegistered))
	default:
		h.logFailure(c, err, req.Email)
		c.JSON(http.StatusOK, authdto.Failure(msgInvalidCredentials))
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, authdto.Failure(msgInvalidCredentials))
		return
	}

	token, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		h.logFailure(c, err, req.Email)
		c.JSON(http.StatusOK, authdto.Failure(msgInvalidCredentials))
		return
	}

	c.JSON(http.StatusOK, authdto.Success(token, msgLoginSuccessful))
}

func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	var req authdto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, authdto.Failure(msgInvalidGoogleAuth))
		return
	}

	if err := h.authUsecase.GoogleAuth(c.Request.Context(), &req); err != nil {
		h.logFailure(c, err, req.Email)
		c.JSON(http.StatusOK, authdto.Failure(msgInvalidGoogleAuth))
		return
	}

	c.JSON(http.StatusOK, authdto.Success(authdto.RegisterResponse{OK: true}, msgGoogleSuccessful))
}

func (h *AuthHandler) GoogleTokenAuth(c *gin.Context) {
	var req authdto.GoogleTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, authdto.Failure(msgInvalidGoogleAuth))
		return
	}

	token, err := h.authUsecase.GoogleTokenAuth(c.Request.Context(), &req)
	if err != nil {
		h.logFailure(c, err, req.ProviderAccountID)
		c.JSON(http.StatusOK, authdto.Failure(msgInvalidGoogleAuth))
		return
	}

	c.JSON(http.StatusOK, authdto.Success(token, msgLoginSuccessful))
}

// Me returns the customer resolved by CurrentUserMiddleware, or the
// soft not-found envelope when resolution failed.
func (h *AuthHandler) Me(c *gin.Context) {
	customer := CurrentCustomer(c)
	if customer == nil {
		c.JSON(http.StatusOK, authdto.Failure(msgUserNotFound))
		return
	}

	c.JSON(http.StatusOK, authdto.Success(customer, msgUserDetails))
}

func (h *AuthHandler) logFailure(c *gin.Context, err error, subject string) {
	attrs := []any{
		slog.String("subject", subject),
		slog.String("path", c.Request.URL.Path),
	}
	if errors.Is(err, authdomain.ErrUpstream) {
		h.logger.Error("auth request failed", append(attrs, slog.Any("error", err))...)
		return
	}
	h.logger.Info("auth request rejected", append(attrs, slog.Any("error", err))...)
}
