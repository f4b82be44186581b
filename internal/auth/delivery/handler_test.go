package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	authdomain "customers-backend/internal/auth/domain"
	authdto "customers-backend/internal/auth/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	registerErr    error
	loginToken     *authdto.TokenResponse
	loginErr       error
	googleErr      error
	googleToken    *authdto.TokenResponse
	googleTokenErr error
	currentUser    *authdomain.Customer
	currentErr     error
}

func (s *stubAuthUsecase) Register(context.Context, *authdto.RegisterRequest) error {
	return s.registerErr
}

func (s *stubAuthUsecase) Login(context.Context, *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	return s.loginToken, s.loginErr
}

func (s *stubAuthUsecase) GoogleAuth(context.Context, *authdto.GoogleAuthRequest) error {
	return s.googleErr
}

func (s *stubAuthUsecase) GoogleTokenAuth(context.Context, *authdto.GoogleTokenRequest) (*authdto.TokenResponse, error) {
	return s.googleToken, s.googleTokenErr
}

func (s *stubAuthUsecase) CurrentUser(context.Context, string) (*authdomain.Customer, error) {
	return s.currentUser, s.currentErr
}

func newTestRouter(stub *stubAuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewAuthHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)
	r.POST("/google", handler.GoogleAuth)
	r.POST("/google/token", handler.GoogleTokenAuth)
	r.GET("/user", CurrentUserMiddleware(stub), handler.Me)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, header map[string]string) (int, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if body != "" {
		reqBody = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w.Code, envelope
}

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("success envelope", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{})
		code, env := doJSON(t, r, http.MethodPost, "/register", `{"username":"alice","email":"a@x.com","password":"p1"}`, nil)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, msgRegistrationSuccessful, env["message"])
		assert.Equal(t, map[string]any{"ok": true}, env["data"])
	})

	t.Run("duplicate email keeps status 200", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{registerErr: authdomain.ErrConflict})
		code, env := doJSON(t, r, http.MethodPost, "/register", `{"username":"alice","email":"a@x.com","password":"p1"}`, nil)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, msgEmailAlreadyRegistered, env["message"])
		assert.Equal(t, []any{}, env["data"])
	})

	t.Run("upstream fault collapses to the generic message", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{registerErr: authdomain.ErrUpstream})
		code, env := doJSON(t, r, http.MethodPost, "/register", `{"username":"alice","email":"a@x.com","password":"p1"}`, nil)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, msgInvalidCredentials, env["message"])
		assert.Equal(t, []any{}, env["data"])
	})

	t.Run("malformed body", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{})
		code, env := doJSON(t, r, http.MethodPost, "/register", `{not json`, nil)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, msgInvalidCredentials, env["message"])
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("success returns the bearer token", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{
			loginToken: &authdto.TokenResponse{AccessToken: "tok123", TokenType: "bearer"},
		})
		code, env := doJSON(t, r, http.MethodPost, "/login", `{"email":"a@x.com","password":"p1"}`, nil)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, msgLoginSuccessful, env["message"])
		assert.Equal(t, map[string]any{"access_token": "tok123", "token_type": "bearer"}, env["data"])
	})

	t.Run("every failure kind yields the same envelope", func(t *testing.T) {
		for _, loginErr := range []error{
			authdomain.ErrInvalidInput,
			authdomain.ErrUnauthenticated,
			authdomain.ErrUpstream,
		} {
			r := newTestRouter(&stubAuthUsecase{loginErr: loginErr})
			code, env := doJSON(t, r, http.MethodPost, "/login", `{"email":"a@x.com","password":"p1"}`, nil)

			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, msgInvalidCredentials, env["message"])
			assert.Equal(t, []any{}, env["data"])
		}
	})
}

func TestGoogleEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("handshake success", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{})
		code, env := doJSON(t, r, http.MethodPost, "/google", `{"email":"g@x.com","providerAccountId":"google-123"}`, nil)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, msgGoogleSuccessful, env["message"])
		assert.Equal(t, map[string]any{"ok": true}, env["data"])
	})

	t.Run("handshake failure", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{googleErr: authdomain.ErrInvalidInput})
		code, env := doJSON(t, r, http.MethodPost, "/google", `{"email":"g@x.com"}`, nil)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, msgInvalidGoogleAuth, env["message"])
		assert.Equal(t, []any{}, env["data"])
	})

	t.Run("token exchange success", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{
			googleToken: &authdto.TokenResponse{AccessToken: "tok456", TokenType: "bearer"},
		})
		code, env := doJSON(t, r, http.MethodPost, "/google/token", `{"access_token":"at","id_token":"idt","providerAccountId":"google-123"}`, nil)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, msgLoginSuccessful, env["message"])
		assert.Equal(t, map[string]any{"access_token": "tok456", "token_type": "bearer"}, env["data"])
	})

	t.Run("token exchange with unknown account", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{googleTokenErr: authdomain.ErrUnauthenticated})
		code, env := doJSON(t, r, http.MethodPost, "/google/token", `{"access_token":"at","id_token":"idt","providerAccountId":"nope"}`, nil)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, msgInvalidGoogleAuth, env["message"])
		assert.Equal(t, []any{}, env["data"])
	})
}

func TestUserEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("no valid token", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{currentErr: authdomain.ErrUnauthenticated})
		code, env := doJSON(t, r, http.MethodGet, "/user", "", nil)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, msgUserNotFound, env["message"])
		assert.Equal(t, []any{}, env["data"])
	})

	t.Run("resolved customer without credential field", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{
			currentUser: &authdomain.Customer{
				ID:       "id-1",
				Username: "alice",
				Email:    "a@x.com",
			},
		})
		code, env := doJSON(t, r, http.MethodGet, "/user", "", map[string]string{"Authorization": "Bearer tok"})

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, msgUserDetails, env["message"])

		data, ok := env["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "id-1", data["_id"])
		assert.Equal(t, "alice", data["username"])
		assert.NotContains(t, data, "password")
	})
}
