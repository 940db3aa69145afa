package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
	"github.com/cjalex1313/trex-gym/internal/core/ports"
)

type stubAuthService struct {
	loginAdminFn  func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	loginClientFn func(ctx context.Context, email, pin string) (*ports.AuthResult, error)
	refreshFn     func(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
}

func (s *stubAuthService) LoginAdmin(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginAdminFn(ctx, email, password)
}

func (s *stubAuthService) LoginClient(ctx context.Context, email, pin string) (*ports.AuthResult, error) {
	return s.loginClientFn(ctx, email, pin)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	return s.refreshFn(ctx, refreshToken)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_LoginAdmin_Success(t *testing.T) {
	stub := &stubAuthService{
		loginAdminFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "boss@gym.ro" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.AuthResult{
				User: domain.AuthenticatedUser{ID: "a1", Email: email, Role: domain.RoleAdmin},
				TokenPair: domain.TokenPair{
					AccessToken:  "access123",
					RefreshToken: "refresh123",
					TokenType:    "Bearer",
				},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/admin/login", `{"email":"boss@gym.ro","password":"secret1"}`)
	if err := handler.LoginAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["accessToken"] != "access123" || resp["refreshToken"] != "refresh123" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "boss@gym.ro" || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_LoginAdmin_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginAdminFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/admin/login", `{"email":"boss@gym.ro","password":"wrong12"}`)
	err := handler.LoginAdmin(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_LoginAdmin_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginAdminFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/admin/login", "not-json")
	err := handler.LoginAdmin(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_LoginAdmin_ShortPassword(t *testing.T) {
	stub := &stubAuthService{
		loginAdminFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/admin/login", `{"email":"boss@gym.ro","password":"abc"}`)
	err := handler.LoginAdmin(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_LoginClient_Success(t *testing.T) {
	stub := &stubAuthService{
		loginClientFn: func(ctx context.Context, email, pin string) (*ports.AuthResult, error) {
			if email != "member@gym.ro" || pin != "123456" {
				t.Fatalf("unexpected args: %s %s", email, pin)
			}
			return &ports.AuthResult{
				User:      domain.AuthenticatedUser{ID: "c1", Email: email, Role: domain.RoleClient},
				TokenPair: domain.TokenPair{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer"},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/client/login", `{"email":"member@gym.ro","pin":"123456"}`)
	if err := handler.LoginClient(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_LoginClient_PinMustBeSixDigits(t *testing.T) {
	stub := &stubAuthService{
		loginClientFn: func(ctx context.Context, email, pin string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	for _, pin := range []string{"12345", "1234567", "12345a"} {
		c, _ := newTestContext(t, http.MethodPost, "/auth/client/login", `{"email":"member@gym.ro","pin":"`+pin+`"}`)
		err := handler.LoginClient(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("pin %q: expected 400, got %v", pin, err)
		}
	}
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
			if refreshToken != "refresh123" {
				t.Fatalf("unexpected token: %s", refreshToken)
			}
			return &domain.TokenPair{AccessToken: "newAccess", RefreshToken: "newRefresh", TokenType: "Bearer"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/refresh", `{"refreshToken":"refresh123"}`)
	if err := handler.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["accessToken"] != "newAccess" || resp["refreshToken"] != "newRefresh" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
			return nil, domain.ErrInvalidToken
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/refresh", `{"refreshToken":"garbage"}`)
	err := handler.Refresh(c)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(t, http.MethodGet, "/me", "")
	c.Set("user_id", "u1")
	c.Set("email", "boss@gym.ro")
	c.Set("role", domain.RoleAdmin)

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "u1" || resp["email"] != "boss@gym.ro" || resp["role"] != "admin" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Me_NoClaims(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodGet, "/me", "")
	err := handler.Me(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
