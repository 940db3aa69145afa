package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
)

func parseForTest(token string, claims jwt.Claims) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
}

type stubCredentialRepo struct {
	creds map[string]*domain.Credential // key: role + "|" + email
}

func newStubCredentialRepo() *stubCredentialRepo {
	return &stubCredentialRepo{creds: make(map[string]*domain.Credential)}
}

func (r *stubCredentialRepo) add(role, email, secret string) *domain.Credential {
	hash, _ := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	cred := &domain.Credential{
		ID:         "id-" + email,
		Email:      email,
		SecretHash: string(hash),
		Role:       role,
	}
	r.creds[role+"|"+email] = cred
	return cred
}

func (r *stubCredentialRepo) FindByEmail(_ context.Context, role, email string) (*domain.Credential, error) {
	cred, ok := r.creds[role+"|"+email]
	if !ok {
		return nil, domain.ErrCredentialNotFound
	}
	clone := *cred
	return &clone, nil
}

func newAuthService(repo *stubCredentialRepo) (*AuthService, *TokenService) {
	tokens := NewTokenService("test-secret", "24h", "30d", "30d")
	return NewAuthService(repo, tokens, zerolog.Nop()), tokens
}

func TestAuthService_LoginAdmin_Success(t *testing.T) {
	repo := newStubCredentialRepo()
	cred := repo.add(domain.RoleAdmin, "ana@trexgym.local", "Admin123!")
	svc, tokens := newAuthService(repo)

	result, err := svc.LoginAdmin(context.Background(), "ana@trexgym.local", "Admin123!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.TokenType != "Bearer" {
		t.Fatalf("expected Bearer, got %q", result.TokenType)
	}
	if result.User.ID != cred.ID || result.User.Email != cred.Email || result.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	got, err := tokens.Verify(result.AccessToken, domain.TokenKindAccess)
	if err != nil {
		t.Fatalf("access token invalid: %v", err)
	}
	if got.Role != domain.RoleAdmin || got.ID != cred.ID || got.Email != cred.Email {
		t.Fatalf("unexpected access identity: %+v", got)
	}
}

func TestAuthService_LoginAdmin_NormalizesEmail(t *testing.T) {
	repo := newStubCredentialRepo()
	repo.add(domain.RoleAdmin, "ana@trexgym.local", "Admin123!")
	svc, _ := newAuthService(repo)

	if _, err := svc.LoginAdmin(context.Background(), "Ana@TrexGym.Local", "Admin123!"); err != nil {
		t.Fatalf("expected mixed-case email to authenticate, got %v", err)
	}
}

func TestAuthService_Login_InvalidIndistinguishable(t *testing.T) {
	repo := newStubCredentialRepo()
	repo.add(domain.RoleAdmin, "ana@trexgym.local", "Admin123!")
	repo.add(domain.RoleClient, "vlad@sample.local", "123456")
	svc, _ := newAuthService(repo)

	ctx := context.Background()

	_, wrongSecret := svc.LoginAdmin(ctx, "ana@trexgym.local", "not-the-password")
	_, unknownUser := svc.LoginAdmin(ctx, "ghost@trexgym.local", "Admin123!")
	if wrongSecret != domain.ErrInvalidCredentials || unknownUser != domain.ErrInvalidCredentials {
		t.Fatalf("expected identical ErrInvalidCredentials, got %v / %v", wrongSecret, unknownUser)
	}

	_, wrongPin := svc.LoginClient(ctx, "vlad@sample.local", "000000")
	_, unknownClient := svc.LoginClient(ctx, "ghost@sample.local", "123456")
	if wrongPin != domain.ErrInvalidCredentials || unknownClient != domain.ErrInvalidCredentials {
		t.Fatalf("expected identical ErrInvalidCredentials, got %v / %v", wrongPin, unknownClient)
	}
}

func TestAuthService_AdminCannotUseClientLogin(t *testing.T) {
	repo := newStubCredentialRepo()
	repo.add(domain.RoleAdmin, "ana@trexgym.local", "Admin123!")
	svc, _ := newAuthService(repo)

	if _, err := svc.LoginClient(context.Background(), "ana@trexgym.local", "Admin123!"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginClient_Success(t *testing.T) {
	repo := newStubCredentialRepo()
	cred := repo.add(domain.RoleClient, "vlad@sample.local", "482915")
	svc, tokens := newAuthService(repo)

	result, err := svc.LoginClient(context.Background(), "vlad@sample.local", "482915")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	got, err := tokens.Verify(result.AccessToken, domain.TokenKindAccess)
	if err != nil {
		t.Fatalf("access token invalid: %v", err)
	}
	if got.Role != domain.RoleClient || got.ID != cred.ID {
		t.Fatalf("unexpected identity: %+v", got)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	repo := newStubCredentialRepo()
	repo.add(domain.RoleClient, "vlad@sample.local", "482915")
	svc, tokens := newAuthService(repo)

	login, err := svc.LoginClient(context.Background(), "vlad@sample.local", "482915")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	pair, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	got, err := tokens.Verify(pair.AccessToken, domain.TokenKindAccess)
	if err != nil {
		t.Fatalf("reissued access token invalid: %v", err)
	}
	if got.Role != domain.RoleClient || got.Email != "vlad@sample.local" {
		t.Fatalf("unexpected identity: %+v", got)
	}

	// The reissued access token must carry the client expiry class (30d),
	// not the admin one.
	claims := &tokenClaims{}
	if _, err := parseForTest(pair.AccessToken, claims); err != nil {
		t.Fatalf("parse claims: %v", err)
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != 30*24*time.Hour {
		t.Fatalf("expected 30d client access expiry, got %v", ttl)
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	repo := newStubCredentialRepo()
	repo.add(domain.RoleAdmin, "ana@trexgym.local", "Admin123!")
	svc, _ := newAuthService(repo)

	login, err := svc.LoginAdmin(context.Background(), "ana@trexgym.local", "Admin123!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), login.AccessToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for access token at refresh, got %v", err)
	}
}

func TestAuthService_Refresh_Garbage(t *testing.T) {
	svc, _ := newAuthService(newStubCredentialRepo())
	if _, err := svc.Refresh(context.Background(), "garbage"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
