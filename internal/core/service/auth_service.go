package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
	"github.com/cjalex1313/trex-gym/internal/core/ports"
)

// AuthService implements the two login flows and the stateless refresh flow.
// Admin and client login are the same flow parameterized by role; the
// credential repository hides which collection and hash field back each role.
type AuthService struct {
	creds  ports.CredentialRepository
	tokens *TokenService
	logger zerolog.Logger
}

func NewAuthService(creds ports.CredentialRepository, tokens *TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{creds: creds, tokens: tokens, logger: logger}
}

// LoginAdmin authenticates a back-office operator by email and password.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.login(ctx, domain.RoleAdmin, email, password)
}

// LoginClient authenticates a gym member by email and PIN.
func (s *AuthService) LoginClient(ctx context.Context, email, pin string) (*ports.AuthResult, error) {
	return s.login(ctx, domain.RoleClient, email, pin)
}

func (s *AuthService) login(ctx context.Context, role, email, secret string) (*ports.AuthResult, error) {
	if email == "" || secret == "" {
		return nil, domain.ErrInvalidCredentials
	}

	cred, err := s.creds.FindByEmail(ctx, role, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			// Unknown email and wrong secret must be indistinguishable.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.SecretHash), []byte(secret)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user := domain.AuthenticatedUser{ID: cred.ID, Email: cred.Email, Role: role}

	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		s.logger.Error().Err(err).Str("role", role).Msg("failed to sign token pair")
		return nil, err
	}

	s.logger.Info().Str("role", role).Str("user_id", user.ID).Msg("login succeeded")

	return &ports.AuthResult{User: user, TokenPair: *pair}, nil
}

// Refresh verifies a refresh token and reissues a fresh pair for the identity
// it carries, using the access expiry appropriate to that identity's role.
// Old refresh tokens stay valid until their natural expiry; there is no
// rotation or revocation store.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	user, err := s.tokens.Verify(refreshToken, domain.TokenKindRefresh)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	pair, err := s.tokens.IssuePair(*user)
	if err != nil {
		s.logger.Error().Err(err).Str("role", user.Role).Msg("failed to sign token pair")
		return nil, err
	}

	s.logger.Info().Str("role", user.Role).Str("user_id", user.ID).Msg("token pair refreshed")

	return pair, nil
}
