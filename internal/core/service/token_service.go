package service

import (
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
)

const (
	defaultAdminAccessTTL  = 24 * time.Hour
	defaultClientAccessTTL = 30 * 24 * time.Hour
	defaultRefreshTTL      = 30 * 24 * time.Hour
)

// tokenClaims is the payload carried by every issued JWT. TokenType tags the
// token as access or refresh so one cannot be replayed at the other's
// endpoint.
type tokenClaims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies HS256-signed access/refresh tokens. The
// signing secret is read-only after construction; access expiry differs by
// role (admins get short-lived sessions, clients long-lived PIN sessions).
type TokenService struct {
	secret          []byte
	adminAccessTTL  time.Duration
	clientAccessTTL time.Duration
	refreshTTL      time.Duration
}

// NewTokenService builds a TokenService from expiry strings as configured:
// a bare integer is seconds, an integer with an s/m/h/d suffix scales
// accordingly, and anything else falls back to the hardcoded default.
func NewTokenService(secret, adminExpiry, clientExpiry, refreshExpiry string) *TokenService {
	return &TokenService{
		secret:          []byte(secret),
		adminAccessTTL:  ParseExpiry(adminExpiry, defaultAdminAccessTTL),
		clientAccessTTL: ParseExpiry(clientExpiry, defaultClientAccessTTL),
		refreshTTL:      ParseExpiry(refreshExpiry, defaultRefreshTTL),
	}
}

// AccessTTL returns the configured access-token lifetime for a role.
func (s *TokenService) AccessTTL(role string) time.Duration {
	if role == domain.RoleAdmin {
		return s.adminAccessTTL
	}
	return s.clientAccessTTL
}

// Issue signs a single token of the given kind for the user.
func (s *TokenService) Issue(user domain.AuthenticatedUser, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		Email:     user.Email,
		Role:      user.Role,
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// IssuePair signs an access and a refresh token for the user. The two signing
// operations run concurrently; the call waits for both.
func (s *TokenService) IssuePair(user domain.AuthenticatedUser) (*domain.TokenPair, error) {
	var (
		wg                    sync.WaitGroup
		access, refresh       string
		accessErr, refreshErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		access, accessErr = s.Issue(user, domain.TokenKindAccess, s.AccessTTL(user.Role))
	}()
	go func() {
		defer wg.Done()
		refresh, refreshErr = s.Issue(user, domain.TokenKindRefresh, s.refreshTTL)
	}()
	wg.Wait()

	if accessErr != nil {
		return nil, accessErr
	}
	if refreshErr != nil {
		return nil, refreshErr
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
	}, nil
}

// Verify parses and validates a token, requiring the embedded kind to match.
// Every failure mode (bad signature, wrong algorithm, expiry, kind mismatch)
// collapses into domain.ErrInvalidToken so nothing leaks to the caller.
func (s *TokenService) Verify(token, kind string) (*domain.AuthenticatedUser, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.TokenType != kind {
		return nil, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}

	return &domain.AuthenticatedUser{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

var expiryPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// ParseExpiry converts an expiry string to a duration. Accepted forms are a
// bare integer (seconds) or an integer with an s/m/h/d suffix. Unrecognized
// input returns the fallback rather than an error.
func ParseExpiry(value string, fallback time.Duration) time.Duration {
	if secs, err := strconv.ParseInt(value, 10, 64); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}

	m := expiryPattern.FindStringSubmatch(value)
	if m == nil {
		return fallback
	}

	amount, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || amount <= 0 {
		return fallback
	}

	switch m[2] {
	case "s":
		return time.Duration(amount) * time.Second
	case "m":
		return time.Duration(amount) * time.Minute
	case "h":
		return time.Duration(amount) * time.Hour
	case "d":
		return time.Duration(amount) * 24 * time.Hour
	}
	return fallback
}
