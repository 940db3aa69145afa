package domain

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// Token kinds embedded in every JWT payload. A token is only usable at the
// endpoint that expects its kind: access tokens at guarded routes, refresh
// tokens at the refresh endpoint.
const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

// AuthenticatedUser is the identity resolved from credentials or a verified
// token. It never carries secret material.
type AuthenticatedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenPair is the signed access/refresh pair returned by login and refresh.
// Validity lives entirely in the signatures and embedded expiries; nothing is
// persisted server-side.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
}

// Credential is the stored login material for either role. Admins hold a
// password hash, clients a PIN hash; both are bcrypt.
type Credential struct {
	ID         string
	Email      string
	SecretHash string
	Role       string
}
