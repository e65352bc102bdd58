package domain

import "time"

// AuthProvider names the mechanism a user signed up with.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a user of the application in the domain.
type User struct {
	UserID         string       `json:"userID"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// TokenPair is an access token plus the refresh token that can renew it.
type TokenPair struct {
	AccessToken           string    `json:"accessToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshToken          string    `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}

// Session is the outcome of a successful sign-in or registration.
type Session struct {
	User    User         `json:"user"`
	Tenants []UserTenant `json:"tenants"`
	Tokens  TokenPair    `json:"tokens"`
}

// GoogleIdentity holds the verified claims taken from a Google ID token.
type GoogleIdentity struct {
	Subject       string
	Email         string
	Name          string
	EmailVerified bool
}
